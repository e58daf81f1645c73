package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"facility-inspect/internal/domain"
	"facility-inspect/internal/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Manager, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.NewManager(session.NewFileKV(filepath.Join(t.TempDir(), "session.json")))
	c := New(srv.URL, 5*time.Second, sess, zap.NewNop())
	return c, sess, srv
}

func TestLoginSendsFormAndStoresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		require.Equal(t, "alice", r.PostFormValue("username"))
		require.Equal(t, "secret1", r.PostFormValue("password"))
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok-1", "token_type": "bearer"})
	})

	c, sess, _ := newTestClient(t, mux)
	result, err := c.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, "tok-1", result.AccessToken)
	require.Equal(t, "tok-1", sess.Token())
	require.Equal(t, "alice", sess.Username())
}

func TestLoginFailureSurfacesDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Incorrect username or password"})
	})

	c, sess, _ := newTestClient(t, mux)
	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.True(t, IsValidation(err))
	require.Equal(t, "Incorrect username or password", err.Error())
	require.False(t, sess.Authenticated())
}

func TestRegisterConflictDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body.Username)
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Username already registered"})
	})

	c, _, _ := newTestClient(t, mux)
	err := c.Register(context.Background(), "alice", "secret1")
	require.True(t, IsValidation(err))
	require.Equal(t, "Username already registered", err.Error())
}

func TestAuthenticatedCallsCarryBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspections/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, []domain.InspectionRecord{{ID: 1, BuildingName: "Admin Block"}})
	})

	c, sess, _ := newTestClient(t, mux)
	require.NoError(t, sess.Save("tok-1", "alice"))

	records, err := c.ListInspections(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Admin Block", records[0].BuildingName)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspections/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
	})

	c, sess, _ := newTestClient(t, mux)
	require.NoError(t, sess.Save("stale-token", "alice"))

	_, err := c.ListInspections(context.Background())
	require.True(t, IsUnauthorized(err))
	require.False(t, sess.Authenticated(), "401 must clear the stored session")
}

func TestGetInspectionNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspections/42", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Inspection not found"})
	})

	c, sess, _ := newTestClient(t, mux)
	require.NoError(t, sess.Save("tok-1", "alice"))

	_, err := c.GetInspection(context.Background(), 42)
	require.True(t, IsNotFound(err))
}

func TestCreateStripsServerAssignedFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspections/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, hasID := payload["id"]
		require.False(t, hasID, "create payload must not carry an id")
		_, hasCreated := payload["created_at"]
		require.False(t, hasCreated)

		writeJSON(w, http.StatusOK, domain.InspectionRecord{ID: 9, BuildingName: payload["building_name"].(string)})
	})

	c, sess, _ := newTestClient(t, mux)
	require.NoError(t, sess.Save("tok-1", "alice"))

	created, err := c.CreateInspection(context.Background(), domain.InspectionRecord{
		ID:           123, // stale local value must be dropped
		BuildingName: "New Block",
		CreatedAt:    "2020-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.Equal(t, 9, created.ID)
}

func TestUpdateAndDelete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inspections/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var rec domain.InspectionRecord
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))
			require.Equal(t, "Renamed", rec.BuildingName)
			writeJSON(w, http.StatusOK, rec)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	c, sess, _ := newTestClient(t, mux)
	require.NoError(t, sess.Save("tok-1", "alice"))

	updated, err := c.UpdateInspection(context.Background(), 7, domain.InspectionRecord{ID: 7, BuildingName: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.BuildingName)

	require.NoError(t, c.DeleteInspection(context.Background(), 7))
}

func TestNetworkFailure(t *testing.T) {
	c, _, srv := newTestClient(t, http.NotFoundHandler())
	srv.Close() // connection refused from here on

	_, err := c.ListInspections(context.Background())
	require.True(t, IsNetwork(err))
}
