package session

// Stable storage keys for the persisted client state.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Manager owns the session lifecycle: init-on-load, save-on-login, and
// clear-on-logout-or-401. It replaces ambient global auth state with an
// explicit object handed to every component that performs authenticated
// calls.
type Manager struct {
	kv KV
}

// NewManager wraps a KV store.
func NewManager(kv KV) *Manager {
	return &Manager{kv: kv}
}

// Token returns the stored bearer token, "" when not logged in.
func (m *Manager) Token() string {
	v, err := m.kv.Get(KeyToken)
	if err != nil {
		return ""
	}
	return v
}

// Username returns the stored username, "" when not logged in.
func (m *Manager) Username() string {
	v, err := m.kv.Get(KeyUsername)
	if err != nil {
		return ""
	}
	return v
}

// Authenticated reports whether a token is present.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// Save stores the token and username after a successful login.
func (m *Manager) Save(token, username string) error {
	if err := m.kv.Set(KeyToken, token); err != nil {
		return err
	}
	return m.kv.Set(KeyUsername, username)
}

// Clear removes the stored credentials. Called on logout and on any 401.
func (m *Manager) Clear() error {
	if err := m.kv.Del(KeyToken); err != nil {
		return err
	}
	return m.kv.Del(KeyUsername)
}
