// Package client is the typed HTTP client for the remote facility-inspection
// API. All authenticated calls carry the session's bearer token; a 401 from
// any call clears the stored session globally.
package client

import (
	"encoding/json"
	"time"

	"facility-inspect/internal/session"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the inspection API.
type Client struct {
	http    *resty.Client
	session *session.Manager
	logger  *zap.Logger
}

// New creates an inspection API client. Calls are not retried automatically:
// a failed call surfaces an error and leaves prior state unchanged.
func New(baseURL string, timeout time.Duration, sess *session.Manager, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c := &Client{
		http:    httpClient,
		session: sess,
		logger:  logger,
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := sess.Token(); token != "" {
			r.SetAuthToken(token)
		}
		r.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	// Any 401 invalidates the session everywhere, the way the original
	// frontend's response interceptor cleared local storage.
	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == 401 {
			if err := sess.Clear(); err != nil {
				logger.Warn("failed to clear session after 401", zap.Error(err))
			} else {
				logger.Info("session cleared after 401",
					zap.String("url", resp.Request.URL),
				)
			}
		}
		return nil
	})

	return c
}

// detailBody is the API's error envelope.
type detailBody struct {
	Detail string `json:"detail"`
}

// wrap maps a resty result into the error taxonomy. nil on 2xx.
func (c *Client) wrap(resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("API request failed",
			zap.Error(err),
		)
		return &APIError{Kind: KindNetwork, Err: err}
	}
	if resp.IsSuccess() {
		return nil
	}

	var body detailBody
	_ = json.Unmarshal(resp.Body(), &body)

	status := resp.StatusCode()
	apiErr := &APIError{Status: status, Detail: body.Detail}
	switch {
	case status == 401:
		apiErr.Kind = KindUnauthorized
	case status == 404:
		apiErr.Kind = KindNotFound
	case status >= 400 && status < 500:
		apiErr.Kind = KindValidation
	default:
		apiErr.Kind = KindServer
	}

	c.logger.Warn("API call rejected",
		zap.String("url", resp.Request.URL),
		zap.Int("status", status),
		zap.String("detail", body.Detail),
	)
	return apiErr
}
