package client

import (
	"context"

	"go.uber.org/zap"
)

// LoginResult is the token envelope returned by POST /login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates with form-urlencoded credentials and persists the
// returned bearer token and the username in the session store.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&result).
		Post("/login")

	if err := c.wrap(resp, err); err != nil {
		return nil, err
	}

	if err := c.session.Save(result.AccessToken, username); err != nil {
		return nil, err
	}
	c.logger.Info("logged in", zap.String("username", username))
	return &result, nil
}

// registerRequest is the JSON body of POST /register.
type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account. The caller logs in separately afterwards.
func (c *Client) Register(ctx context.Context, username, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registerRequest{Username: username, Password: password}).
		Post("/register")

	if err := c.wrap(resp, err); err != nil {
		return err
	}
	c.logger.Info("registered", zap.String("username", username))
	return nil
}

// Logout clears the persisted session. Purely local; the API keeps no
// server-side session to invalidate.
func (c *Client) Logout() error {
	return c.session.Clear()
}
