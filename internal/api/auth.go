package api

import (
	"context"
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/model"
)

// Credentials are the email/password pair for a password login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterParams create a new account.
type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the backend's answer to a successful authentication. Older
// deployments send "access_token", newer ones "token".
type Session struct {
	Token       string        `json:"token"`
	AccessToken string        `json:"access_token"`
	User        model.Profile `json:"user"`
}

// Bearer returns whichever token field the backend populated.
func (s *Session) Bearer() string {
	if s.Token != "" {
		return s.Token
	}
	return s.AccessToken
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	var session Session
	if err := c.postJSON(ctx, "auth/login", creds, &session); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &session, nil
}

// Register creates an account and returns its first session.
func (c *Client) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	var session Session
	if err := c.postJSON(ctx, "auth/register", params, &session); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &session, nil
}

// GoogleLogin exchanges a Google ID token for a backend session.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*Session, error) {
	payload := map[string]string{"token": idToken}
	var session Session
	if err := c.postJSON(ctx, "auth/google", payload, &session); err != nil {
		return nil, fmt.Errorf("google sign-in failed: %w", err)
	}
	return &session, nil
}
