package api

import (
	"context"
	"net/http"

	"github.com/soley/admin-cli/internal/models"
)

// AccessDeniedMessage is returned when a non-superadmin account logs in.
const AccessDeniedMessage = "Access denied. Super admin privileges required."

// Login authenticates against /auth/login. Only superadmin accounts are
// accepted; on success the token is installed on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp models.LoginResponse
	if err := c.Request(ctx, http.MethodPost, "/auth/login", body, nil, &resp); err != nil {
		return nil, err
	}

	if !resp.Success || resp.Token == "" || resp.User == nil {
		return nil, newError(http.StatusUnauthorized, resp.Message, nil)
	}
	if resp.User.Role != models.RoleSuperAdmin {
		return nil, newError(http.StatusForbidden, AccessDeniedMessage, nil)
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// PushToken is the registration body for /auth/fcm-token.
type PushToken struct {
	FCMToken   string `json:"fcmToken"`
	DeviceID   string `json:"deviceId,omitempty"`
	Platform   string `json:"platform,omitempty"`
	DeviceType string `json:"deviceType,omitempty"`
}

// RegisterPushToken registers a push-notification token with the backend.
func (c *Client) RegisterPushToken(ctx context.Context, token PushToken) error {
	return c.Request(ctx, http.MethodPost, "/auth/fcm-token", token, nil, nil)
}

// DeletePushToken unregisters a push-notification token.
func (c *Client) DeletePushToken(ctx context.Context, fcmToken string) error {
	return c.Request(ctx, http.MethodDelete, "/auth/fcm-token", PushToken{FCMToken: fcmToken}, nil, nil)
}
