package api

import (
	"context"
	"net/http"

	"github.com/soley/admin-cli/internal/models"
)

// Settings is the free-form restaurant settings document.
type Settings map[string]any

// GetSettings fetches the settings document.
func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	var out Settings
	if err := c.entity(ctx, http.MethodGet, "/settings", nil, "settings", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateSettings replaces the settings document.
func (c *Client) UpdateSettings(ctx context.Context, s Settings) error {
	return c.Request(ctx, http.MethodPut, "/settings", s, nil, nil)
}

// GetDeliverySettings fetches delivery settings.
func (c *Client) GetDeliverySettings(ctx context.Context) (models.DeliverySettings, error) {
	var out models.DeliverySettings
	err := c.entity(ctx, http.MethodGet, "/settings/delivery", nil, "deliverySettings", &out)
	return out, err
}

// UpdateDeliverySettings patches delivery settings.
func (c *Client) UpdateDeliverySettings(ctx context.Context, s models.DeliverySettings) error {
	return c.Request(ctx, http.MethodPatch, "/settings/delivery", s, nil, nil)
}

// ToggleDelivery enables or disables delivery; disabledMessage is shown to customers while off.
func (c *Client) ToggleDelivery(ctx context.Context, enabled bool, disabledMessage string) error {
	body := map[string]any{
		"isEnabled":       enabled,
		"disabledMessage": disabledMessage,
	}
	return c.Request(ctx, http.MethodPatch, "/settings/delivery/toggle", body, nil, nil)
}
