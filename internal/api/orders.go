package api

import (
	"context"
	"net/http"

	"github.com/soley/admin-cli/internal/models"
)

const endpointOrders = "/orders/getall"

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, p models.ListParams) (models.Page[models.Order], error) {
	var resp models.OrderList
	if err := c.Request(ctx, http.MethodGet, listQuery(endpointOrders, p, nil), nil, nil, &resp); err != nil {
		return models.Page[models.Order]{}, err
	}
	return resp.Page(), nil
}

// UpdateOrderStatus moves an order to status with an operator message.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status, message string) error {
	body := map[string]string{
		"status":  status,
		"message": message,
	}
	return c.Request(ctx, http.MethodPatch, "/orders/"+escape(id)+"/status", body, nil, nil)
}

// OrderStats fetches revenue and order totals.
func (c *Client) OrderStats(ctx context.Context) (models.OrderStats, error) {
	var resp struct {
		Stats *models.OrderStats `json:"stats"`
	}
	if err := c.Request(ctx, http.MethodGet, "/orders/stats", nil, nil, &resp); err != nil {
		return models.OrderStats{}, err
	}
	if resp.Stats == nil {
		return models.OrderStats{}, nil
	}
	return *resp.Stats, nil
}
