package api

import (
	"context"
	"net/http"

	"github.com/soley/admin-cli/internal/models"
)

const endpointBanners = "/banners"

// ListBanners fetches one page of banners.
func (c *Client) ListBanners(ctx context.Context, p models.ListParams) (models.Page[models.Banner], error) {
	var resp models.BannerList
	if err := c.Request(ctx, http.MethodGet, listQuery(endpointBanners+"/getall", p, nil), nil, nil, &resp); err != nil {
		return models.Page[models.Banner]{}, err
	}
	return resp.Page(), nil
}

// GetBanner fetches one banner.
func (c *Client) GetBanner(ctx context.Context, id string) (*models.Banner, error) {
	var out models.Banner
	if err := c.entity(ctx, http.MethodGet, endpointBanners+"/"+escape(id), nil, "banner", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBanner creates a banner.
func (c *Client) CreateBanner(ctx context.Context, payload any) (*models.Banner, error) {
	var out models.Banner
	if err := c.entity(ctx, http.MethodPost, endpointBanners, payload, "banner", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBanner replaces a banner.
func (c *Client) UpdateBanner(ctx context.Context, id string, payload any) (*models.Banner, error) {
	var out models.Banner
	if err := c.entity(ctx, http.MethodPut, endpointBanners+"/"+escape(id), payload, "banner", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBanner deletes a banner.
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, endpointBanners+"/"+escape(id), nil, nil, nil)
}

// ToggleBannerStatus flips a banner between active and inactive.
func (c *Client) ToggleBannerStatus(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodPatch, endpointBanners+"/"+escape(id)+"/toggle-status", nil, nil, nil)
}

// BannerOrder assigns a display position to a banner.
type BannerOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ReorderBanners sets display positions in one call.
func (c *Client) ReorderBanners(ctx context.Context, orders []BannerOrder) error {
	body := map[string][]BannerOrder{"bannerOrders": orders}
	return c.Request(ctx, http.MethodPost, endpointBanners+"/reorder", body, nil, nil)
}
