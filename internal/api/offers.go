package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/soley/admin-cli/internal/models"
)

const endpointOffers = "/offer"

// OfferFilter narrows an offer listing.
type OfferFilter struct {
	Type     string
	Featured *bool
	// WithDevice adds the client device id so already-claimed offers can be filtered.
	WithDevice bool
}

// ListOffers fetches one page of offers.
func (c *Client) ListOffers(ctx context.Context, p models.ListParams, f OfferFilter) (models.Page[models.Offer], error) {
	extra := url.Values{}
	if f.Type != "" {
		extra.Set("type", f.Type)
	}
	if f.Featured != nil {
		extra.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.WithDevice && c.DeviceID() != "" {
		extra.Set("deviceId", c.DeviceID())
	}

	var resp models.OfferList
	if err := c.Request(ctx, http.MethodGet, listQuery(endpointOffers, p, extra), nil, nil, &resp); err != nil {
		return models.Page[models.Offer]{}, err
	}
	return resp.Page(), nil
}

// GetOffer fetches one offer.
func (c *Client) GetOffer(ctx context.Context, id string) (*models.Offer, error) {
	var out models.Offer
	if err := c.entity(ctx, http.MethodGet, endpointOffers+"/"+escape(id), nil, "offer", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOffer creates an offer.
func (c *Client) CreateOffer(ctx context.Context, payload any) (*models.Offer, error) {
	var out models.Offer
	if err := c.entity(ctx, http.MethodPost, endpointOffers, payload, "offer", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOffer replaces an offer.
func (c *Client) UpdateOffer(ctx context.Context, id string, payload any) (*models.Offer, error) {
	var out models.Offer
	if err := c.entity(ctx, http.MethodPut, endpointOffers+"/"+escape(id), payload, "offer", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOffer deletes an offer.
func (c *Client) DeleteOffer(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, endpointOffers+"/"+escape(id), nil, nil, nil)
}

// CanClaimOffer asks whether this device may still claim a one-time offer.
func (c *Client) CanClaimOffer(ctx context.Context, id string) (models.ClaimCheck, error) {
	q := url.Values{}
	q.Set("deviceId", c.DeviceID())

	var out models.ClaimCheck
	err := c.entity(ctx, http.MethodGet, endpointOffers+"/"+escape(id)+"/can-claim?"+q.Encode(), nil, "data", &out)
	return out, err
}

// ClaimOffer records a claim of the offer by this device.
func (c *Client) ClaimOffer(ctx context.Context, id string) error {
	body := map[string]string{"deviceId": c.DeviceID()}
	return c.Request(ctx, http.MethodPost, endpointOffers+"/"+escape(id)+"/claim", body, nil, nil)
}

// ApplyOfferToItems attaches an offer to menu items.
func (c *Client) ApplyOfferToItems(ctx context.Context, id string, itemIDs []string) error {
	body := map[string][]string{"itemIds": itemIDs}
	return c.Request(ctx, http.MethodPost, endpointOffers+"/"+escape(id)+"/apply-to-items", body, nil, nil)
}

// RemoveOfferFromItems detaches an offer from menu items.
func (c *Client) RemoveOfferFromItems(ctx context.Context, id string, itemIDs []string) error {
	body := map[string][]string{"itemIds": itemIDs}
	return c.Request(ctx, http.MethodDelete, endpointOffers+"/"+escape(id)+"/remove-from-items", body, nil, nil)
}
