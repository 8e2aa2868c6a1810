package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soley/admin-cli/internal/models"
)

const endpointContacts = "/contact"

// ListContacts fetches one page of contact messages, optionally filtered by status.
func (c *Client) ListContacts(ctx context.Context, p models.ListParams, status string) (models.Page[models.Contact], error) {
	extra := url.Values{}
	if status != "" {
		extra.Set("status", status)
	}

	var resp models.ContactList
	if err := c.Request(ctx, http.MethodGet, listQuery(endpointContacts, p, extra), nil, nil, &resp); err != nil {
		return models.Page[models.Contact]{}, err
	}
	return resp.Page(), nil
}

// GetContact fetches one contact message.
func (c *Client) GetContact(ctx context.Context, id string) (*models.Contact, error) {
	var out models.Contact
	if err := c.entity(ctx, http.MethodGet, endpointContacts+"/"+escape(id), nil, "contact", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContactStatus sets the status and internal notes of a message.
func (c *Client) UpdateContactStatus(ctx context.Context, id, status, notes string) error {
	body := map[string]string{
		"status": status,
		"notes":  notes,
	}
	return c.Request(ctx, http.MethodPut, endpointContacts+"/"+escape(id)+"/status", body, nil, nil)
}

// ReplyToContact emails a reply to the sender.
func (c *Client) ReplyToContact(ctx context.Context, id, replyMessage string) error {
	body := map[string]string{"replyMessage": replyMessage}
	return c.Request(ctx, http.MethodPost, endpointContacts+"/"+escape(id)+"/reply", body, nil, nil)
}

// DeleteContact deletes a contact message.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, endpointContacts+"/"+escape(id), nil, nil, nil)
}

// ContactStats fetches inbox counters.
func (c *Client) ContactStats(ctx context.Context) (models.ContactStats, error) {
	var out models.ContactStats
	err := c.entity(ctx, http.MethodGet, endpointContacts+"/stats", nil, "stats", &out)
	return out, err
}
