package forms

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/models"
)

// BannerForm creates or edits a storefront banner.
type BannerForm struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	IsActive    bool
	Order       int
	Link        string
	StartDate   *time.Time
	EndDate     *time.Time
}

// BannerFormFrom prefills a form for editing b.
func BannerFormFrom(b models.Banner) BannerForm {
	return BannerForm{
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Category:    b.Category,
		IsActive:    b.IsActive,
		Order:       b.Order,
		Link:        b.Link,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
	}
}

func (f BannerForm) Validate() error {
	return collect(validation.Errors{
		"title": validation.Validate(strings.TrimSpace(f.Title), validation.Required.Error("Title is required")),
	}, "title")
}

type bannerPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	Order       int     `json:"order"`
	Link        string  `json:"link"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func isoOrNil(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func (f BannerForm) Payload() any {
	return bannerPayload{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Category:    f.Category,
		IsActive:    f.IsActive,
		Order:       f.Order,
		Link:        f.Link,
		StartDate:   isoOrNil(f.StartDate),
		EndDate:     isoOrNil(f.EndDate),
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginForm holds operator credentials.
type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() error {
	return collect(validation.Errors{
		"email": validation.Validate(strings.TrimSpace(f.Email),
			validation.Required.Error("Email is required"),
			validation.Match(emailPattern).Error("Please provide a valid email")),
		"password": validation.Validate(f.Password, validation.Required.Error("Password is required")),
	}, "email", "password")
}

func (f LoginForm) Payload() any {
	return map[string]string{
		"email":    strings.TrimSpace(f.Email),
		"password": f.Password,
	}
}

// ContactReplyForm answers a contact message.
type ContactReplyForm struct {
	ReplyMessage string
}

func (f ContactReplyForm) Validate() error {
	return collect(validation.Errors{
		"replyMessage": validation.Validate(strings.TrimSpace(f.ReplyMessage), validation.Required.Error("Reply message is required")),
	}, "replyMessage")
}

func (f ContactReplyForm) Payload() any {
	return map[string]string{"replyMessage": strings.TrimSpace(f.ReplyMessage)}
}

// OrderStatusForm moves an order to a new status. An empty Message gets a default note.
type OrderStatusForm struct {
	Status  string
	Message string
}

func (f OrderStatusForm) Validate() error {
	return collect(validation.Errors{
		"status": validation.Validate(f.Status,
			validation.Required.Error("Status is required"),
			validation.In(stringsToAny(models.OrderStatuses)...).Error("Invalid order status")),
	}, "status")
}

// Note returns the status message sent to the backend.
func (f OrderStatusForm) Note() string {
	if m := strings.TrimSpace(f.Message); m != "" {
		return m
	}
	return fmt.Sprintf("Status updated to %s", f.Status)
}

func (f OrderStatusForm) Payload() any {
	return map[string]string{"status": f.Status, "message": f.Note()}
}

// ContactStatusForm changes the status of a contact message.
type ContactStatusForm struct {
	Status string
	Notes  string
}

func (f ContactStatusForm) Validate() error {
	return collect(validation.Errors{
		"status": validation.Validate(f.Status,
			validation.Required.Error("Status is required"),
			validation.In(stringsToAny(models.ContactStatuses)...).Error("Invalid contact status")),
	}, "status")
}

func (f ContactStatusForm) Payload() any {
	return map[string]string{"status": f.Status, "notes": f.Notes}
}

// StockForm adjusts the stock of a menu item.
type StockForm struct {
	Quantity  int
	Operation string
}

func (f StockForm) Validate() error {
	return collect(validation.Errors{
		"operation": validation.Validate(f.Operation,
			validation.Required.Error("Operation is required"),
			validation.In(api.StockAdd, api.StockSubtract, api.StockSet).Error("Operation must be add, subtract or set")),
		"quantity": validation.Validate(f.Quantity, validation.Min(0).Error("Quantity must be zero or positive")),
	}, "operation", "quantity")
}

func (f StockForm) Payload() any {
	return map[string]any{"quantity": f.Quantity, "operation": f.Operation}
}
