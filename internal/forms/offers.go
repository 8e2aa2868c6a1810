package forms

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/soley/admin-cli/internal/models"
)

// Offer form defaults.
const (
	DefaultBannerColor = "#E91E63"
	PlatformAll        = "all"
)

// OfferForm creates or edits an offer. Terms holds one condition per line.
type OfferForm struct {
	Title               string
	Description         string
	Subtitle            string
	ImageURL            string
	BannerColor         string
	Type                string
	Value               float64
	MinOrderAmount      float64
	MaxDiscountAmount   float64
	UsageLimit          int
	UserUsageLimit      int
	AppliedToCategories []string
	AppliedToItems      []string
	ComboItems          []models.ComboItem
	ComboPrice          float64
	DeliveryTypes       []string
	Platforms           []string
	IsOneTimePerDevice  bool
	IsActive            bool
	IsFeatured          bool
	StartDate           time.Time
	EndDate             time.Time
	Priority            int
	Terms               string
}

// NewOfferForm returns a percentage offer form with the client defaults.
func NewOfferForm() OfferForm {
	return OfferForm{
		BannerColor:    DefaultBannerColor,
		Type:           models.OfferPercentage,
		UserUsageLimit: 1,
		Platforms:      []string{PlatformAll},
		IsActive:       true,
		Priority:       1,
	}
}

// OfferFormFrom prefills a form for editing o.
func OfferFormFrom(o models.Offer) OfferForm {
	f := OfferForm{
		Title:               o.Title,
		Description:         o.Description,
		Subtitle:            o.Subtitle,
		ImageURL:            o.ImageURL,
		BannerColor:         o.BannerColor,
		Type:                o.Type,
		Value:               o.Value,
		MinOrderAmount:      o.MinOrderAmount,
		MaxDiscountAmount:   o.MaxDiscountAmount,
		UserUsageLimit:      o.UserUsageLimit,
		AppliedToCategories: refIDs(o.AppliedToCategories),
		AppliedToItems:      refIDs(o.AppliedToItems),
		ComboItems:          o.ComboItems,
		ComboPrice:          o.ComboPrice,
		DeliveryTypes:       o.DeliveryTypes,
		Platforms:           o.Platforms,
		IsOneTimePerDevice:  o.IsOneTimePerDevice,
		IsActive:            o.IsActive,
		IsFeatured:          o.IsFeatured,
		StartDate:           o.StartDate,
		EndDate:             o.EndDate,
		Priority:            o.Priority,
		Terms:               strings.Join(o.TermsAndConditions, "\n"),
	}
	if o.UsageLimit != nil {
		f.UsageLimit = *o.UsageLimit
	}
	if f.BannerColor == "" {
		f.BannerColor = DefaultBannerColor
	}
	return f
}

func refIDs(refs []models.Ref) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.ID)
	}
	return out
}

// Validate reports every failing field; the error text joins them one per line.
func (f OfferForm) Validate() error {
	var afterStart validation.Rule = validation.Skip
	if !f.StartDate.IsZero() {
		afterStart = validation.Min(f.StartDate).Exclusive().Error("End date must be after start date")
	}

	return collect(validation.Errors{
		"title":       validation.Validate(strings.TrimSpace(f.Title), validation.Required.Error("Title is required")),
		"description": validation.Validate(strings.TrimSpace(f.Description), validation.Required.Error("Description is required")),
		"imageUrl":    validation.Validate(f.ImageURL, validation.Required.Error("Image is required")),
		"type":        validation.Validate(f.Type, validation.In(stringsToAny(models.OfferTypes)...).Error("Invalid offer type")),
		"startDate":   validation.Validate(f.StartDate, validation.Required.Error("Start date is required")),
		"endDate":     validation.Validate(f.EndDate, validation.Required.Error("End date is required"), afterStart),
		"comboItems": validation.Validate(f.ComboItems,
			validation.When(f.Type == models.OfferCombo, validation.Required.Error("At least one combo item is required"))),
	}, "title", "description", "imageUrl", "type", "startDate", "endDate", "comboItems")
}

func stringsToAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

type offerPayload struct {
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Subtitle            string             `json:"subtitle"`
	ImageURL            string             `json:"imageUrl"`
	BannerColor         string             `json:"bannerColor"`
	Type                string             `json:"type"`
	Value               float64            `json:"value,omitempty"`
	MinOrderAmount      float64            `json:"minOrderAmount"`
	MaxDiscountAmount   float64            `json:"maxDiscountAmount,omitempty"`
	UsageLimit          *int               `json:"usageLimit"`
	UserUsageLimit      int                `json:"userUsageLimit"`
	AppliedToCategories []string           `json:"appliedToCategories"`
	AppliedToItems      []string           `json:"appliedToItems"`
	ComboItems          []models.ComboItem `json:"comboItems"`
	ComboPrice          *float64           `json:"comboPrice,omitempty"`
	DeliveryTypes       []string           `json:"deliveryTypes"`
	Platforms           []string           `json:"platforms"`
	IsOneTimePerDevice  bool               `json:"isOneTimePerDevice"`
	IsActive            bool               `json:"isActive"`
	IsFeatured          bool               `json:"isFeatured"`
	StartDate           string             `json:"startDate,omitempty"`
	EndDate             string             `json:"endDate,omitempty"`
	Priority            int                `json:"priority"`
	TermsAndConditions  []string           `json:"termsAndConditions"`
}

func (f OfferForm) Payload() any {
	p := offerPayload{
		Title:               strings.TrimSpace(f.Title),
		Description:         strings.TrimSpace(f.Description),
		Subtitle:            strings.TrimSpace(f.Subtitle),
		ImageURL:            f.ImageURL,
		BannerColor:         f.BannerColor,
		Type:                f.Type,
		Value:               f.Value,
		MinOrderAmount:      f.MinOrderAmount,
		MaxDiscountAmount:   f.MaxDiscountAmount,
		UserUsageLimit:      f.UserUsageLimit,
		AppliedToCategories: nonNilStrings(f.AppliedToCategories),
		AppliedToItems:      nonNilStrings(f.AppliedToItems),
		ComboItems:          f.ComboItems,
		DeliveryTypes:       nonNilStrings(f.DeliveryTypes),
		Platforms:           f.Platforms,
		IsOneTimePerDevice:  f.IsOneTimePerDevice,
		IsActive:            f.IsActive,
		IsFeatured:          f.IsFeatured,
		Priority:            f.Priority,
		TermsAndConditions:  splitList(f.Terms, "\n"),
	}
	if p.ComboItems == nil {
		p.ComboItems = []models.ComboItem{}
	}
	if f.UsageLimit > 0 {
		limit := f.UsageLimit
		p.UsageLimit = &limit
	}
	if p.UserUsageLimit < 1 {
		p.UserUsageLimit = 1
	}
	if p.Priority < 1 {
		p.Priority = 1
	}
	if f.Type == models.OfferCombo {
		price := f.ComboPrice
		p.ComboPrice = &price
	}
	if len(p.Platforms) == 0 {
		p.Platforms = []string{PlatformAll}
	}
	if !f.StartDate.IsZero() {
		p.StartDate = f.StartDate.UTC().Format(time.RFC3339)
	}
	if !f.EndDate.IsZero() {
		p.EndDate = f.EndDate.UTC().Format(time.RFC3339)
	}
	return p
}

// TogglePlatform applies the platform picker rules: "all" is exclusive and an
// empty selection falls back to "all".
func TogglePlatform(current []string, platform string) []string {
	if platform == PlatformAll {
		return []string{PlatformAll}
	}

	next := []string{}
	found := false
	for _, p := range current {
		switch {
		case p == PlatformAll:
		case p == platform:
			found = true
		default:
			next = append(next, p)
		}
	}
	if !found {
		next = append(next, platform)
	}
	if len(next) == 0 {
		return []string{PlatformAll}
	}
	return next
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
