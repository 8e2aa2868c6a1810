// Package dashboard loads the overview shown after login.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/pkg/log"
)

// RecentLimit is the page size of the recent orders, items and offers lists.
const RecentLimit = 5

// Source is the part of the API client the dashboard reads from.
type Source interface {
	OrderStats(ctx context.Context) (models.OrderStats, error)
	ListOrders(ctx context.Context, p models.ListParams) (models.Page[models.Order], error)
	ListCategories(ctx context.Context, p models.ListParams) (models.Page[models.Category], error)
	ListFoodItems(ctx context.Context, p models.ListParams, f api.FoodItemFilter) (models.Page[models.FoodItem], error)
	ListOffers(ctx context.Context, p models.ListParams, f api.OfferFilter) (models.Page[models.Offer], error)
}

// Summary is the composite dashboard state. Each part that failed to load
// holds its zero value and is named in Failed.
type Summary struct {
	Stats        models.OrderStats `json:"stats" yaml:"stats"`
	MenuItems    int               `json:"menuItems" yaml:"menu_items"`
	ActiveOffers int               `json:"activeOffers" yaml:"active_offers"`
	Categories   []models.Category `json:"categories" yaml:"categories"`
	RecentOrders []models.Order    `json:"recentOrders" yaml:"recent_orders"`
	RecentOffers []models.Offer    `json:"recentOffers" yaml:"recent_offers"`
	Failed       []string          `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Load runs the five dashboard fetches concurrently. A failing fetch is
// logged and replaced by its fallback; Load itself never fails.
func Load(ctx context.Context, src Source, l log.Logger) Summary {
	if l == nil {
		l = log.NewNop()
	}

	s := Summary{
		Categories:   []models.Category{},
		RecentOrders: []models.Order{},
		RecentOffers: []models.Offer{},
	}
	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	recent := models.ListParams{Page: 1, Limit: RecentLimit}

	fallback := func(part string, fn func() error) {
		g.Go(func() error {
			if err := fn(); err != nil {
				l.Warnf(ctx, "dashboard: %s unavailable: %v", part, err)
				mu.Lock()
				s.Failed = append(s.Failed, part)
				mu.Unlock()
			}
			return nil
		})
	}

	fallback("stats", func() error {
		stats, err := src.OrderStats(ctx)
		if err == nil {
			s.Stats = stats
		}
		return err
	})
	fallback("orders", func() error {
		page, err := src.ListOrders(ctx, recent)
		if err == nil {
			s.RecentOrders = page.Items
		}
		return err
	})
	fallback("categories", func() error {
		page, err := src.ListCategories(ctx, models.ListParams{})
		if err == nil {
			s.Categories = page.Items
		}
		return err
	})
	fallback("menu items", func() error {
		page, err := src.ListFoodItems(ctx, recent, api.FoodItemFilter{})
		if err == nil {
			s.MenuItems = page.Info.TotalItems
		}
		return err
	})
	fallback("offers", func() error {
		page, err := src.ListOffers(ctx, recent, api.OfferFilter{})
		if err == nil {
			s.ActiveOffers = page.Info.TotalItems
			s.RecentOffers = page.Items
		}
		return err
	})

	_ = g.Wait()
	return s
}

// Highlight is one headline figure.
type Highlight struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Highlights returns the headline figures of s.
func (s Summary) Highlights() []Highlight {
	return []Highlight{
		{Label: "Total revenue", Value: format.Currency(s.Stats.TotalRevenue)},
		{Label: "Total orders", Value: fmt.Sprintf("%d", s.Stats.TotalOrders)},
		{Label: "Active customers", Value: fmt.Sprintf("%d", s.Stats.UniqueCustomers)},
		{Label: "Menu items", Value: fmt.Sprintf("%d", s.MenuItems)},
		{Label: "Live offers", Value: fmt.Sprintf("%02d", s.ActiveOffers)},
	}
}

// Table renders the highlights as a two column table.
func (s Summary) Table() format.Table {
	t := format.Table{Headers: []string{"Metric", "Value"}}
	for _, h := range s.Highlights() {
		t.Rows = append(t.Rows, []string{h.Label, h.Value})
	}
	if len(s.Failed) > 0 {
		t.Footer = fmt.Sprintf("Unavailable: %v", s.Failed)
	}
	return t
}
