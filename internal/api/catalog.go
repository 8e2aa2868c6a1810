package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soley/admin-cli/internal/models"
)

const (
	endpointCategories = "/categories"
	endpointFoodItems  = "/food-items/getallitems"
)

// ListCategories fetches one page of categories.
func (c *Client) ListCategories(ctx context.Context, p models.ListParams) (models.Page[models.Category], error) {
	var resp models.CategoryList
	if err := c.Request(ctx, http.MethodGet, listQuery(endpointCategories, p, nil), nil, nil, &resp); err != nil {
		return models.Page[models.Category]{}, err
	}
	return resp.Page(), nil
}

// GetCategory fetches one category.
func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var out models.Category
	if err := c.entity(ctx, http.MethodGet, endpointCategories+"/"+escape(id), nil, "category", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory creates a category from a validated payload.
func (c *Client) CreateCategory(ctx context.Context, payload any) (*models.Category, error) {
	var out models.Category
	if err := c.entity(ctx, http.MethodPost, endpointCategories, payload, "category", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory replaces a category.
func (c *Client) UpdateCategory(ctx context.Context, id string, payload any) (*models.Category, error) {
	var out models.Category
	if err := c.entity(ctx, http.MethodPut, endpointCategories+"/"+escape(id), payload, "category", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, endpointCategories+"/"+escape(id), nil, nil, nil)
}

// FoodItemFilter narrows a food item listing.
type FoodItemFilter struct {
	IncludeInactive bool
	Category        string
}

// ListFoodItems fetches one page of menu items in the client language.
func (c *Client) ListFoodItems(ctx context.Context, p models.ListParams, f FoodItemFilter) (models.Page[models.FoodItem], error) {
	extra := url.Values{}
	extra.Set("lang", c.Language())
	if f.IncludeInactive {
		extra.Set("includeInactive", "true")
	}
	if f.Category != "" {
		extra.Set("category", f.Category)
	}

	var resp models.FoodItemList
	if err := c.Request(ctx, http.MethodGet, listQuery(endpointFoodItems, p, extra), nil, nil, &resp); err != nil {
		return models.Page[models.FoodItem]{}, err
	}
	return resp.Page(), nil
}

// GetFoodItem fetches one menu item.
func (c *Client) GetFoodItem(ctx context.Context, id string) (*models.FoodItem, error) {
	var out models.FoodItem
	if err := c.entity(ctx, http.MethodGet, "/food-items/"+escape(id), nil, "item", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateFoodItem creates a menu item.
func (c *Client) CreateFoodItem(ctx context.Context, payload any) (*models.FoodItem, error) {
	var out models.FoodItem
	if err := c.entity(ctx, http.MethodPost, "/food-items", payload, "item", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateFoodItem replaces a menu item.
func (c *Client) UpdateFoodItem(ctx context.Context, id string, payload any) (*models.FoodItem, error) {
	var out models.FoodItem
	if err := c.entity(ctx, http.MethodPut, "/food-items/"+escape(id), payload, "item", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFoodItem deletes a menu item.
func (c *Client) DeleteFoodItem(ctx context.Context, id string) error {
	return c.Request(ctx, http.MethodDelete, "/food-items/"+escape(id), nil, nil, nil)
}

// Stock operations accepted by UpdateStock.
const (
	StockAdd      = "add"
	StockSubtract = "subtract"
	StockSet      = "set"
)

// UpdateStock adjusts the stock of a menu item.
func (c *Client) UpdateStock(ctx context.Context, id string, quantity int, operation string) error {
	body := map[string]any{
		"quantity":  quantity,
		"operation": operation,
	}
	return c.Request(ctx, http.MethodPatch, "/food-items/"+escape(id)+"/stock", body, nil, nil)
}
