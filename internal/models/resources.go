package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Category groups menu items.
type Category struct {
	ID          string    `json:"_id" yaml:"id"`
	Name        Localized `json:"name" yaml:"name"`
	Description Localized `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
	Icon        string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	IsActive    bool      `json:"isActive" yaml:"is_active"`
	SortOrder   int       `json:"sortOrder,omitempty" yaml:"sort_order,omitempty"`
	Timestamps  `yaml:",inline"`
}

// CategoryRef is a food item's category: the API sends either an id or a populated object.
type CategoryRef struct {
	ID   string    `json:"_id" yaml:"id"`
	Name Localized `json:"name,omitempty" yaml:"name,omitempty"`
}

// UnmarshalJSON accepts "<id>" or {"_id": ..., "name": ...}.
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = CategoryRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	type alias CategoryRef
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CategoryRef(a)
	return nil
}

// SEOData holds search metadata for a food item.
type SEOData struct {
	MetaTitle       Localized   `json:"metaTitle" yaml:"meta_title"`
	MetaDescription Localized   `json:"metaDescription" yaml:"meta_description"`
	Keywords        []Localized `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// PricedOption is a meal size, extra or addon.
type PricedOption struct {
	Name            Localized `json:"name" yaml:"name"`
	Price           float64   `json:"price,omitempty" yaml:"price,omitempty"`
	AdditionalPrice float64   `json:"additionalPrice,omitempty" yaml:"additional_price,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
}

// FoodItem is a menu item.
type FoodItem struct {
	ID              string         `json:"_id" yaml:"id"`
	Name            Localized      `json:"name" yaml:"name"`
	Description     Localized      `json:"description" yaml:"description"`
	Price           float64        `json:"price" yaml:"price"`
	OriginalPrice   float64        `json:"originalPrice,omitempty" yaml:"original_price,omitempty"`
	ImageURL        string         `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
	Images          []string       `json:"images,omitempty" yaml:"images,omitempty"`
	Category        CategoryRef    `json:"category" yaml:"category"`
	IsVeg           bool           `json:"isVeg" yaml:"is_veg"`
	IsVegan         bool           `json:"isVegan" yaml:"is_vegan"`
	IsGlutenFree    bool           `json:"isGlutenFree" yaml:"is_gluten_free"`
	SpiceLevel      int            `json:"spiceLevel" yaml:"spice_level"`
	IsFeatured      bool           `json:"isFeatured" yaml:"is_featured"`
	IsPopular       bool           `json:"isPopular" yaml:"is_popular"`
	IsActive        bool           `json:"isActive" yaml:"is_active"`
	IsAvailable     bool           `json:"isAvailable" yaml:"is_available"`
	PreparationTime int            `json:"preparationTime" yaml:"preparation_time"`
	StockQuantity   int            `json:"stockQuantity" yaml:"stock_quantity"`
	Rating          float64        `json:"rating,omitempty" yaml:"rating,omitempty"`
	MealSizes       []PricedOption `json:"mealSizes,omitempty" yaml:"meal_sizes,omitempty"`
	Extras          []PricedOption `json:"extras,omitempty" yaml:"extras,omitempty"`
	Addons          []PricedOption `json:"addons,omitempty" yaml:"addons,omitempty"`
	SEOData         SEOData        `json:"seoData" yaml:"seo_data"`
	Timestamps      `yaml:",inline"`
}

// Order statuses in lifecycle order.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderReady          = "ready"
	OrderOutForDelivery = "out-for-delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
	OrderOutForDelivery, OrderDelivered, OrderCancelled,
}

// OrderLine is one item within an order.
type OrderLine struct {
	FoodItem struct {
		ID   string    `json:"_id" yaml:"id"`
		Name Localized `json:"name" yaml:"name"`
	} `json:"foodItem" yaml:"food_item"`
	Quantity int     `json:"quantity" yaml:"quantity"`
	Price    float64 `json:"price" yaml:"price"`
}

// Order is a customer order.
type Order struct {
	ID            string      `json:"_id" yaml:"id"`
	OrderNumber   string      `json:"orderNumber" yaml:"order_number"`
	CustomerName  string      `json:"customerName" yaml:"customer_name"`
	CustomerPhone string      `json:"customerPhone,omitempty" yaml:"customer_phone,omitempty"`
	CustomerEmail string      `json:"customerEmail,omitempty" yaml:"customer_email,omitempty"`
	DeliveryType  string      `json:"deliveryType" yaml:"delivery_type"`
	PaymentStatus string      `json:"paymentStatus,omitempty" yaml:"payment_status,omitempty"`
	Items         []OrderLine `json:"items" yaml:"items"`
	Total         float64     `json:"total" yaml:"total"`
	Status        string      `json:"status" yaml:"status"`
	Timestamps    `yaml:",inline"`
}

// OrderStats is the summary returned by /orders/stats.
type OrderStats struct {
	TotalRevenue    float64 `json:"totalRevenue" yaml:"total_revenue"`
	TotalOrders     int     `json:"totalOrders" yaml:"total_orders"`
	UniqueCustomers int     `json:"uniqueCustomers" yaml:"unique_customers"`
}

// Offer types.
const (
	OfferPercentage   = "percentage"
	OfferFixedAmount  = "fixed-amount"
	OfferFreeDelivery = "free-delivery"
	OfferCombo        = "combo"
	OfferBOGO         = "bogo"
)

// OfferTypes lists the offer types accepted by the backend.
var OfferTypes = []string{OfferPercentage, OfferFixedAmount, OfferFreeDelivery, OfferCombo, OfferBOGO}

// ComboItem is one entry of a combo offer.
type ComboItem struct {
	FoodItem string `json:"foodItem" yaml:"food_item"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Ref is a populated reference of which only the id matters to the client.
type Ref struct {
	ID string `json:"_id" yaml:"id"`
}

// Offer is a promotional offer.
type Offer struct {
	ID                  string      `json:"_id" yaml:"id"`
	Title               string      `json:"title" yaml:"title"`
	Description         string      `json:"description" yaml:"description"`
	Subtitle            string      `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	ImageURL            string      `json:"imageUrl" yaml:"image_url"`
	BannerColor         string      `json:"bannerColor,omitempty" yaml:"banner_color,omitempty"`
	Type                string      `json:"type" yaml:"type"`
	Value               float64     `json:"value,omitempty" yaml:"value,omitempty"`
	MinOrderAmount      float64     `json:"minOrderAmount" yaml:"min_order_amount"`
	MaxDiscountAmount   float64     `json:"maxDiscountAmount,omitempty" yaml:"max_discount_amount,omitempty"`
	UsageLimit          *int        `json:"usageLimit" yaml:"usage_limit"`
	UserUsageLimit      int         `json:"userUsageLimit" yaml:"user_usage_limit"`
	AppliedToCategories []Ref       `json:"appliedToCategories,omitempty" yaml:"applied_to_categories,omitempty"`
	AppliedToItems      []Ref       `json:"appliedToItems,omitempty" yaml:"applied_to_items,omitempty"`
	ComboItems          []ComboItem `json:"comboItems,omitempty" yaml:"combo_items,omitempty"`
	ComboPrice          float64     `json:"comboPrice,omitempty" yaml:"combo_price,omitempty"`
	DeliveryTypes       []string    `json:"deliveryTypes,omitempty" yaml:"delivery_types,omitempty"`
	Platforms           []string    `json:"platforms" yaml:"platforms"`
	IsOneTimePerDevice  bool        `json:"isOneTimePerDevice" yaml:"is_one_time_per_device"`
	IsActive            bool        `json:"isActive" yaml:"is_active"`
	IsFeatured          bool        `json:"isFeatured" yaml:"is_featured"`
	StartDate           time.Time   `json:"startDate" yaml:"start_date"`
	EndDate             time.Time   `json:"endDate" yaml:"end_date"`
	Priority            int         `json:"priority" yaml:"priority"`
	TermsAndConditions  []string    `json:"termsAndConditions,omitempty" yaml:"terms_and_conditions,omitempty"`
	Timestamps          `yaml:",inline"`
}

// ClaimCheck is the answer of /offer/{id}/can-claim.
type ClaimCheck struct {
	CanClaim bool   `json:"canClaim" yaml:"can_claim"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Banner is a promotional banner shown in the storefront.
type Banner struct {
	ID          string     `json:"_id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string     `json:"imageUrl" yaml:"image_url"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty"`
	IsActive    bool       `json:"isActive" yaml:"is_active"`
	Order       int        `json:"order" yaml:"order"`
	Link        string     `json:"link,omitempty" yaml:"link,omitempty"`
	StartDate   *time.Time `json:"startDate" yaml:"start_date"`
	EndDate     *time.Time `json:"endDate" yaml:"end_date"`
	Timestamps  `yaml:",inline"`
}

// Contact statuses.
const (
	ContactPending  = "pending"
	ContactRead     = "read"
	ContactReplied  = "replied"
	ContactArchived = "archived"
)

// ContactStatuses lists every valid contact status.
var ContactStatuses = []string{ContactPending, ContactRead, ContactReplied, ContactArchived}

// Contact is a message sent through the public contact form.
type Contact struct {
	ID           string `json:"_id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Email        string `json:"email" yaml:"email"`
	Phone        string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Subject      string `json:"subject" yaml:"subject"`
	Message      string `json:"message" yaml:"message"`
	Status       string `json:"status" yaml:"status"`
	Notes        string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Replied      bool   `json:"replied" yaml:"replied"`
	ReplyMessage string `json:"replyMessage,omitempty" yaml:"reply_message,omitempty"`
	Timestamps   `yaml:",inline"`
}

// ContactStats summarizes the inbox.
type ContactStats struct {
	Total   int `json:"total" yaml:"total"`
	Pending int `json:"pending" yaml:"pending"`
	Replied int `json:"replied" yaml:"replied"`
	Recent  int `json:"recent" yaml:"recent"`
}

// DeliverySettings controls whether delivery orders are accepted.
type DeliverySettings struct {
	IsEnabled       bool    `json:"isEnabled" yaml:"is_enabled"`
	DisabledMessage string  `json:"disabledMessage,omitempty" yaml:"disabled_message,omitempty"`
	DeliveryFee     float64 `json:"deliveryFee,omitempty" yaml:"delivery_fee,omitempty"`
	FreeDeliveryMin float64 `json:"freeDeliveryMinimum,omitempty" yaml:"free_delivery_minimum,omitempty"`
	MinOrderAmount  float64 `json:"minOrderAmount,omitempty" yaml:"min_order_amount,omitempty"`
}
