package section

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/dialog"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/pkg/log"
)

// Deps are shared by every resource section.
type Deps struct {
	Client    *api.Client
	Confirmer dialog.Confirmer
	Notifier  dialog.Notifier
	Logger    log.Logger
	PageSize  int
	Debounce  time.Duration
	Colors    bool
}

func options[T any, F forms.Form](d Deps, name, plural string) Options[T, F] {
	return Options[T, F]{
		Name:      name,
		Plural:    plural,
		Confirmer: d.Confirmer,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
		PageSize:  d.PageSize,
		Debounce:  d.Debounce,
	}
}

func activeCell(d Deps) func(bool) string {
	return func(b bool) string { return format.Active(b, d.Colors) }
}

// Categories is the category section.
func Categories(d Deps) *Section[models.Category, forms.CategoryForm] {
	c := d.Client
	active := activeCell(d)

	o := options[models.Category, forms.CategoryForm](d, "category", "categories")
	o.Fetch = c.ListCategories
	o.ID = func(cat models.Category) string { return cat.ID }
	o.Columns = []Column[models.Category]{
		{Header: "ID", Value: func(cat models.Category) string { return cat.ID }},
		{Header: "Name", Value: func(cat models.Category) string { return cat.Name.Name(c.Language()) }},
		{Header: "Description", Value: func(cat models.Category) string {
			return format.Truncate(cat.Description.Description(c.Language()), 40)
		}},
		{Header: "Sort", Value: func(cat models.Category) string { return strconv.Itoa(cat.SortOrder) }},
		{Header: "Status", Value: func(cat models.Category) string { return active(cat.IsActive) }},
	}
	o.Mutator = Funcs[forms.CategoryForm]{
		CreateFunc: func(ctx context.Context, f forms.CategoryForm) error {
			_, err := c.CreateCategory(ctx, f.Payload())
			return err
		},
		UpdateFunc: func(ctx context.Context, id string, f forms.CategoryForm) error {
			_, err := c.UpdateCategory(ctx, id, f.Payload())
			return err
		},
		DeleteFunc: c.DeleteCategory,
	}
	return New(o)
}

// MenuItemSection lists menu items and adjusts their stock.
type MenuItemSection struct {
	*Section[models.FoodItem, forms.FoodItemForm]
	client *api.Client
}

// MenuItems is the menu item section.
func MenuItems(d Deps, filter api.FoodItemFilter) *MenuItemSection {
	c := d.Client
	active := activeCell(d)

	o := options[models.FoodItem, forms.FoodItemForm](d, "menu item", "menu items")
	o.Fetch = func(ctx context.Context, p models.ListParams) (models.Page[models.FoodItem], error) {
		return c.ListFoodItems(ctx, p, filter)
	}
	o.ID = func(it models.FoodItem) string { return it.ID }
	o.Columns = []Column[models.FoodItem]{
		{Header: "ID", Value: func(it models.FoodItem) string { return it.ID }},
		{Header: "Name", Value: func(it models.FoodItem) string { return it.Name.Name(c.Language()) }},
		{Header: "Category", Value: func(it models.FoodItem) string {
			if it.Category.Name == nil {
				return it.Category.ID
			}
			return it.Category.Name.Name(c.Language())
		}},
		{Header: "Price", Value: func(it models.FoodItem) string { return format.Currency(it.Price) }},
		{Header: "Stock", Value: func(it models.FoodItem) string { return strconv.Itoa(it.StockQuantity) }},
		{Header: "Status", Value: func(it models.FoodItem) string { return active(it.IsActive) }},
	}
	o.Mutator = Funcs[forms.FoodItemForm]{
		CreateFunc: func(ctx context.Context, f forms.FoodItemForm) error {
			_, err := c.CreateFoodItem(ctx, f.Payload())
			return err
		},
		UpdateFunc: func(ctx context.Context, id string, f forms.FoodItemForm) error {
			_, err := c.UpdateFoodItem(ctx, id, f.Payload())
			return err
		},
		DeleteFunc: c.DeleteFoodItem,
	}
	return &MenuItemSection{Section: New(o), client: c}
}

// AdjustStock changes the stock of menu item id.
func (s *MenuItemSection) AdjustStock(ctx context.Context, id string, f forms.StockForm) error {
	return s.Act(ctx, Action{
		Form:    f,
		Success: "Stock updated successfully",
		Failure: "Error updating stock",
		Run: func(ctx context.Context) error {
			return s.client.UpdateStock(ctx, id, f.Quantity, f.Operation)
		},
	})
}

// OrderSection lists orders; the only mutation is a status change.
type OrderSection struct {
	*Section[models.Order, forms.OrderStatusForm]
	client *api.Client
}

// Orders is the order section.
func Orders(d Deps) *OrderSection {
	c := d.Client

	o := options[models.Order, forms.OrderStatusForm](d, "order", "orders")
	o.Fetch = c.ListOrders
	o.ID = func(or models.Order) string { return or.ID }
	o.Columns = []Column[models.Order]{
		{Header: "ID", Value: func(or models.Order) string { return or.ID }},
		{Header: "Order", Value: func(or models.Order) string { return or.OrderNumber }},
		{Header: "Customer", Value: func(or models.Order) string { return or.CustomerName }},
		{Header: "Items", Value: func(or models.Order) string { return strconv.Itoa(len(or.Items)) }},
		{Header: "Total", Value: func(or models.Order) string { return format.Currency(or.Total) }},
		{Header: "Status", Value: func(or models.Order) string { return format.Badge(or.Status, d.Colors) }},
		{Header: "Placed", Value: func(or models.Order) string { return format.Date(or.CreatedAt) }},
	}
	return &OrderSection{Section: New(o), client: c}
}

// UpdateStatus moves order id to a new status.
func (s *OrderSection) UpdateStatus(ctx context.Context, id string, f forms.OrderStatusForm) error {
	return s.Act(ctx, Action{
		Form:    f,
		Success: "Order status updated successfully",
		Failure: "Error updating order status",
		Run: func(ctx context.Context) error {
			return s.client.UpdateOrderStatus(ctx, id, f.Status, f.Note())
		},
	})
}

// OfferSection lists offers and links them to menu items.
type OfferSection struct {
	*Section[models.Offer, forms.OfferForm]
	client *api.Client
}

// Offers is the offer section.
func Offers(d Deps, filter api.OfferFilter) *OfferSection {
	c := d.Client
	active := activeCell(d)

	o := options[models.Offer, forms.OfferForm](d, "offer", "offers")
	o.Fetch = func(ctx context.Context, p models.ListParams) (models.Page[models.Offer], error) {
		return c.ListOffers(ctx, p, filter)
	}
	o.ID = func(of models.Offer) string { return of.ID }
	o.Columns = []Column[models.Offer]{
		{Header: "ID", Value: func(of models.Offer) string { return of.ID }},
		{Header: "Title", Value: func(of models.Offer) string { return of.Title }},
		{Header: "Type", Value: func(of models.Offer) string { return of.Type }},
		{Header: "Value", Value: OfferValue},
		{Header: "Platforms", Value: func(of models.Offer) string { return Platforms(of.Platforms) }},
		{Header: "Ends", Value: func(of models.Offer) string { return format.Date(of.EndDate) }},
		{Header: "Status", Value: func(of models.Offer) string { return active(of.IsActive) }},
	}
	o.Mutator = Funcs[forms.OfferForm]{
		CreateFunc: func(ctx context.Context, f forms.OfferForm) error {
			_, err := c.CreateOffer(ctx, f.Payload())
			return err
		},
		UpdateFunc: func(ctx context.Context, id string, f forms.OfferForm) error {
			_, err := c.UpdateOffer(ctx, id, f.Payload())
			return err
		},
		DeleteFunc: c.DeleteOffer,
	}
	return &OfferSection{Section: New(o), client: c}
}

// ApplyToItems attaches offer id to the given menu items.
func (s *OfferSection) ApplyToItems(ctx context.Context, id string, itemIDs []string) error {
	return s.Act(ctx, Action{
		Success: fmt.Sprintf("Offer applied to %d item(s)", len(itemIDs)),
		Failure: "Error applying offer",
		Run:     func(ctx context.Context) error { return s.client.ApplyOfferToItems(ctx, id, itemIDs) },
	})
}

// RemoveFromItems detaches offer id from the given menu items.
func (s *OfferSection) RemoveFromItems(ctx context.Context, id string, itemIDs []string) error {
	return s.Act(ctx, Action{
		Confirm: fmt.Sprintf("Remove this offer from %d item(s)?", len(itemIDs)),
		Success: fmt.Sprintf("Offer removed from %d item(s)", len(itemIDs)),
		Failure: "Error removing offer",
		Run:     func(ctx context.Context) error { return s.client.RemoveOfferFromItems(ctx, id, itemIDs) },
	})
}

// OfferValue describes the discount of an offer.
func OfferValue(of models.Offer) string {
	switch of.Type {
	case models.OfferPercentage:
		return strconv.FormatFloat(of.Value, 'f', -1, 64) + "%"
	case models.OfferFixedAmount:
		return format.Currency(of.Value)
	case models.OfferCombo:
		if of.ComboPrice > 0 {
			return format.Currency(of.ComboPrice)
		}
		return "combo"
	case models.OfferFreeDelivery:
		return "free delivery"
	case models.OfferBOGO:
		return "buy one get one"
	default:
		return ""
	}
}

// Platforms renders the platform list; none or "all" means every platform.
func Platforms(p []string) string {
	for _, v := range p {
		if v == forms.PlatformAll {
			return "ALL"
		}
	}
	if len(p) == 0 {
		return "ALL"
	}
	return strings.ToUpper(strings.Join(p, ", "))
}

// BannerSection lists banners and toggles or reorders them.
type BannerSection struct {
	*Section[models.Banner, forms.BannerForm]
	client *api.Client
}

// Banners is the banner section.
func Banners(d Deps) *BannerSection {
	c := d.Client
	active := activeCell(d)

	o := options[models.Banner, forms.BannerForm](d, "banner", "banners")
	o.Fetch = c.ListBanners
	o.ID = func(b models.Banner) string { return b.ID }
	o.Columns = []Column[models.Banner]{
		{Header: "ID", Value: func(b models.Banner) string { return b.ID }},
		{Header: "Order", Value: func(b models.Banner) string { return strconv.Itoa(b.Order) }},
		{Header: "Title", Value: func(b models.Banner) string { return b.Title }},
		{Header: "Category", Value: func(b models.Banner) string { return b.Category }},
		{Header: "Status", Value: func(b models.Banner) string { return active(b.IsActive) }},
	}
	o.Mutator = Funcs[forms.BannerForm]{
		CreateFunc: func(ctx context.Context, f forms.BannerForm) error {
			_, err := c.CreateBanner(ctx, f.Payload())
			return err
		},
		UpdateFunc: func(ctx context.Context, id string, f forms.BannerForm) error {
			_, err := c.UpdateBanner(ctx, id, f.Payload())
			return err
		},
		DeleteFunc: c.DeleteBanner,
	}
	return &BannerSection{Section: New(o), client: c}
}

// Toggle flips the active flag of banner id.
func (s *BannerSection) Toggle(ctx context.Context, id string) error {
	return s.Act(ctx, Action{
		Success: "Banner status updated successfully",
		Failure: "Error updating banner status",
		Run:     func(ctx context.Context) error { return s.client.ToggleBannerStatus(ctx, id) },
	})
}

// Reorder assigns display positions in the order ids are given, starting at 0.
func (s *BannerSection) Reorder(ctx context.Context, ids []string) error {
	orders := make([]api.BannerOrder, len(ids))
	for i, id := range ids {
		orders[i] = api.BannerOrder{ID: id, Order: i}
	}
	return s.Act(ctx, Action{
		Success: "Banners reordered successfully",
		Failure: "Error reordering banners",
		Run:     func(ctx context.Context) error { return s.client.ReorderBanners(ctx, orders) },
	})
}

// ContactSection is the contact inbox.
type ContactSection struct {
	*Section[models.Contact, forms.ContactReplyForm]
	client *api.Client
}

// Contacts is the contact section, optionally limited to one status.
func Contacts(d Deps, status string) *ContactSection {
	c := d.Client

	o := options[models.Contact, forms.ContactReplyForm](d, "contact", "contacts")
	o.Fetch = func(ctx context.Context, p models.ListParams) (models.Page[models.Contact], error) {
		return c.ListContacts(ctx, p, status)
	}
	o.ID = func(ct models.Contact) string { return ct.ID }
	o.Columns = []Column[models.Contact]{
		{Header: "ID", Value: func(ct models.Contact) string { return ct.ID }},
		{Header: "Name", Value: func(ct models.Contact) string { return ct.Name }},
		{Header: "Email", Value: func(ct models.Contact) string { return ct.Email }},
		{Header: "Subject", Value: func(ct models.Contact) string { return format.Truncate(ct.Subject, 40) }},
		{Header: "Status", Value: func(ct models.Contact) string { return format.Badge(ct.Status, d.Colors) }},
		{Header: "Received", Value: func(ct models.Contact) string { return format.Date(ct.CreatedAt) }},
	}
	o.Mutator = Funcs[forms.ContactReplyForm]{DeleteFunc: c.DeleteContact}
	return &ContactSection{Section: New(o), client: c}
}

// Reply sends a reply to contact id.
func (s *ContactSection) Reply(ctx context.Context, id string, f forms.ContactReplyForm) error {
	return s.Act(ctx, Action{
		Form:    f,
		Success: "Reply sent successfully",
		Failure: "Failed to send reply",
		Run: func(ctx context.Context) error {
			return s.client.ReplyToContact(ctx, id, strings.TrimSpace(f.ReplyMessage))
		},
	})
}

// SetStatus changes the status of contact id.
func (s *ContactSection) SetStatus(ctx context.Context, id string, f forms.ContactStatusForm) error {
	return s.Act(ctx, Action{
		Form:    f,
		Success: "Status updated successfully",
		Failure: "Failed to update status",
		Run: func(ctx context.Context) error {
			return s.client.UpdateContactStatus(ctx, id, f.Status, f.Notes)
		},
	})
}
