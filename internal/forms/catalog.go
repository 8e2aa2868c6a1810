package forms

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/soley/admin-cli/internal/models"
)

// DefaultCategoryIcon is used when a category form leaves the icon empty.
const DefaultCategoryIcon = "🍔"

// CategoryForm creates or edits a category.
type CategoryForm struct {
	Name        models.Localized
	Description models.Localized
	ImageURL    string
	Icon        string
	SortOrder   int
	IsActive    bool
}

// NewCategoryForm returns an empty, active category form.
func NewCategoryForm() CategoryForm {
	return CategoryForm{Icon: DefaultCategoryIcon, IsActive: true}
}

// CategoryFormFrom prefills a form for editing c.
func CategoryFormFrom(c models.Category) CategoryForm {
	f := CategoryForm{
		Name:        c.Name.Trimmed(),
		Description: c.Description.Trimmed(),
		ImageURL:    c.ImageURL,
		Icon:        c.Icon,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
	}
	if f.Icon == "" {
		f.Icon = DefaultCategoryIcon
	}
	return f
}

func (f CategoryForm) Validate() error {
	return collect(validation.Errors{
		"name.en":  validation.Validate(f.Name.English(), validation.Required.Error("English name is required")),
		"imageUrl": validation.Validate(strings.TrimSpace(f.ImageURL), validation.Required.Error("Image URL is required")),
	}, "name.en", "imageUrl")
}

type categoryPayload struct {
	Name        models.Localized `json:"name"`
	Description models.Localized `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Icon        string           `json:"icon"`
	SortOrder   int              `json:"sortOrder"`
	IsActive    bool             `json:"isActive"`
}

func (f CategoryForm) Payload() any {
	icon := f.Icon
	if icon == "" {
		icon = DefaultCategoryIcon
	}
	return categoryPayload{
		Name:        f.Name.Trimmed(),
		Description: f.Description.Trimmed(),
		ImageURL:    strings.TrimSpace(f.ImageURL),
		Icon:        icon,
		SortOrder:   f.SortOrder,
		IsActive:    f.IsActive,
	}
}

// FoodItemForm creates or edits a menu item. Tags and Keywords are comma separated.
type FoodItemForm struct {
	Name            models.Localized
	Description     models.Localized
	Price           float64
	OriginalPrice   float64
	ImageURL        string
	Images          []string
	Category        string
	IsVeg           bool
	IsVegan         bool
	IsGlutenFree    bool
	SpiceLevel      int
	IsFeatured      bool
	IsPopular       bool
	IsActive        bool
	IsAvailable     bool
	PreparationTime int
	StockQuantity   int
	Tags            string
	MealSizes       []models.PricedOption
	Extras          []models.PricedOption
	Addons          []models.PricedOption
	MetaTitle       models.Localized
	MetaDescription models.Localized
	Keywords        string
}

// NewFoodItemForm returns an empty item form that is active and available.
func NewFoodItemForm() FoodItemForm {
	return FoodItemForm{IsActive: true, IsAvailable: true, PreparationTime: 15}
}

// FoodItemFormFrom prefills a form for editing it.
func FoodItemFormFrom(it models.FoodItem) FoodItemForm {
	keywords := make([]string, 0, len(it.SEOData.Keywords))
	for _, k := range it.SEOData.Keywords {
		if s := k.English(); s != "" {
			keywords = append(keywords, s)
		}
	}
	return FoodItemForm{
		Name:            it.Name.Trimmed(),
		Description:     it.Description.Trimmed(),
		Price:           it.Price,
		OriginalPrice:   it.OriginalPrice,
		ImageURL:        it.ImageURL,
		Images:          it.Images,
		Category:        it.Category.ID,
		IsVeg:           it.IsVeg,
		IsVegan:         it.IsVegan,
		IsGlutenFree:    it.IsGlutenFree,
		SpiceLevel:      it.SpiceLevel,
		IsFeatured:      it.IsFeatured,
		IsPopular:       it.IsPopular,
		IsActive:        it.IsActive,
		IsAvailable:     it.IsAvailable,
		PreparationTime: it.PreparationTime,
		StockQuantity:   it.StockQuantity,
		MealSizes:       it.MealSizes,
		Extras:          it.Extras,
		Addons:          it.Addons,
		MetaTitle:       it.SEOData.MetaTitle.Trimmed(),
		MetaDescription: it.SEOData.MetaDescription.Trimmed(),
		Keywords:        strings.Join(keywords, ", "),
	}
}

func (f FoodItemForm) Validate() error {
	return collect(validation.Errors{
		"name.en":                    validation.Validate(f.Name.English(), validation.Required.Error("English item name is required.")),
		"description.en":             validation.Validate(f.Description.English(), validation.Required.Error("English description is required.")),
		"category":                   validation.Validate(strings.TrimSpace(f.Category), validation.Required.Error("Category is required.")),
		"seoData.metaTitle.en":       validation.Validate(f.MetaTitle.English(), validation.Required.Error("SEO Meta Title (English) is required.")),
		"seoData.metaDescription.en": validation.Validate(f.MetaDescription.English(), validation.Required.Error("SEO Meta Description (English) is required.")),
	}, "name.en", "description.en", "category", "seoData.metaTitle.en", "seoData.metaDescription.en")
}

type seoPayload struct {
	MetaTitle       models.Localized   `json:"metaTitle"`
	MetaDescription models.Localized   `json:"metaDescription"`
	Keywords        []models.Localized `json:"keywords"`
}

type foodItemPayload struct {
	Name            models.Localized      `json:"name"`
	Description     models.Localized      `json:"description"`
	Price           float64               `json:"price"`
	OriginalPrice   float64               `json:"originalPrice"`
	ImageURL        string                `json:"imageUrl"`
	Images          []string              `json:"images"`
	Category        string                `json:"category"`
	IsVeg           bool                  `json:"isVeg"`
	IsVegan         bool                  `json:"isVegan"`
	IsGlutenFree    bool                  `json:"isGlutenFree"`
	SpiceLevel      int                   `json:"spiceLevel"`
	IsFeatured      bool                  `json:"isFeatured"`
	IsPopular       bool                  `json:"isPopular"`
	IsActive        bool                  `json:"isActive"`
	IsAvailable     bool                  `json:"isAvailable"`
	PreparationTime int                   `json:"preparationTime"`
	StockQuantity   int                   `json:"stockQuantity"`
	Tags            []models.Localized    `json:"tags"`
	MealSizes       []models.PricedOption `json:"mealSizes"`
	Extras          []models.PricedOption `json:"extras"`
	Addons          []models.PricedOption `json:"addons"`
	SEOData         seoPayload            `json:"seoData"`
}

func trimOptions(opts []models.PricedOption) []models.PricedOption {
	out := make([]models.PricedOption, 0, len(opts))
	for _, o := range opts {
		o.Name = o.Name.Trimmed()
		out = append(out, o)
	}
	return out
}

func (f FoodItemForm) Payload() any {
	images := f.Images
	if images == nil {
		images = []string{}
	}
	return foodItemPayload{
		Name:            f.Name.Trimmed(),
		Description:     f.Description.Trimmed(),
		Price:           f.Price,
		OriginalPrice:   f.OriginalPrice,
		ImageURL:        strings.TrimSpace(f.ImageURL),
		Images:          images,
		Category:        strings.TrimSpace(f.Category),
		IsVeg:           f.IsVeg,
		IsVegan:         f.IsVegan,
		IsGlutenFree:    f.IsGlutenFree,
		SpiceLevel:      f.SpiceLevel,
		IsFeatured:      f.IsFeatured,
		IsPopular:       f.IsPopular,
		IsActive:        f.IsActive,
		IsAvailable:     f.IsAvailable,
		PreparationTime: f.PreparationTime,
		StockQuantity:   f.StockQuantity,
		Tags:            sameInEveryLanguage(splitList(f.Tags, ",")),
		MealSizes:       trimOptions(f.MealSizes),
		Extras:          trimOptions(f.Extras),
		Addons:          trimOptions(f.Addons),
		SEOData: seoPayload{
			MetaTitle:       f.MetaTitle.Trimmed(),
			MetaDescription: f.MetaDescription.Trimmed(),
			Keywords:        sameInEveryLanguage(splitList(f.Keywords, ",")),
		},
	}
}
