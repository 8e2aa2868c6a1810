package items

import (
	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// ItemsCmd represents the items command
var ItemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"item", "menu"},
	Short:   "Menu item commands",
	Long: `Menu item commands.

Items need an English name, description, SEO meta title and SEO meta
description, plus a category id.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd, filtered(cmd).Section)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := app.From(cmd).Client.GetFoodItem(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.Print(it)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a menu item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := forms.NewFoodItemForm()
		if err := apply(cmd, &f); err != nil {
			return err
		}
		s := sectionFor(cmd)
		defer s.Close()
		return s.Add(cmd.Context(), f)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a menu item",
	Long:  "Update a menu item. Only the given flags change.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := app.From(cmd).Client.GetFoodItem(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		f := forms.FoodItemFormFrom(*it)
		if err := apply(cmd, &f); err != nil {
			return err
		}
		s := sectionFor(cmd)
		defer s.Close()
		return s.Edit(cmd.Context(), args[0], f)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a menu item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(cmd)
		defer s.Close()
		return s.Delete(cmd.Context(), args[0])
	},
}

var stockCmd = &cobra.Command{
	Use:   "stock <id>",
	Short: "Adjust stock",
	Long:  "Add to, subtract from or set the stock quantity of a menu item.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, _ := cmd.Flags().GetInt("quantity")
		op, _ := cmd.Flags().GetString("operation")
		s := sectionFor(cmd)
		defer s.Close()
		return s.AdjustStock(cmd.Context(), args[0], forms.StockForm{Quantity: qty, Operation: op})
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse menu items interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Browse(cmd, filtered(cmd).Section)
	},
}

func sectionFor(cmd *cobra.Command) *section.MenuItemSection {
	return section.MenuItems(app.From(cmd).Deps(), api.FoodItemFilter{IncludeInactive: true})
}

// filtered builds the section for list and browse, which take filter flags.
func filtered(cmd *cobra.Command) *section.MenuItemSection {
	var filter api.FoodItemFilter
	filter.Category, _ = cmd.Flags().GetString("category")
	filter.IncludeInactive, _ = cmd.Flags().GetBool("include-inactive")
	return section.MenuItems(app.From(cmd).Deps(), filter)
}

func apply(cmd *cobra.Command, f *forms.FoodItemForm) error {
	for flag, dst := range map[string]*models.Localized{
		"name":             &f.Name,
		"description":      &f.Description,
		"meta-title":       &f.MetaTitle,
		"meta-description": &f.MetaDescription,
	} {
		if err := app.MergeLocalized(cmd, flag, dst); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	app.SetString(flags, "image", &f.ImageURL)
	app.SetString(flags, "category", &f.Category)
	app.SetString(flags, "tags", &f.Tags)
	app.SetString(flags, "keywords", &f.Keywords)
	app.SetFloat(flags, "price", &f.Price)
	app.SetFloat(flags, "original-price", &f.OriginalPrice)
	app.SetInt(flags, "spice", &f.SpiceLevel)
	app.SetInt(flags, "prep-time", &f.PreparationTime)
	app.SetInt(flags, "stock", &f.StockQuantity)
	app.SetBool(flags, "veg", &f.IsVeg)
	app.SetBool(flags, "vegan", &f.IsVegan)
	app.SetBool(flags, "gluten-free", &f.IsGlutenFree)
	app.SetBool(flags, "featured", &f.IsFeatured)
	app.SetBool(flags, "popular", &f.IsPopular)
	app.SetBool(flags, "active", &f.IsActive)
	app.SetBool(flags, "available", &f.IsAvailable)
	return nil
}

func addFormFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringToString("name", nil, "name per language, e.g. en=Margherita")
	fs.StringToString("description", nil, "description per language")
	fs.StringToString("meta-title", nil, "SEO meta title per language")
	fs.StringToString("meta-description", nil, "SEO meta description per language")
	fs.String("keywords", "", "comma separated SEO keywords")
	fs.String("tags", "", "comma separated tags")
	fs.String("image", "", "image URL")
	fs.String("category", "", "category id")
	fs.Float64("price", 0, "price")
	fs.Float64("original-price", 0, "price before discount")
	fs.Int("spice", 0, "spice level (0-5)")
	fs.Int("prep-time", 15, "preparation time in minutes")
	fs.Int("stock", 0, "stock quantity")
	fs.Bool("veg", false, "vegetarian")
	fs.Bool("vegan", false, "vegan")
	fs.Bool("gluten-free", false, "gluten free")
	fs.Bool("featured", false, "featured on the storefront")
	fs.Bool("popular", false, "marked as popular")
	fs.Bool("active", true, "shown on the menu")
	fs.Bool("available", true, "can be ordered")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "only items of this category id")
	cmd.Flags().Bool("include-inactive", true, "include inactive items")
}

func init() {
	app.AddListFlags(listCmd)
	addFilterFlags(listCmd)
	addFilterFlags(browseCmd)
	addFormFlags(createCmd)
	addFormFlags(updateCmd)

	stockCmd.Flags().IntP("quantity", "q", 0, "quantity")
	stockCmd.Flags().String("operation", api.StockSet, "add, subtract or set")
	stockCmd.MarkFlagRequired("quantity")

	ItemsCmd.AddCommand(listCmd)
	ItemsCmd.AddCommand(getCmd)
	ItemsCmd.AddCommand(createCmd)
	ItemsCmd.AddCommand(updateCmd)
	ItemsCmd.AddCommand(deleteCmd)
	ItemsCmd.AddCommand(stockCmd)
	ItemsCmd.AddCommand(browseCmd)
}
