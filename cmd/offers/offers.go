package offers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// OffersCmd represents the offers command
var OffersCmd = &cobra.Command{
	Use:     "offers",
	Aliases: []string{"offer"},
	Short:   "Promotional offer commands",
	Long: fmt.Sprintf(`Promotional offer commands.

Offer types: %s. Combo offers need at least one
--combo item=quantity pair.`, strings.Join(models.OfferTypes, ", ")),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd, filtered(cmd).Section)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		of, err := app.From(cmd).Client.GetOffer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.Print(of)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an offer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := forms.NewOfferForm()
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
	Short: "Update an offer",
	Long:  "Update an offer. Only the given flags change.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		of, err := app.From(cmd).Client.GetOffer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		f := forms.OfferFormFrom(*of)
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
	Short: "Delete an offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(cmd)
		defer s.Close()
		return s.Delete(cmd.Context(), args[0])
	},
}

var applyCmd = &cobra.Command{
	Use:   "apply <id> <item-id>...",
	Short: "Attach an offer to menu items",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(cmd)
		defer s.Close()
		return s.ApplyToItems(cmd.Context(), args[0], args[1:])
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <id> <item-id>...",
	Short: "Detach an offer from menu items",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(cmd)
		defer s.Close()
		return s.RemoveFromItems(cmd.Context(), args[0], args[1:])
	},
}

var canClaimCmd = &cobra.Command{
	Use:   "can-claim <id>",
	Short: "Check whether this device can still claim an offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		check, err := app.From(cmd).Client.CanClaimOffer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.Print(check)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse offers interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Browse(cmd, filtered(cmd).Section)
	},
}

func sectionFor(cmd *cobra.Command) *section.OfferSection {
	return section.Offers(app.From(cmd).Deps(), api.OfferFilter{})
}

func filtered(cmd *cobra.Command) *section.OfferSection {
	var filter api.OfferFilter
	filter.Type, _ = cmd.Flags().GetString("type")
	if cmd.Flags().Changed("featured") {
		featured, _ := cmd.Flags().GetBool("featured")
		filter.Featured = &featured
	}
	return section.Offers(app.From(cmd).Deps(), filter)
}

func apply(cmd *cobra.Command, f *forms.OfferForm) error {
	fs := cmd.Flags()
	app.SetString(fs, "title", &f.Title)
	app.SetString(fs, "description", &f.Description)
	app.SetString(fs, "subtitle", &f.Subtitle)
	app.SetString(fs, "image", &f.ImageURL)
	app.SetString(fs, "color", &f.BannerColor)
	app.SetString(fs, "type", &f.Type)
	app.SetString(fs, "terms", &f.Terms)
	app.SetFloat(fs, "value", &f.Value)
	app.SetFloat(fs, "min-order", &f.MinOrderAmount)
	app.SetFloat(fs, "max-discount", &f.MaxDiscountAmount)
	app.SetFloat(fs, "combo-price", &f.ComboPrice)
	app.SetInt(fs, "usage-limit", &f.UsageLimit)
	app.SetInt(fs, "user-usage-limit", &f.UserUsageLimit)
	app.SetInt(fs, "priority", &f.Priority)
	app.SetStrings(fs, "categories", &f.AppliedToCategories)
	app.SetStrings(fs, "items", &f.AppliedToItems)
	app.SetStrings(fs, "delivery-types", &f.DeliveryTypes)
	app.SetStrings(fs, "platforms", &f.Platforms)
	app.SetBool(fs, "one-time", &f.IsOneTimePerDevice)
	app.SetBool(fs, "active", &f.IsActive)
	app.SetBool(fs, "featured", &f.IsFeatured)

	if err := app.SetTime(fs, "start", &f.StartDate); err != nil {
		return err
	}
	if err := app.SetTime(fs, "end", &f.EndDate); err != nil {
		return err
	}

	if fs.Changed("combo") {
		combo, err := fs.GetStringToInt("combo")
		if err != nil {
			return err
		}
		f.ComboItems = comboItems(combo)
	}
	return nil
}

// comboItems orders the pairs by item id so payloads are stable.
func comboItems(m map[string]int) []models.ComboItem {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]models.ComboItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.ComboItem{FoodItem: id, Quantity: m[id]})
	}
	return out
}

func addFormFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("title", "", "title")
	fs.String("description", "", "description")
	fs.String("subtitle", "", "subtitle")
	fs.String("image", "", "image URL")
	fs.String("color", forms.DefaultBannerColor, "banner color")
	fs.String("type", models.OfferPercentage, "offer type")
	fs.Float64("value", 0, "discount value (percent or amount)")
	fs.Float64("min-order", 0, "minimum order amount")
	fs.Float64("max-discount", 0, "maximum discount amount")
	fs.StringToInt("combo", nil, "combo items as item-id=quantity")
	fs.Float64("combo-price", 0, "combo price")
	fs.Int("usage-limit", 0, "total usage limit (0 for unlimited)")
	fs.Int("user-usage-limit", 1, "uses per customer")
	fs.StringSlice("categories", nil, "category ids the offer applies to")
	fs.StringSlice("items", nil, "menu item ids the offer applies to")
	fs.StringSlice("delivery-types", nil, "delivery types the offer applies to")
	fs.StringSlice("platforms", []string{forms.PlatformAll}, "platforms (all, web, android, ios)")
	fs.Bool("one-time", false, "claimable once per device")
	fs.Bool("active", true, "active")
	fs.Bool("featured", false, "featured")
	fs.String("start", "", "start date (YYYY-MM-DD or RFC 3339)")
	fs.String("end", "", "end date (YYYY-MM-DD or RFC 3339)")
	fs.Int("priority", 1, "display priority")
	fs.String("terms", "", "terms and conditions, one per line")
}

func init() {
	app.AddListFlags(listCmd)
	for _, c := range []*cobra.Command{listCmd, browseCmd} {
		c.Flags().String("type", "", "only offers of this type")
		c.Flags().Bool("featured", false, "only featured (or, with =false, non-featured) offers")
	}
	addFormFlags(createCmd)
	addFormFlags(updateCmd)

	OffersCmd.AddCommand(listCmd)
	OffersCmd.AddCommand(getCmd)
	OffersCmd.AddCommand(createCmd)
	OffersCmd.AddCommand(updateCmd)
	OffersCmd.AddCommand(deleteCmd)
	OffersCmd.AddCommand(applyCmd)
	OffersCmd.AddCommand(removeCmd)
	OffersCmd.AddCommand(canClaimCmd)
	OffersCmd.AddCommand(browseCmd)
}
