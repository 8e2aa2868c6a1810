package banners

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// BannersCmd represents the banners command
var BannersCmd = &cobra.Command{
	Use:     "banners",
	Aliases: []string{"banner"},
	Short:   "Storefront banner commands",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List banners",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd, sectionFor(app.From(cmd)).Section)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := app.From(cmd).Client.GetBanner(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.Print(b)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a banner",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := forms.BannerForm{IsActive: true}
		if err := apply(cmd, &f); err != nil {
			return err
		}
		s := sectionFor(app.From(cmd))
		defer s.Close()
		return s.Add(cmd.Context(), f)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a banner",
	Long:  "Update a banner. Only the given flags change.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.From(cmd)
		b, err := a.Client.GetBanner(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		f := forms.BannerFormFrom(*b)
		if err := apply(cmd, &f); err != nil {
			return err
		}
		s := sectionFor(a)
		defer s.Close()
		return s.Edit(cmd.Context(), args[0], f)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(app.From(cmd))
		defer s.Close()
		return s.Delete(cmd.Context(), args[0])
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Activate or deactivate a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(app.From(cmd))
		defer s.Close()
		return s.Toggle(cmd.Context(), args[0])
	},
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Set the display order",
	Long:  "Set the display order of banners. The first id is shown first.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(app.From(cmd))
		defer s.Close()
		return s.Reorder(cmd.Context(), args)
	},
}

func sectionFor(a *app.App) *section.BannerSection {
	return section.Banners(a.Deps())
}

func apply(cmd *cobra.Command, f *forms.BannerForm) error {
	fs := cmd.Flags()
	app.SetString(fs, "title", &f.Title)
	app.SetString(fs, "description", &f.Description)
	app.SetString(fs, "image", &f.ImageURL)
	app.SetString(fs, "category", &f.Category)
	app.SetString(fs, "link", &f.Link)
	app.SetInt(fs, "order", &f.Order)
	app.SetBool(fs, "active", &f.IsActive)

	for flag, dst := range map[string]**time.Time{"start": &f.StartDate, "end": &f.EndDate} {
		if !fs.Changed(flag) {
			continue
		}
		raw, _ := fs.GetString(flag)
		t, err := app.ParseDate(raw)
		if err != nil {
			return err
		}
		if t.IsZero() {
			*dst = nil
		} else {
			*dst = &t
		}
	}
	return nil
}

func addFormFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String("title", "", "title")
	fs.String("description", "", "description")
	fs.String("image", "", "image URL")
	fs.String("category", "", "category shown on the banner")
	fs.String("link", "", "link target")
	fs.Int("order", 0, "display position")
	fs.Bool("active", true, "active")
	fs.String("start", "", "first day shown (empty to clear)")
	fs.String("end", "", "last day shown (empty to clear)")
}

func init() {
	app.AddListFlags(listCmd)
	addFormFlags(createCmd)
	addFormFlags(updateCmd)

	BannersCmd.AddCommand(listCmd)
	BannersCmd.AddCommand(getCmd)
	BannersCmd.AddCommand(createCmd)
	BannersCmd.AddCommand(updateCmd)
	BannersCmd.AddCommand(deleteCmd)
	BannersCmd.AddCommand(toggleCmd)
	BannersCmd.AddCommand(reorderCmd)
	BannersCmd.AddCommand(app.BrowseCommand("banners", func(a *app.App) *section.Section[models.Banner, forms.BannerForm] {
		return sectionFor(a).Section
	}))
}
