package categories

import (
	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// CategoriesCmd represents the categories command
var CategoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"category", "cat"},
	Short:   "Menu category commands",
	Long: `Menu category commands.

Names and descriptions are multilingual; pass them as lang=value pairs,
for example --name en=Pizza,es=Pizzas.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd, sectionFor(app.From(cmd)))
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := app.From(cmd).Client.GetCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.Print(cat)
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := forms.NewCategoryForm()
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
	Short: "Update a category",
	Long:  "Update a category. Only the given flags change; everything else keeps its current value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.From(cmd)
		cat, err := a.Client.GetCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		f := forms.CategoryFormFrom(*cat)
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
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(app.From(cmd))
		defer s.Close()
		return s.Delete(cmd.Context(), args[0])
	},
}

func sectionFor(a *app.App) *section.Section[models.Category, forms.CategoryForm] {
	return section.Categories(a.Deps())
}

func apply(cmd *cobra.Command, f *forms.CategoryForm) error {
	if err := app.MergeLocalized(cmd, "name", &f.Name); err != nil {
		return err
	}
	if err := app.MergeLocalized(cmd, "description", &f.Description); err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("image") {
		f.ImageURL, _ = flags.GetString("image")
	}
	if flags.Changed("icon") {
		f.Icon, _ = flags.GetString("icon")
	}
	if flags.Changed("sort") {
		f.SortOrder, _ = flags.GetInt("sort")
	}
	if flags.Changed("active") {
		f.IsActive, _ = flags.GetBool("active")
	}
	return nil
}

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringToString("name", nil, "name per language, e.g. en=Pizza,es=Pizzas")
	cmd.Flags().StringToString("description", nil, "description per language")
	cmd.Flags().String("image", "", "image URL (see 'upload file')")
	cmd.Flags().String("icon", forms.DefaultCategoryIcon, "icon")
	cmd.Flags().Int("sort", 0, "sort order")
	cmd.Flags().Bool("active", true, "whether the category is shown")
}

func init() {
	app.AddListFlags(listCmd)
	addFormFlags(createCmd)
	addFormFlags(updateCmd)

	CategoriesCmd.AddCommand(listCmd)
	CategoriesCmd.AddCommand(getCmd)
	CategoriesCmd.AddCommand(createCmd)
	CategoriesCmd.AddCommand(updateCmd)
	CategoriesCmd.AddCommand(deleteCmd)
	CategoriesCmd.AddCommand(app.BrowseCommand("categories", sectionFor))
}
