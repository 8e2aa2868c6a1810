package app

import (
	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/browse"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// AddListFlags registers --page and --search on a list command.
func AddListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("page", "p", 1, "page to show")
	cmd.Flags().StringP("search", "s", "", "search text")
}

// List loads the page selected by the list flags and prints it.
func List[T any, F forms.Form](cmd *cobra.Command, s *section.Section[T, F]) error {
	defer s.Close()

	page, _ := cmd.Flags().GetInt("page")
	search, _ := cmd.Flags().GetString("search")
	if err := s.List().Load(cmd.Context(), page, search); err != nil {
		return err
	}
	return PrintPage(s)
}

// PrintPage prints the current page: raw records for structured formats,
// the rendered columns otherwise.
func PrintPage[T any, F forms.Form](s *section.Section[T, F]) error {
	if format.IsStructured() {
		snap := s.List().Snapshot()
		return format.Print(models.Page[T]{Items: snap.Items, Info: snap.Info})
	}
	return format.Print(s.Table())
}

// Browse runs the interactive loop over s.
func Browse[T any, F forms.Form](cmd *cobra.Command, s *section.Section[T, F]) error {
	a := From(cmd)
	return browse.Run(cmd.Context(), s, browse.Options{
		In:     a.In,
		Out:    cmd.OutOrStdout(),
		Colors: a.Colors,
		Logger: a.Logger,
	})
}

// BrowseCommand returns the "browse" subcommand for a resource.
func BrowseCommand[T any, F forms.Form](plural string, build func(a *App) *section.Section[T, F]) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse " + plural + " interactively",
		Long:  "Page through " + plural + " interactively. Type to search; :h lists commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := From(cmd)
			if err := a.RequireLogin(); err != nil {
				return err
			}
			return Browse(cmd, build(a))
		},
	}
}

// From returns the App of a running command.
func From(cmd *cobra.Command) *App {
	return FromContext(cmd.Context())
}
