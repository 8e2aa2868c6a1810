package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/cmd/auth"
	"github.com/soley/admin-cli/cmd/banners"
	"github.com/soley/admin-cli/cmd/categories"
	"github.com/soley/admin-cli/cmd/config"
	"github.com/soley/admin-cli/cmd/contacts"
	"github.com/soley/admin-cli/cmd/dashboard"
	"github.com/soley/admin-cli/cmd/items"
	"github.com/soley/admin-cli/cmd/offers"
	"github.com/soley/admin-cli/cmd/orders"
	"github.com/soley/admin-cli/cmd/settings"
	"github.com/soley/admin-cli/cmd/upload"
	"github.com/soley/admin-cli/internal/app"
	appConfig "github.com/soley/admin-cli/internal/config"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/models"
)

var (
	cfgFile   string
	debug     bool
	output    string
	assumeYes bool
	lang      string

	current *app.App
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "soley",
	Short: "Soley admin - command-line administration for the Soley restaurant backend",
	Long: `Soley admin manages the restaurant catalog, orders, offers, banners
and customer messages from the terminal.

Every list can be paged and searched, either one page at a time with
"list" or interactively with "browse".`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := appConfig.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		if debug {
			appConfig.SetDebug(true)
		}

		if output != "" {
			if !validFormat(output) {
				return fmt.Errorf("unsupported output format %q (use one of %v)", output, format.Formats)
			}
			appConfig.SetOutputFormat(output)
		}

		if lang != "" {
			lang = models.NormalizeLanguage(lang)
		}

		a, err := app.New(appConfig.Get(), app.Options{
			Debug:     debug,
			AssumeYes: assumeYes,
			Language:  lang,
			In:        cmd.InOrStdin(),
			Err:       cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		current = a
		cmd.SetContext(app.WithContext(cmd.Context(), a))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && (current == nil || !current.ErrorShown()) {
		format.PrintError("%v", err)
	}
	return err
}

func validFormat(f string) bool {
	for _, v := range format.Formats {
		if v == f {
			return true
		}
	}
	return false
}

func init() {
	// resource groups add their own login check on top of the root hook
	cobra.EnableTraverseRunHooks = true

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+appConfig.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (table, json, json-compact, yaml, text)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "display language for this invocation (en, es, ca, ar, fr)")

	rootCmd.SetErr(os.Stderr)

	// Add subcommands
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(categories.CategoriesCmd)
	rootCmd.AddCommand(items.ItemsCmd)
	rootCmd.AddCommand(orders.OrdersCmd)
	rootCmd.AddCommand(offers.OffersCmd)
	rootCmd.AddCommand(banners.BannersCmd)
	rootCmd.AddCommand(contacts.ContactsCmd)
	rootCmd.AddCommand(settings.SettingsCmd)
	rootCmd.AddCommand(dashboard.DashboardCmd)
	rootCmd.AddCommand(upload.UploadCmd)
	rootCmd.AddCommand(config.ConfigCmd)
}
