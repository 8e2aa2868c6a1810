package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/config"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/models"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "CLI configuration commands",
	Long: `CLI configuration commands.

Settings live in $HOME/` + config.DefaultFileName + ` and can be overridden
by SOLEY_* environment variables or a .env file.`,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Long:  "Show the current configuration. The session token is masked.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *config.Get()
		if cfg.Session.AuthToken != "" {
			cfg.Session.AuthToken = mask(cfg.Session.AuthToken)
		}
		return format.Print(cfg)
	},
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		return nil
	},
}

var setLanguageCmd = &cobra.Command{
	Use:   "set-language <lang>",
	Short: "Set the preferred language",
	Long:  "Set the language sent as Accept-Language and used for display (en, es, ca, ar, fr).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := models.NormalizeLanguage(args[0])
		if err := config.SetLanguage(lang); err != nil {
			return fmt.Errorf("failed to save language: %w", err)
		}
		app.From(cmd).Client.SetLanguage(lang)
		format.PrintSuccess("✓ Language set to %s", lang)
		return nil
	},
}

func mask(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "…" + token[len(token)-4:]
}

func init() {
	ConfigCmd.AddCommand(showCmd)
	ConfigCmd.AddCommand(pathCmd)
	ConfigCmd.AddCommand(setLanguageCmd)
}
