package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/soley/admin-cli/internal/api"
	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
)

// SettingsCmd represents the settings command
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Restaurant settings commands",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show restaurant settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := app.From(cmd).Client.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		return format.Print(map[string]any(s))
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key=value>...",
	Short: "Change settings",
	Long: `Change top-level settings. Values are read as YAML scalars, so
"open=true" sends a boolean and "taxRate=0.1" a number.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.From(cmd)
		current, err := a.Client.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		updates, err := parseAssignments(args)
		if err != nil {
			return err
		}
		if current == nil {
			current = api.Settings{}
		}
		for k, v := range updates {
			current[k] = v
		}
		if err := a.Client.UpdateSettings(cmd.Context(), current); err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}
		format.PrintSuccess("✓ Settings updated: %s", keys(updates))
		return nil
	},
}

// parseAssignments turns key=value arguments into typed values.
func parseAssignments(args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		k, raw, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid assignment %q, want key=value", arg)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
			v = raw
		}
		out[k] = v
	}
	return out, nil
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	SettingsCmd.AddCommand(showCmd)
	SettingsCmd.AddCommand(setCmd)
	SettingsCmd.AddCommand(deliveryCmd)
}
