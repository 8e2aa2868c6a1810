package auth

import (
	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/push"
)

// pushCmd groups push-notification token commands
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push notification registration",
	Long:  "Register or remove a push-notification token for this admin client",
}

var pushRegisterCmd = &cobra.Command{
	Use:   "register <fcm-token>",
	Short: "Register a push token",
	Long:  "Register a push token with the backend. Failures are logged and never fail the command.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.From(cmd)
		if err := a.RequireLogin(); err != nil {
			return err
		}
		if push.NewRegistrar(a.Client, a.Logger).Register(cmd.Context(), args[0]) {
			format.PrintSuccess("✓ Push token registered")
		} else {
			format.PrintWarning("push token was not registered, see the log for details")
		}
		return nil
	},
}

var pushUnregisterCmd = &cobra.Command{
	Use:   "unregister <fcm-token>",
	Short: "Remove a push token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.From(cmd)
		if err := a.RequireLogin(); err != nil {
			return err
		}
		if push.NewRegistrar(a.Client, a.Logger).Unregister(cmd.Context(), args[0]) {
			format.PrintSuccess("✓ Push token removed")
		}
		return nil
	},
}

func init() {
	pushCmd.AddCommand(pushRegisterCmd)
	pushCmd.AddCommand(pushUnregisterCmd)
}
