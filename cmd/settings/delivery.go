package settings

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
)

var deliveryCmd = &cobra.Command{
	Use:   "delivery",
	Short: "Delivery settings",
	Long:  "Show and change delivery fee, minimums and whether delivery orders are accepted.",
}

var deliveryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show delivery settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := app.From(cmd).Client.GetDeliverySettings(cmd.Context())
		if err != nil {
			return err
		}
		return format.Print(d)
	},
}

var deliverySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change delivery fee and minimums",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.From(cmd)
		d, err := a.Client.GetDeliverySettings(cmd.Context())
		if err != nil {
			return err
		}
		fs := cmd.Flags()
		app.SetFloat(fs, "fee", &d.DeliveryFee)
		app.SetFloat(fs, "free-minimum", &d.FreeDeliveryMin)
		app.SetFloat(fs, "min-order", &d.MinOrderAmount)
		app.SetString(fs, "disabled-message", &d.DisabledMessage)

		if err := a.Client.UpdateDeliverySettings(cmd.Context(), d); err != nil {
			return fmt.Errorf("failed to update delivery settings: %w", err)
		}
		format.PrintSuccess("✓ Delivery settings updated")
		return nil
	},
}

var deliveryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Accept delivery orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return toggle(cmd, true, "")
	},
}

var deliveryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop accepting delivery orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, _ := cmd.Flags().GetString("message")
		return toggle(cmd, false, msg)
	},
}

func toggle(cmd *cobra.Command, enabled bool, msg string) error {
	a := app.From(cmd)
	if !enabled && !a.Confirmer.Confirm(cmd.Context(), "Disable Delivery", "Customers will not be able to place delivery orders. Continue?") {
		return fmt.Errorf("cancelled")
	}
	if err := a.Client.ToggleDelivery(cmd.Context(), enabled, msg); err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}
	if enabled {
		format.PrintSuccess("✓ Delivery enabled")
	} else {
		format.PrintSuccess("✓ Delivery disabled")
	}
	return nil
}

func init() {
	deliverySetCmd.Flags().Float64("fee", 0, "delivery fee")
	deliverySetCmd.Flags().Float64("free-minimum", 0, "order amount above which delivery is free")
	deliverySetCmd.Flags().Float64("min-order", 0, "minimum order amount for delivery")
	deliverySetCmd.Flags().String("disabled-message", "", "message shown while delivery is off")
	deliveryDisableCmd.Flags().StringP("message", "m", "Delivery is temporarily unavailable", "message shown to customers")

	deliveryCmd.AddCommand(deliveryShowCmd)
	deliveryCmd.AddCommand(deliverySetCmd)
	deliveryCmd.AddCommand(deliveryEnableCmd)
	deliveryCmd.AddCommand(deliveryDisableCmd)
}
