package dashboard

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/dashboard"
	"github.com/soley/admin-cli/internal/format"
)

// DashboardCmd represents the dashboard command
var DashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the restaurant overview",
	Long: `Show revenue, order and catalog highlights plus the most recent orders.

Every figure is fetched concurrently; a figure that cannot be loaded is
shown as zero and listed as unavailable.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a := app.From(cmd)
	summary := dashboard.Load(cmd.Context(), a.Client, a.Logger)

	if format.IsStructured() {
		return format.Print(summary)
	}

	if err := format.Print(summary.Table()); err != nil {
		return err
	}

	recent := format.Table{
		Headers: []string{"Order", "Customer", "Items", "Total", "Status", "Placed"},
		Empty:   "No recent orders",
	}
	for _, o := range summary.RecentOrders {
		recent.Rows = append(recent.Rows, []string{
			o.OrderNumber,
			o.CustomerName,
			strconv.Itoa(len(o.Items)),
			format.Currency(o.Total),
			format.Badge(o.Status, a.Colors),
			format.Date(o.CreatedAt),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return format.Print(recent)
}
