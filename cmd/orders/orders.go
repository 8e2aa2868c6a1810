package orders

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// OrdersCmd represents the orders command
var OrdersCmd = &cobra.Command{
	Use:     "orders",
	Aliases: []string{"order"},
	Short:   "Order commands",
	Long:    "List customer orders, move them through their lifecycle and show revenue stats.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd, sectionFor(app.From(cmd)).Section)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change the status of an order",
	Long: fmt.Sprintf(`Change the status of an order. Valid statuses: %s.

Without --message the customer sees "Status updated to <status>".`, strings.Join(models.OrderStatuses, ", ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, _ := cmd.Flags().GetString("message")
		s := sectionFor(app.From(cmd))
		defer s.Close()
		return s.UpdateStatus(cmd.Context(), args[0], forms.OrderStatusForm{Status: args[1], Message: msg})
	},
}

type stats struct {
	TotalRevenue    string `json:"totalRevenue" yaml:"total_revenue"`
	TotalOrders     int    `json:"totalOrders" yaml:"total_orders"`
	UniqueCustomers int    `json:"uniqueCustomers" yaml:"unique_customers"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show order statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := app.From(cmd).Client.OrderStats(cmd.Context())
		if err != nil {
			return err
		}
		if format.IsStructured() {
			return format.Print(st)
		}
		return format.Print(stats{
			TotalRevenue:    format.Currency(st.TotalRevenue),
			TotalOrders:     st.TotalOrders,
			UniqueCustomers: st.UniqueCustomers,
		})
	},
}

func sectionFor(a *app.App) *section.OrderSection {
	return section.Orders(a.Deps())
}

func init() {
	app.AddListFlags(listCmd)
	statusCmd.Flags().StringP("message", "m", "", "note shown to the customer")

	OrdersCmd.AddCommand(listCmd)
	OrdersCmd.AddCommand(statusCmd)
	OrdersCmd.AddCommand(statsCmd)
	OrdersCmd.AddCommand(app.BrowseCommand("orders", func(a *app.App) *section.Section[models.Order, forms.OrderStatusForm] {
		return sectionFor(a).Section
	}))
}
