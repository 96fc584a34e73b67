package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/marketsync/internal/models"
)

func (c *Cli) newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.app.OrderSync.Pass(ctx); err != nil {
				return err
			}

			orders := c.app.Orders.Read()
			if len(orders) == 0 {
				c.io.Println("No orders yet")
				return nil
			}
			for _, it := range orders {
				o := it.Payload
				c.io.Printf("%-36s  %-10s  %10s  %s\n", o.ID, o.Status, money(o.Total), formatTime(o.CreatedAt))
			}
			return nil
		},
	}
	cmd.AddCommand(c.newOrderStatusCmd())
	return cmd
}

func (c *Cli) newOrderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Change the status of an order (admin)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireAdmin(ctx); err != nil {
				return err
			}
			status := models.OrderStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown order status %q", args[1])
			}

			o, err := c.app.API.UpdateOrderStatus(ctx, args[0], status)
			if err != nil {
				return err
			}
			c.io.Printf("✓ Order %s is now %s\n", o.ID, o.Status)
			return nil
		},
	}
}
