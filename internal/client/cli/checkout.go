package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/iudanet/marketsync/internal/client/cart"
	"github.com/iudanet/marketsync/internal/client/checkout"
)

func (c *Cli) newVoucherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "voucher <code>",
		Short: "Check a voucher against the current cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.refreshCart(ctx); err != nil {
				return err
			}
			if c.app.Cart.TotalCount() == 0 {
				return cart.ErrEmpty
			}

			applied, err := c.app.Vouchers.Validate(ctx, args[0], c.app.Cart.TotalValue())
			if err != nil {
				return err
			}
			c.io.Printf("Subtotal: %10s\n", money(applied.Subtotal))
			c.io.Printf("Discount: %10s\n", money(-applied.Discount))
			c.io.Printf("Total:    %10s\n", money(applied.Total()))
			return nil
		},
	}
}

func (c *Cli) newCheckoutCmd() *cobra.Command {
	var req checkout.Request
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.app.Gate.Refresh(ctx); err != nil {
				// остаемся на последних известных настройках
				c.app.Logger.Warn("Failed to refresh maintenance state", "error", err)
			}
			if err := c.app.Cart.Load(ctx); err != nil {
				return err
			}

			receipt, err := c.app.Checkout.PlaceOrder(ctx, req)
			if err != nil {
				if errors.Is(err, checkout.ErrCartChanged) {
					c.printCart()
				}
				return err
			}

			o := receipt.Order
			c.io.Printf("✓ Order %s placed (%s)\n", o.ID, o.Status)
			for _, it := range o.Items {
				c.io.Printf("  %3d x %-30s %10s\n", it.Quantity, it.Name, money(it.UnitPrice))
			}
			if o.Discount > 0 {
				c.io.Printf("Discount: %10s\n", money(-o.Discount))
			}
			c.io.Printf("Total:    %10s\n", money(o.Total))
			return nil
		},
	}
	cmd.Flags().StringVar(&req.ShippingAddress, "address", "", "Shipping address")
	cmd.Flags().StringVar(&req.PaymentMethod, "payment", "card", "Payment method")
	cmd.Flags().StringVar(&req.Voucher, "voucher", "", "Voucher code")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}
