package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *Cli) newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(
		c.newCartListCmd(),
		c.newCartAddCmd(),
		c.newCartSetCmd(),
		c.newCartRemoveCmd(),
		c.newCartClearCmd(),
	)
	return cmd
}

// refreshCart загружает корзину с сервера и сверяет ее с каталогом
func (c *Cli) refreshCart(ctx context.Context) error {
	if err := c.app.Cart.Load(ctx); err != nil {
		return err
	}
	return c.app.CartSync.Pass(ctx)
}

func (c *Cli) printCart() {
	items := c.app.Cart.Items()
	if len(items) == 0 {
		c.io.Println("Your cart is empty")
		return
	}
	for _, it := range items {
		c.io.Printf("%-36s  %-30s  %3d x %10s = %10s\n",
			it.ProductID, it.Product.Name, it.Quantity, money(it.EffectivePrice()), money(it.LineTotal()))
	}
	c.io.Printf("Total: %d item(s), %s\n", c.app.Cart.TotalCount(), money(c.app.Cart.TotalValue()))
}

func (c *Cli) newCartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.refreshCart(ctx); err != nil {
				return err
			}
			c.printCart()
			return nil
		},
	}
}

func parseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	return n, nil
}

func (c *Cli) newCartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id> [quantity]",
		Short: "Add a product to the cart",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			qty := 1
			if len(args) == 2 {
				var err error
				if qty, err = parseQuantity(args[1]); err != nil {
					return err
				}
			}
			if err := c.app.Cart.Load(ctx); err != nil {
				return err
			}
			if err := c.app.Cart.Add(ctx, args[0], qty); err != nil {
				return err
			}
			c.io.Printf("✓ Added %d x %s\n", qty, args[0])
			c.printCart()
			return nil
		},
	}
}

func (c *Cli) newCartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			qty, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			if err := c.app.Cart.Load(ctx); err != nil {
				return err
			}
			if err := c.app.Cart.SetQuantity(ctx, args[0], qty); err != nil {
				return err
			}
			c.printCart()
			return nil
		},
	}
}

func (c *Cli) newCartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.app.Cart.Load(ctx); err != nil {
				return err
			}
			if err := c.app.Cart.Remove(ctx, args[0]); err != nil {
				return err
			}
			c.printCart()
			return nil
		},
	}
}

func (c *Cli) newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.app.Cart.Clear(ctx); err != nil {
				return err
			}
			c.io.Println("✓ Cart cleared")
			return nil
		},
	}
}
