package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/marketsync/pkg/api"
)

func (c *Cli) newProductsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.ProductSync.Pass(cmd.Context()); err != nil {
				return err
			}

			products := c.app.Catalog.Products(category)
			if len(products) == 0 {
				c.io.Println("No products found")
				return nil
			}
			for _, p := range products {
				stock := fmt.Sprintf("%d in stock", p.Stock)
				if p.Stock <= 0 {
					stock = "out of stock"
				}
				c.io.Printf("%-36s  %-30s  %10s  %s\n", p.ID, p.Name, money(p.Price), stock)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only show this category")
	cmd.AddCommand(c.newProductUpsertCmd())
	return cmd
}

func (c *Cli) newProductUpsertCmd() *cobra.Command {
	var (
		id, price string
		req       api.UpsertProductRequest
	)
	cmd := &cobra.Command{
		Use:   "upsert",
		Short: "Create or change a product (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireAdmin(ctx); err != nil {
				return err
			}
			amount, err := parseMoney(price)
			if err != nil {
				return err
			}
			req.Price = amount

			p, err := c.app.API.UpsertProduct(ctx, id, req)
			if err != nil {
				return err
			}
			c.io.Printf("✓ Product %s saved: %s, %s, stock %d\n", p.ID, p.Name, money(p.Price), p.Stock)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Product ID (empty creates a new product)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Product name")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category")
	cmd.Flags().StringVar(&req.ImageURL, "image", "", "Image URL")
	cmd.Flags().StringVar(&price, "price", "0", "Price, e.g. 12.50")
	cmd.Flags().IntVar(&req.Stock, "stock", 0, "Units in stock")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
