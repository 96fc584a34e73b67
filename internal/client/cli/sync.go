package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *Cli) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one synchronization pass for every domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.app.SyncOnce(ctx); err != nil {
				return err
			}
			c.io.Println("✓ Synchronized")
			return nil
		},
	}
}

func (c *Cli) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep synchronizing in the background and print notices until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if c.app.LoggedIn(ctx) {
				if err := c.app.Cart.Load(ctx); err != nil {
					c.app.Logger.Warn("Failed to load cart", "error", err)
				}
			}

			group := c.app.Group(ctx)
			c.io.Printf("Watching %v, press Ctrl+C to stop\n", group.Names())

			done := make(chan error, 1)
			go func() { done <- group.Run(ctx) }()

			for {
				select {
				case n, ok := <-c.notices:
					if !ok {
						cancel()
						return <-done
					}
					c.printNotice(n)
				case err := <-done:
					return err
				}
			}
		},
	}
}
