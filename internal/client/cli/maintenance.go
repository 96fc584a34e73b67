package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/marketsync/internal/models"
)

func (c *Cli) newMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Show or change the store maintenance mode",
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the maintenance state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Gate.Refresh(cmd.Context()); err != nil {
				c.io.Printf("⚠️  Using last known settings: %v\n", err)
			}
			c.printMaintenance()
			return nil
		},
	}

	var message string
	on := &cobra.Command{
		Use:   "on",
		Short: "Enable maintenance immediately (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireAdmin(ctx); err != nil {
				return err
			}
			if err := c.app.Gate.EnableImmediate(ctx, message); err != nil {
				return err
			}
			c.printMaintenance()
			return nil
		},
	}
	on.Flags().StringVarP(&message, "message", "m", "", "Message shown to customers")

	var start, end, schedMessage string
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a maintenance window (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireAdmin(ctx); err != nil {
				return err
			}
			from, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			to, err := time.Parse(time.RFC3339, end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			if err := c.app.Gate.Schedule(ctx, from, to, schedMessage); err != nil {
				return err
			}
			c.printMaintenance()
			return nil
		},
	}
	schedule.Flags().StringVar(&start, "start", "", "Window start, RFC3339")
	schedule.Flags().StringVar(&end, "end", "", "Window end, RFC3339")
	schedule.Flags().StringVarP(&schedMessage, "message", "m", "", "Message shown to customers")
	_ = schedule.MarkFlagRequired("start")
	_ = schedule.MarkFlagRequired("end")

	off := &cobra.Command{
		Use:   "off",
		Short: "Disable maintenance (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireAdmin(ctx); err != nil {
				return err
			}
			if err := c.app.Gate.Disable(ctx); err != nil {
				return err
			}
			c.printMaintenance()
			return nil
		},
	}

	cmd.AddCommand(status, on, schedule, off)
	return cmd
}

func (c *Cli) printMaintenance() {
	m := c.app.Gate.Settings()
	state := c.app.Gate.State()

	c.io.Printf("Mode:  %s\n", m.Mode)
	c.io.Printf("State: %s\n", state)
	if m.Mode == models.MaintenanceScheduled && m.Start != nil && m.End != nil {
		c.io.Printf("Window: %s - %s\n", formatTime(*m.Start), formatTime(*m.End))
	}
	if state != models.StateNormal {
		c.io.Printf("Message: %s\n", m.DisplayMessage())
	}
}
