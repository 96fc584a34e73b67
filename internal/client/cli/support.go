package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *Cli) newRefundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Request and review refunds",
	}

	var reason string
	request := &cobra.Command{
		Use:   "request <order-id> <amount>",
		Short: "Request a refund for an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			amount, err := parseMoney(args[1])
			if err != nil {
				return err
			}
			refund, err := c.app.Support.RequestRefund(ctx, args[0], reason, amount)
			if err != nil {
				return err
			}
			c.io.Printf("Refund %s: %s\n", refund.ID, refund.Status)
			return nil
		},
	}
	request.Flags().StringVarP(&reason, "reason", "r", "", "Why the order should be refunded")
	_ = request.MarkFlagRequired("reason")

	list := &cobra.Command{
		Use:   "list",
		Short: "List refund requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			refunds, err := c.app.Support.Refunds(ctx)
			if err != nil {
				return err
			}
			if len(refunds) == 0 {
				c.io.Println("No refund requests")
				return nil
			}
			for _, r := range refunds {
				c.io.Printf("%-36s  order %-36s  %10s  %-9s  %s\n", r.ID, r.OrderID, money(r.Amount), r.Status, r.Reason)
			}
			return nil
		},
	}

	cmd.AddCommand(request, list, c.newRefundDecisionCmd("approve"), c.newRefundDecisionCmd("reject"))
	return cmd
}

func (c *Cli) newRefundDecisionCmd(action string) *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   action + " <refund-id>",
		Short: strings.ToUpper(action[:1]) + action[1:] + " a refund request (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireAdmin(ctx); err != nil {
				return err
			}
			decide := c.app.Support.Approve
			if action == "reject" {
				decide = c.app.Support.Reject
			}
			refund, err := decide(ctx, args[0], note)
			if err != nil {
				return err
			}
			c.io.Printf("✓ Refund %s %s\n", refund.ID, refund.Status)
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "Comment for the customer")
	return cmd
}

func (c *Cli) newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to customer support",
	}

	var subject, message string
	open := &cobra.Command{
		Use:   "open",
		Short: "Start a conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			conv, err := c.app.Support.OpenConversation(ctx, subject, message)
			if err != nil {
				return err
			}
			c.io.Printf("✓ Conversation %s opened\n", conv.ID)
			return nil
		},
	}
	open.Flags().StringVarP(&subject, "subject", "s", "", "Conversation subject")
	open.Flags().StringVarP(&message, "message", "m", "", "First message")
	_ = open.MarkFlagRequired("subject")
	_ = open.MarkFlagRequired("message")

	send := &cobra.Command{
		Use:   "send <conversation-id> <message...>",
		Short: "Send a message",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if _, err := c.app.Support.Send(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			c.io.Println("✓ Sent")
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list [conversation-id]",
		Short: "List conversations, or the messages of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if len(args) == 1 {
				msgs, err := c.app.Support.Messages(ctx, args[0])
				if err != nil {
					return err
				}
				for _, m := range msgs {
					c.io.Printf("[%s] %s: %s\n", formatTime(m.CreatedAt), m.SenderID, m.Body)
				}
				return nil
			}

			convs, err := c.app.Support.Conversations(ctx)
			if err != nil {
				return err
			}
			if len(convs) == 0 {
				c.io.Println("No conversations")
				return nil
			}
			for _, conv := range convs {
				c.io.Printf("%-36s  %-6s  %s\n", conv.ID, conv.Status, conv.Subject)
			}
			return nil
		},
	}

	cmd.AddCommand(open, send, list)
	return cmd
}

func (c *Cli) newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show your notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.app.NotificationSync.Pass(ctx); err != nil {
				return err
			}
			items := c.app.Notifications.Read()
			if len(items) == 0 {
				c.io.Println("No notifications")
				return nil
			}
			for _, it := range items {
				n := it.Payload
				mark := "*"
				if n.Read {
					mark = " "
				}
				c.io.Printf("%s %-36s  %s: %s\n", mark, n.ID, n.Title, n.Body)
			}
			return nil
		},
	}

	read := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireLogin(ctx); err != nil {
				return err
			}
			if err := c.app.Support.MarkRead(ctx, args[0]); err != nil {
				return err
			}
			return c.app.NotificationSync.Pass(ctx)
		},
	}
	cmd.AddCommand(read)
	return cmd
}
