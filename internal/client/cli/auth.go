package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/marketsync/internal/client/app"
)

func (c *Cli) readEmail(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return "", fmt.Errorf("failed to read email: %w", err)
	}
	return email, nil
}

func (c *Cli) newSignUpCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.io.Println("=== Sign up ===")

			email, err := c.readEmail(email)
			if err != nil {
				return err
			}
			password, err := c.io.ReadPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			confirm, err := c.io.ReadPassword("Confirm password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			userID, err := c.app.Auth.SignUp(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			c.io.Println("✓ Account created!")
			c.io.Printf("User ID: %s\n", userID)
			c.io.Println("Run 'marketsync login' to start shopping.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	return cmd
}

func (c *Cli) newLoginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			email, err := c.readEmail(email)
			if err != nil {
				return err
			}
			password, err := c.io.ReadPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			session, err := c.app.Auth.Login(ctx, email, password)
			if err != nil {
				return err
			}

			// корзина пользователя живет на сервере
			if err := c.app.Cart.Load(ctx); err != nil {
				c.app.Logger.Warn("Failed to load cart after login", "error", err)
			}

			c.io.Println("✓ Login successful!")
			c.io.Printf("Email: %s\n", session.Email)
			c.io.Printf("Role: %s\n", session.Role)
			if session.ExpiresAt > 0 {
				c.io.Printf("Session expires: %s\n", formatTime(time.Unix(session.ExpiresAt, 0)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	return cmd
}

func (c *Cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			c.app.ClearLocal()
			c.io.Println("✓ Logged out")
			return nil
		},
	}
}

func (c *Cli) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := c.app.Auth.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			c.io.Println("✓ Session refreshed")
			if session.ExpiresAt > 0 {
				c.io.Printf("Session expires: %s\n", formatTime(time.Unix(session.ExpiresAt, 0)))
			}
			return nil
		},
	}
}

func (c *Cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session, connectivity and synchronization status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c.io.Println("=== Status ===")
			session, err := c.app.Auth.Current(ctx)
			if err != nil {
				c.io.Println("Session: not logged in")
			} else {
				c.io.Printf("Session: %s (%s)\n", session.Email, session.Role)
				if session.ExpiresAt > 0 {
					expiresAt := time.Unix(session.ExpiresAt, 0)
					if remaining := expiresAt.Sub(c.app.Clock.Now()); remaining > 0 {
						c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
					} else {
						c.io.Println("⚠️  Session has expired. Please login again.")
					}
				}
			}

			if err := c.app.Pinger.Pass(ctx); err != nil {
				c.io.Println("Server: unreachable")
			} else {
				c.io.Println("Server: online")
			}
			if err := c.app.Gate.Refresh(ctx); err == nil {
				c.io.Printf("Maintenance: %s\n", c.app.Gate.State())
			}

			c.io.Printf("Cart: %d item(s), %s\n", c.app.Cart.TotalCount(), money(c.app.Cart.TotalValue()))

			c.io.Println("Last synchronization:")
			for _, domain := range []string{app.DomainProducts, app.DomainCart, app.DomainOrders, app.DomainNotifications} {
				at, err := c.app.LastSync(ctx, domain)
				if err != nil {
					return err
				}
				c.io.Printf("  %-14s %s\n", domain, formatTime(at))
			}
			return nil
		},
	}
}
