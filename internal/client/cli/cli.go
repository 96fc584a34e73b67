// Package cli implements the marketsync client commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/marketsync/internal/client/app"
	"github.com/iudanet/marketsync/internal/client/auth"
	"github.com/iudanet/marketsync/internal/client/iocli"
	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/client/voucher"
)

// errAdminOnly is returned by admin commands run without the admin role
var errAdminOnly = errors.New("this command requires an administrator session")

// Cli represents the command line interface of the client.
type Cli struct {
	app     *app.App
	io      iocli.IO
	rootCmd *cobra.Command
	notices <-chan notify.Notice
	stop    func()
}

// New creates the command tree.
func New(a *app.App, io iocli.IO, version string) *Cli {
	c := &Cli{app: a, io: io}

	rootCmd := &cobra.Command{
		Use:           "marketsync",
		Short:         "Marketplace client with background synchronization",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.notices, c.stop = c.app.Notice.Subscribe(64)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.flushNotices()
		},
	}
	rootCmd.SetOut(io)
	rootCmd.SetErr(io)

	rootCmd.AddCommand(
		c.newSignUpCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newRefreshCmd(),
		c.newStatusCmd(),
		c.newProductsCmd(),
		c.newCartCmd(),
		c.newVoucherCmd(),
		c.newCheckoutCmd(),
		c.newOrdersCmd(),
		c.newRefundCmd(),
		c.newChatCmd(),
		c.newNotificationsCmd(),
		c.newMaintenanceCmd(),
		c.newSyncCmd(),
		c.newWatchCmd(),
	)

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *Cli) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if err != nil {
		// PostRun не вызывается при ошибке
		c.flushNotices()
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *Cli) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// flushNotices печатает накопленные уведомления и отписывается
func (c *Cli) flushNotices() {
	if c.notices == nil {
		return
	}
	for {
		select {
		case n, ok := <-c.notices:
			if !ok {
				c.notices = nil
				return
			}
			c.printNotice(n)
		default:
			c.stop()
			c.notices = nil
			return
		}
	}
}

func (c *Cli) printNotice(n notify.Notice) {
	prefix := "•"
	switch n.Level {
	case notify.LevelSuccess:
		prefix = "✓"
	case notify.LevelWarning:
		prefix = "⚠️ "
	case notify.LevelError:
		prefix = "✗"
	}
	c.io.Printf("%s [%s] %s\n", prefix, n.Domain, n.Message)
}

func (c *Cli) requireLogin(ctx context.Context) error {
	if !c.app.LoggedIn(ctx) {
		return fmt.Errorf("%w. Please run 'marketsync login' first", auth.ErrNotLoggedIn)
	}
	return nil
}

func (c *Cli) requireAdmin(ctx context.Context) error {
	if err := c.requireLogin(ctx); err != nil {
		return err
	}
	if !c.app.Auth.IsAdmin(ctx) {
		return errAdminOnly
	}
	return nil
}

func money(v int64) string {
	return voucher.FormatAmount(v)
}

// parseMoney разбирает сумму вида 12.50 в минимальные единицы
func parseMoney(s string) (int64, error) {
	whole, frac, found := strings.Cut(strings.TrimSpace(s), ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	cents := int64(0)
	if found {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
	}
	return units*100 + cents, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.RFC3339)
}
