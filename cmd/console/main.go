package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"dispatch-console/internal/app"
	"dispatch-console/internal/core/config"
	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/features/shipments/domain"

	"github.com/spf13/cobra"
)

// errViewFailed is returned when a view ends in the Failed phase, so the exit code is non-zero.
var errViewFailed = errors.New("view failed to load")

var exampleUsage = strings.TrimSpace(`
  console shipments --view orders
  console summary
  console steps IN_TRANSIT
  console --env-path /etc/dispatch shipments
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type options struct {
	envPath string
	verbose bool
	view    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	var wired *app.App

	root := &cobra.Command{
		Use:          "console",
		Short:        "Inspect shipments through the order service from a terminal",
		Example:      exampleUsage,
		Version:      getVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "steps" {
				return nil
			}
			cfg, err := config.Load(opts.envPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			level := "error"
			if opts.verbose {
				level = cfg.LogLevel
			}
			if err := logger.Init(cfg.Environment, level); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			wired, err = app.New(cmd.Context(), cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			logger.Sync()
			if wired != nil {
				return wired.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.envPath, "env-path", ".", "directory holding the .env file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at the configured LOG_LEVEL instead of errors only")

	shipments := &cobra.Command{
		Use:   "shipments",
		Short: "List the shipments of a view",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wired.Console.View(cmd.Context(), domain.View(opts.view))
			if err != nil {
				return err
			}
			renderShipments(cmd.OutOrStdout(), state)
			if state.Phase == domain.PhaseFailed {
				return errViewFailed
			}
			return nil
		},
	}
	shipments.Flags().StringVar(&opts.view, "view", string(domain.ViewOrders), "view to load (dashboard or orders)")

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := wired.Console.View(cmd.Context(), domain.ViewDashboard)
			if err != nil {
				return err
			}
			s, err := wired.Console.Summary(domain.ViewDashboard)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), s, domain.NewProjector())
			if state.Phase == domain.PhaseFailed {
				fmt.Fprintln(cmd.ErrOrStderr(), state.Message)
				return errViewFailed
			}
			return nil
		},
	}

	steps := &cobra.Command{
		Use:   "steps STATUS",
		Short: "Render the progress stepper for a backend status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := domain.StepsFor(domain.BackendStatus(strings.ToUpper(args[0])))
			if err != nil {
				return err
			}
			renderSteps(cmd.OutOrStdout(), steps)
			return nil
		},
	}

	root.AddCommand(shipments, summary, steps)
	return root
}
