package main

import (
	"appraiser/internal/render"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// commandContext returns a context cancelled on SIGINT/SIGTERM and, when
// timeout is positive, after timeout.
func commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if timeout <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)

	return ctx, func() {
		cancel()
		stop()
	}
}

func appraiseCommand(a *app) *cobra.Command {
	var (
		output    string
		withTrend bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:     "appraise <domain>",
		Short:   "Appraises a domain and prints its scores and estimated value",
		Example: "  appraiser appraise example.com --output json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err //nolint: wrapcheck
			}

			ctx, cancel := commandContext(timeout)
			defer cancel()

			appr, err := newAppraiser(ctx, a.cfg)
			if err != nil {
				return err
			}

			res, err := appr.Appraise(ctx, args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			if err := render.Appraisal(os.Stdout, format, res); err != nil {
				return err //nolint: wrapcheck
			}
			if series, ok := res.Metrics.Trend.Get(); ok && withTrend {
				return render.Trend(os.Stdout, format, series) //nolint: wrapcheck
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&withTrend, "trend", false, "Also print the interest-over-time series")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the appraisal after this duration (0 means no limit)")

	return cmd
}
