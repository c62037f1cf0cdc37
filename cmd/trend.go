package main

import (
	"appraiser/internal/render"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func trendCommand(a *app) *cobra.Command {
	var (
		output  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "trend <domain>",
		Short: "Prints the search interest over time of a domain's keywords",
		Args:  cobra.ExactArgs(1),
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

			series, err := appr.Trend(ctx, args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			return render.Trend(os.Stdout, format, series) //nolint: wrapcheck
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatTable), "Output format: table, json or yaml")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort after this duration (0 means no limit)")

	return cmd
}
