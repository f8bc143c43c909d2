package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ai-notes/pkg/datemath"
)

type normalizeOptions struct {
	*rootOptions
	date  string
	clock string
}

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	opts := &normalizeOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   "Normalize loose date and time values to YYYY-MM-DD and HH:MM:SS",
		Example: `  notectl normalize --date 20/10/2025 --time "3:05 pm"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNormalize(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.date, "date", "", "date value to normalize")
	cmd.Flags().StringVar(&opts.clock, "time", "", "time value to normalize")
	return cmd
}

func runNormalize(cmd *cobra.Command, opts *normalizeOptions) error {
	if opts.date == "" && opts.clock == "" {
		return errors.New("at least one of --date or --time is required")
	}

	values := map[string]string{}
	if opts.date != "" {
		d, ok := datemath.NormalizeDate(datemath.RawValue(opts.date))
		if !ok {
			return fmt.Errorf("cannot normalize date %q", opts.date)
		}
		values["event_date"] = d
	}
	if opts.clock != "" {
		t, ok := datemath.NormalizeTime(datemath.RawValue(opts.clock))
		if !ok {
			return fmt.Errorf("cannot normalize time %q", opts.clock)
		}
		values["event_time"] = t
	}

	return printResult(cmd.OutOrStdout(), opts.asJSON, []string{"event_date", "event_time"}, values)
}
