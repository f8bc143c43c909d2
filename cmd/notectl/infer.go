package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ai-notes/pkg/datemath"
)

type inferOptions struct {
	*rootOptions
	timezone  string
	reference string
}

func newInferCmd(root *rootOptions) *cobra.Command {
	opts := &inferOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "infer <text>...",
		Short: "Infer an event date and time from free text",
		Example: `  notectl infer "Badminton tmr 5pm @polyu"
  notectl infer --tz Asia/Hong_Kong --ref 2025-10-17T10:00:00+08:00 "call mom next Monday evening"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfer(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.timezone, "tz", "UTC", "IANA timezone that relative cues resolve in")
	cmd.Flags().StringVar(&opts.reference, "ref", "", "reference instant in RFC3339 (default now)")
	return cmd
}

func runInfer(cmd *cobra.Command, opts *inferOptions, args []string) error {
	parser, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return err
	}

	ref := parser.Now()
	if opts.reference != "" {
		ref, err = time.Parse(time.RFC3339, opts.reference)
		if err != nil {
			return fmt.Errorf("invalid --ref %q: want RFC3339", opts.reference)
		}
		ref = ref.In(parser.Location())
	}

	r := parser.InferAt(ref, strings.Join(args, " "))
	eventTime, _ := datemath.NormalizeTime(datemath.RawValue(r.Time))

	return printResult(cmd.OutOrStdout(), opts.asJSON,
		[]string{"event_date", "event_time", "reference"},
		map[string]string{
			"event_date": r.Date,
			"event_time": eventTime,
			"reference":  ref.Format(time.RFC3339),
		})
}
