package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	asJSON bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "notectl",
		Short:         "Infer and normalize note event dates and times",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	cmd.AddCommand(
		newInferCmd(opts),
		newNormalizeCmd(opts),
	)
	return cmd
}

// printResult writes fields as "key: value" lines, or as one JSON object.
// Empty values print as "-" in text mode and null in JSON.
func printResult(w io.Writer, asJSON bool, keys []string, values map[string]string) error {
	if asJSON {
		out := make(map[string]*string, len(values))
		for _, k := range keys {
			if v := values[k]; v != "" {
				out[k] = &v
			} else {
				out[k] = nil
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, k := range keys {
		v := values[k]
		if v == "" {
			v = "-"
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", k, v); err != nil {
			return err
		}
	}
	return nil
}
