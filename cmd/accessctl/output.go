package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runSession wires config, timeout and output for commands that need a token.
func runSession(fn func(ctx context.Context, s *accesssdk.Session, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := LoadConfig(cmd)
		s, err := cfg.Session()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		out, err := fn(ctx, s, args)
		if err != nil {
			return err
		}
		return printJSON(outWriter(cmd), out)
	}
}

func outWriter(cmd *cobra.Command) io.Writer {
	if w := cmd.OutOrStdout(); w != nil {
		return w
	}
	return os.Stdout
}
