package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the caller's roles, permissions, menus and data scope",
		Args:  cobra.NoArgs,
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, _ []string) (any, error) {
			return s.Me(ctx)
		}),
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <user-id>",
		Short: "Show the effective access of another user",
		Args:  cobra.ExactArgs(1),
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, args []string) (any, error) {
			id, err := parseID(args[0])
			if err != nil {
				return nil, err
			}
			return s.UserAccess(ctx, id)
		}),
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show service readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := LoadConfig(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
			defer cancel()

			resp, err := cfg.Client().GetReadiness(ctx)
			if err != nil {
				return err
			}
			return printJSON(outWriter(cmd), resp)
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
