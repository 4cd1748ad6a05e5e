package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/access/pkg/accesssdk"
)

func newDeptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depts",
		Short: "Department commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "tree",
		Short: "Print the department tree",
		Args:  cobra.NoArgs,
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, _ []string) (any, error) {
			return s.DepartmentTree(ctx)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List departments",
		Args:  cobra.NoArgs,
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, _ []string) (any, error) {
			return s.ListDepartments(ctx)
		}),
	})
	return cmd
}

func newMenusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menus",
		Short: "Menu commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "tree",
		Short: "Print the full menu tree",
		Args:  cobra.NoArgs,
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, _ []string) (any, error) {
			return s.MenuTree(ctx)
		}),
	})
	return cmd
}

func newRolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Role commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List roles",
		Args:  cobra.NoArgs,
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, _ []string) (any, error) {
			return s.ListRoles(ctx)
		}),
	})
	return cmd
}

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User commands",
	}

	var (
		q      accesssdk.UserQuery
		status int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List users visible to the caller",
		Args:  cobra.NoArgs,
		RunE: runSession(func(ctx context.Context, s *accesssdk.Session, _ []string) (any, error) {
			if status >= 0 {
				q.Status = &status
			}
			return s.ListUsers(ctx, q)
		}),
	}
	list.Flags().StringVar(&q.Username, "username", "", "filter by username")
	list.Flags().Int64Var(&q.DeptID, "dept", 0, "filter by department id")
	list.Flags().IntVar(&status, "status", -1, "filter by status (1 enabled, 0 disabled)")
	list.Flags().IntVar(&q.Page, "page", 1, "page number")
	list.Flags().IntVar(&q.Size, "size", 20, "page size")
	cmd.AddCommand(list)
	return cmd
}
