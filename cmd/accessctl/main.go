// Command accessctl is a thin client for the access service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "accessctl",
		Short: "Inspect roles, menus and data scopes of the access service",
		Long: `accessctl talks to a running access service with a bearer token.

Configuration is read from flags, then ACCESS_URL / ACCESS_TOKEN,
then ~/.access/config.yaml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(newMeCmd())
	rootCmd.AddCommand(newDeptsCmd())
	rootCmd.AddCommand(newMenusCmd())
	rootCmd.AddCommand(newRolesCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newHealthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("url", "", "access service base URL (env ACCESS_URL)")
	cmd.PersistentFlags().String("token", "", "bearer token (env ACCESS_TOKEN)")
	cmd.PersistentFlags().Duration("timeout", defaultTimeout, "request timeout")
}
