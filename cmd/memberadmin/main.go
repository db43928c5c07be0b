package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/memberadmin/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "memberadmin: %v\n", err)
		return 1
	}
	return 0
}

type rootFlags struct {
	configPath string
	prefsPath  string
	sourceURL  string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "memberadmin",
		Short:         "Terminal admin table for a remote member list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			// A missing .env is normal.
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: flags.configPath,
				PrefsPath:  flags.prefsPath,
				SourceURL:  flags.sourceURL,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file path (default ~/.config/memberadmin/config.toml)")
	pf.StringVar(&flags.sourceURL, "url", "", "member list URL (overrides config and environment)")
	cmd.Flags().StringVar(&flags.prefsPath, "prefs", "", "preferences file path (default ~/.config/memberadmin/prefs.toml)")

	cmd.AddCommand(newExportCmd(&flags))
	return cmd
}
