package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/logcheck/internal/app"
	"github.com/five82/logcheck/internal/ui"
)

var version = "dev"

var (
	configPath string
	projectDir string
	themeName  string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "logcheck: %v\n", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "logcheck",
	Short: "Stop hook that blocks on new errors in the dev server log",
	Long: "logcheck reads a stop hook request on stdin, scans the log for lines written since the\n" +
		"previous run and prints a block decision when they contain application errors.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), options())
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Show what the next run would report, without saving the cursor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := app.Scan(cmd.Context(), options())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderScan(res, styles()))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the resolved paths and the stored cursor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rep, err := app.Status(options())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderStatus(rep, styles()))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the cursor so the next run starts from the log tail",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := app.Reset(options())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", cfg.StatePath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "logcheck %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <project>/.claude/hooks/logcheck.toml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", "", "project root (default $CLAUDE_PROJECT_DIR or the working directory)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "Nightfox", "color theme for scan and status output")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func options() app.Options {
	return app.Options{ConfigPath: configPath, ProjectDir: projectDir}
}

func styles() ui.Styles {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ui.PlainStyles()
	}
	return ui.GetTheme(themeName).Styles()
}
