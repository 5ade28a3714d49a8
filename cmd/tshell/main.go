package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zoro11031/turtleshell/internal/cli"
	"github.com/zoro11031/turtleshell/pkg/version"
)

var globalOpts cli.Options

var rootCmd = &cobra.Command{
	Use:   "tshell",
	Short: "Shell-like filesystem commands",
	Long: `tshell runs common filesystem commands through the turtleshell library:

- ls      list a directory
- cat     print files
- cp      copy files
- mv      move or rename files
- touch   create files or update their timestamps
- mkdir   create directories

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface.`,
	RunE:  runInteractiveMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalOpts.ConfigPath, "config", "", "config file (default ~/.tshell.conf)")
	flags.StringVar(&globalOpts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&globalOpts.NoColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&globalOpts.NonInteractive, "yes", "y", false, "never prompt; answer prompts with their default")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

// withContext builds the command context and runs fn with it.
func withContext(cmd *cobra.Command, fn func(ctx context.Context, c *cli.Context) error) error {
	c, err := cli.NewContext(globalOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize context: %w", err)
	}
	defer c.Close()

	return fn(cmd.Context(), c)
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	return withContext(cmd, func(ctx context.Context, c *cli.Context) error {
		return cli.NewMenu(c).Show(ctx)
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
