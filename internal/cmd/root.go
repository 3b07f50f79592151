package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"clilogin/internal/config"
)

var (
	cfg         config.Config
	envFlag     string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "cli-login",
	Short: "Browser-based login helper for the aio CLI",
	Long: `cli-login completes a browser-based login: it serves a short-lived
loopback callback endpoint (login) or watches a host window's navigations
(watch), and hands the resulting authorization code back to the calling
process.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("env") {
			cfg.Env = config.Environment(envFlag)
			if !cfg.Env.Valid() {
				return fmt.Errorf("unknown environment %q", envFlag)
			}
		}
		if verboseFlag {
			cfg.Verbose = true
		}
		setupLogging()
		return nil
	},
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func displayAppname() {
	myFigure := figure.NewFigure("cli-login", "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", string(config.DefaultEnvironment), "login environment (prod or stage)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}
