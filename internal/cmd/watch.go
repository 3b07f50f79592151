package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"clilogin/window"
)

var watchCmd = &cobra.Command{
	Use:   "watch <authUrl> <callbackUrl>",
	Short: "Extract the authorization code from a host window's navigations",
	Long: `watch serves the native-window login path. The host application loads
<authUrl> in its window and writes every navigated-to URL to this process's
standard input, one per line, closing the stream when the window closes.
watch reports the first navigation matching <callbackUrl>: the extracted code
goes to standard output (exit 0), any failure to standard error (exit 1).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		authURL, callbackURL := args[0], args[1]
		log.Debug().Str("auth_url", authURL).Str("callback_url", callbackURL).Msg("watching window navigations")

		res := window.Run(cmd.Context(), window.New(callbackURL), cmd.InOrStdin())
		if res.Err != nil {
			return res.Err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
