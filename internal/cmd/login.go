package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"clilogin/auth"
	"clilogin/server"
)

var (
	clientID string
	scope    string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in through the system browser",
	Long: `login starts a loopback callback server, prints the provider's login
URL for the browser, and waits for the redirect carrying the authorization
code. The code (or access token JSON) is written to standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		displayAppname()

		sess := auth.NewSession(cfg.Env)
		handler, err := server.NewHandler(sess.ID, sess.Env)
		if err != nil {
			return err
		}

		srv, err := server.Start(handler.Router())
		if err != nil {
			return err
		}
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				log.Err(err).Msg("Failed to shut down callback server")
			}
		}()

		authURL, err := auth.BuildAuthURL(cfg.Env, map[string]*string{
			"state":        opt(auth.EncodeState(sess.ID)),
			"redirect_uri": opt(srv.URL()),
			"client_id":    opt(clientID),
			"scope":        opt(scope),
		})
		if err != nil {
			return err
		}

		log.Info().Str("env", string(cfg.Env)).Msg("Visit this URL in your browser to sign in:")
		fmt.Fprintln(cmd.ErrOrStderr(), authURL)

		// The handler never times out on its own; the deadline lives here.
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		code, err := handler.Wait(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("timed out after %s waiting for the login callback", cfg.Timeout)
			}
			return err
		}

		return printCode(cmd, code)
	},
}

// printCode writes the resolved code to stdout: plain for an authorization
// code, JSON for a parsed access token.
func printCode(cmd *cobra.Command, code any) error {
	if s, ok := code.(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(code); err != nil {
		return fmt.Errorf("encode access token: %w", err)
	}
	return nil
}

// opt maps an empty flag value to an omitted query parameter.
func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func init() {
	loginCmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client id to send to the login service")
	loginCmd.Flags().StringVar(&scope, "scope", "", "scopes to request")
	rootCmd.AddCommand(loginCmd)
}
