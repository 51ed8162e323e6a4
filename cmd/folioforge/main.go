// Command folioforge is the terminal client for the portfolio service.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folioforge/internal/client"
	"folioforge/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "folioforge",
	Short:         "Manage your resume-generated portfolio from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newClient builds the API client with the persisted session wired in. A
// rejected token clears the session so the next command starts logged out.
func newClient() (*client.Client, *client.SessionStore, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, err
	}

	store := client.NewSessionStore(cfg.SessionPath)
	c := client.New(cfg.BaseURL,
		client.WithTokenSource(func() string {
			session, err := store.Load()
			if err != nil {
				return ""
			}
			return session.Token
		}),
		client.WithUnauthorizedHandler(func() {
			if err := store.Clear(); err == nil {
				fmt.Fprintln(os.Stderr, "session expired, please log in again")
			}
		}),
	)
	return c, store, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
