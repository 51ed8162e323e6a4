package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"folioforge/internal/client"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <email>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		fullName, _ := cmd.Flags().GetString("name")
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		c, _, err := newClient()
		if err != nil {
			return err
		}
		if err := c.Register(cmd.Context(), args[0], args[1], password, fullName); err != nil {
			return err
		}
		fmt.Printf("account %s created, log in with: folioforge login %s\n", args[0], args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		c, store, err := newClient()
		if err != nil {
			return err
		}
		session, err := c.Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if err := store.Save(session); err != nil {
			return err
		}
		fmt.Printf("logged in as %s\n", session.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := newClient()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the stored identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := newClient()
		if err != nil {
			return err
		}
		session, err := store.Load()
		if err != nil {
			if errors.Is(err, client.ErrNoSession) {
				fmt.Println("not logged in")
				return nil
			}
			return err
		}
		fmt.Printf("%s <%s>\n", session.Username, session.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("name", "", "full name shown on the portfolio")
	loginCmd.Flags().String("password", "", "account password")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
