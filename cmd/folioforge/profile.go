package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"folioforge/internal/client"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage account settings",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show account settings as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		profile, err := c.Profile(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update account settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		update := client.ProfileUpdate{}
		if cmd.Flags().Changed("email") {
			email, _ := cmd.Flags().GetString("email")
			update.Email = &email
		}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			update.FullName = &name
		}
		if cmd.Flags().Changed("bio") {
			bio, _ := cmd.Flags().GetString("bio")
			update.Bio = &bio
		}
		if update.Email == nil && update.FullName == nil && update.Bio == nil {
			return fmt.Errorf("nothing to update, pass --email, --name or --bio")
		}

		c, _, err := newClient()
		if err != nil {
			return err
		}
		profile, err := c.UpdateProfile(cmd.Context(), update)
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show portfolio view statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		summary, err := c.Analytics(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("total views:     %d\n", summary.TotalViews)
		fmt.Printf("last 7 days:     %d (%s)\n", summary.RecentViews, summary.ViewsChange)
		fmt.Printf("unique visitors: %d\n", summary.UniqueVisitors)
		if len(summary.DailyViews) > 0 {
			fmt.Println("daily views:")
			for _, day := range summary.DailyViews {
				fmt.Printf("  %s  %d\n", day.Name, day.Views)
			}
		}
		if len(summary.TrafficSources) > 0 {
			fmt.Println("traffic sources:")
			for _, src := range summary.TrafficSources {
				fmt.Printf("  %-9s %d\n", src.Name, src.Value)
			}
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("email", "", "account email")
	profileSetCmd.Flags().String("name", "", "full name shown on the portfolio")
	profileSetCmd.Flags().String("bio", "", "short bio")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(analyticsCmd)
}
