package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"folioforge/internal/client"
	"folioforge/internal/content"
	"folioforge/internal/views/theme"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Edit and publish your portfolio",
}

var portfolioGenerateCmd = &cobra.Command{
	Use:   "generate <resume-id>",
	Short: "Generate portfolio content from an uploaded resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid resume id %q", args[0])
		}

		c, _, err := newClient()
		if err != nil {
			return err
		}
		portfolio, err := c.GeneratePortfolio(cmd.Context(), uint(id))
		if err != nil {
			return err
		}
		fmt.Printf("portfolio generated for %s (version %d, private)\n", portfolio.Username, portfolio.Version)
		return nil
	},
}

var portfolioShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your portfolio as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		portfolio, err := c.MyPortfolio(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(portfolio)
	},
}

// withEditor loads the portfolio, applies the edit and saves it back in one
// command invocation.
func withEditor(ctx context.Context, edit func(*client.Editor) error) error {
	c, _, err := newClient()
	if err != nil {
		return err
	}

	editor := client.NewEditor(c)
	if err := editor.Load(ctx); err != nil {
		return err
	}
	if err := edit(editor); err != nil {
		return err
	}
	return editor.Save(ctx)
}

var portfolioPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Make your portfolio publicly visible",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := withEditor(cmd.Context(), func(e *client.Editor) error {
			e.SetVisibility(true)
			return nil
		}); err != nil {
			return err
		}
		fmt.Println("portfolio published")
		return nil
	},
}

var portfolioUnpublishCmd = &cobra.Command{
	Use:   "unpublish",
	Short: "Take your portfolio offline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := withEditor(cmd.Context(), func(e *client.Editor) error {
			e.SetVisibility(false)
			return nil
		}); err != nil {
			return err
		}
		fmt.Println("portfolio unpublished")
		return nil
	},
}

var portfolioThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Change the portfolio theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !theme.Known(args[0]) {
			options := ""
			for i, opt := range theme.Options() {
				if i > 0 {
					options += ", "
				}
				options += opt.Value
			}
			return fmt.Errorf("unknown theme %q, pick one of: %s", args[0], options)
		}

		if err := withEditor(cmd.Context(), func(e *client.Editor) error {
			e.SetTheme(args[0])
			return nil
		}); err != nil {
			return err
		}
		fmt.Printf("theme set to %s\n", args[0])
		return nil
	},
}

var portfolioAboutCmd = &cobra.Command{
	Use:   "about <text>",
	Short: "Set the about text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd.Context(), func(e *client.Editor) error {
			e.SetAbout(args[0])
			return nil
		})
	},
}

var portfolioSkillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Edit the skill list",
}

var portfolioSkillAddCmd = &cobra.Command{
	Use:   "add <skill>",
	Short: "Append a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEditor(cmd.Context(), func(e *client.Editor) error {
			e.AddSkill(args[0])
			return nil
		})
	},
}

var portfolioSkillRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the skill at a position (zero-based)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		return withEditor(cmd.Context(), func(e *client.Editor) error {
			if !e.RemoveSkill(index) {
				return fmt.Errorf("no skill at index %d", index)
			}
			return nil
		})
	},
}

var portfolioExperienceAddCmd = &cobra.Command{
	Use:   "experience-add",
	Short: "Append an experience entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := content.Experience{}
		entry.Title, _ = cmd.Flags().GetString("title")
		entry.Company, _ = cmd.Flags().GetString("company")
		entry.StartDate, _ = cmd.Flags().GetString("start")
		entry.EndDate, _ = cmd.Flags().GetString("end")
		entry.Description, _ = cmd.Flags().GetString("description")

		return withEditor(cmd.Context(), func(e *client.Editor) error {
			e.AddExperience(entry)
			return nil
		})
	},
}

var portfolioViewCmd = &cobra.Command{
	Use:   "view <username>",
	Short: "Fetch someone's public portfolio as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		portfolio, err := c.PublicPortfolio(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(portfolio)
	},
}

func init() {
	portfolioExperienceAddCmd.Flags().String("title", "", "job title")
	portfolioExperienceAddCmd.Flags().String("company", "", "company name")
	portfolioExperienceAddCmd.Flags().String("start", "", "start date")
	portfolioExperienceAddCmd.Flags().String("end", "", "end date")
	portfolioExperienceAddCmd.Flags().String("description", "", "role description")

	portfolioSkillCmd.AddCommand(portfolioSkillAddCmd)
	portfolioSkillCmd.AddCommand(portfolioSkillRemoveCmd)

	portfolioCmd.AddCommand(portfolioGenerateCmd)
	portfolioCmd.AddCommand(portfolioShowCmd)
	portfolioCmd.AddCommand(portfolioPublishCmd)
	portfolioCmd.AddCommand(portfolioUnpublishCmd)
	portfolioCmd.AddCommand(portfolioThemeCmd)
	portfolioCmd.AddCommand(portfolioAboutCmd)
	portfolioCmd.AddCommand(portfolioSkillCmd)
	portfolioCmd.AddCommand(portfolioExperienceAddCmd)
	portfolioCmd.AddCommand(portfolioViewCmd)
	rootCmd.AddCommand(portfolioCmd)
}
