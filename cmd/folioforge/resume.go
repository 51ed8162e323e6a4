package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage uploaded resumes",
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a resume file and extract its content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume file: %w", err)
		}

		c, _, err := newClient()
		if err != nil {
			return err
		}
		resume, err := c.UploadResume(cmd.Context(), filepath.Base(args[0]), data)
		if err != nil {
			return err
		}
		fmt.Printf("uploaded resume %d (%s)\n", resume.ID, resume.OriginalFileName)
		if resume.ParsedData.Name != "" {
			fmt.Printf("extracted content for %s\n", resume.ParsedData.Name)
		}
		return nil
	},
}

var resumeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded resumes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		resumes, err := c.ListResumes(cmd.Context())
		if err != nil {
			return err
		}
		if len(resumes) == 0 {
			fmt.Println("no resumes uploaded yet")
			return nil
		}
		for _, r := range resumes {
			used := ""
			if r.UsedInPortfolio {
				used = " (used in portfolio)"
			}
			fmt.Printf("%d\t%s%s\n", r.ID, r.OriginalFileName, used)
		}
		return nil
	},
}

var resumeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a resume's extracted content as JSON",
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
		resumes, err := c.ListResumes(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range resumes {
			if r.ID == uint(id) {
				return printJSON(r.ParsedData)
			}
		}
		return fmt.Errorf("resume %d not found", id)
	},
}

func init() {
	resumeCmd.AddCommand(resumeUploadCmd)
	resumeCmd.AddCommand(resumeListCmd)
	resumeCmd.AddCommand(resumeShowCmd)
	rootCmd.AddCommand(resumeCmd)
}
