package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mernsite/internal/scaffold"
	"mernsite/internal/site"
)

var initCmd = &cobra.Command{
	Use:   "init <dir>",
	Short: "Create an editable copy of the site in dir",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := scaffold.CreateNewSite(args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("✅ Site created."))
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create new content",
}

var postCategory string

var newPostCmd = &cobra.Command{
	Use:   "post <title>",
	Short: "Create a blog post from the archetype",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contentDir := siteCfg.ContentDir
		if contentDir == "" {
			contentDir = site.ContentDir
		}
		_, err := scaffold.CreateNewPost(strings.Join(args, " "), siteCfg, scaffold.PostOptions{
			ContentDir: contentDir,
			Archetype:  scaffold.ArchetypeFile,
			Category:   postCategory,
		})
		return err
	},
}

func init() {
	newPostCmd.Flags().StringVar(&postCategory, "category", "", "Post category (default General).")
	newCmd.AddCommand(newPostCmd)
}
