package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mernsite/internal/site"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Export the site as static HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(headingStyle.Render("--- Generating site ---"))
		st, err := site.Load(siteCfg, site.SourcesFor(siteCfg))
		if err != nil {
			return fmt.Errorf("failed to load site: %w", err)
		}
		pageCount, err := st.Export(siteCfg.OutputDir, site.ExportOptions{CleanDestination: true})
		if err != nil {
			return fmt.Errorf("site generation failed: %w", err)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Success! Generated %d pages in %s.", pageCount, siteCfg.OutputDir)))
		return nil
	},
}
