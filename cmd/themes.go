package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/soroban/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) error {
	names := styles.PresetNames()

	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	fmt.Println("Available themes (set theme.preset in config):")
	for _, name := range names {
		fmt.Printf("  %-*s  %s\n", maxLen, name, styles.Presets[name].Description)
	}
	return nil
}
