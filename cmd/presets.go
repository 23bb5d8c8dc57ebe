package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/soroban/internal/infrastructure/sqlite"
	"github.com/zjrosen/soroban/internal/paths"
	"github.com/zjrosen/soroban/internal/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved board presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE:  runPresetsList,
}

var presetsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export presets as YAML (to stdout, or to a file)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresetsExport,
}

var presetsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import presets from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsImport,
}

func init() {
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsExportCmd)
	presetsCmd.AddCommand(presetsImportCmd)
	rootCmd.AddCommand(presetsCmd)
}

// presetRepository opens the preset database for a subcommand. Unlike
// the TUI, a failure here is fatal.
func presetRepository() (presets.Repository, error) {
	if err := loadConfig(); err != nil {
		return nil, err
	}
	db, err := sqlite.NewDB(paths.PresetDBPath(cfg.Database.Path))
	if err != nil {
		return nil, fmt.Errorf("opening preset database: %w", err)
	}
	return db.PresetRepository(), nil
}

func runPresetsList(cmd *cobra.Command, args []string) error {
	repo, err := presetRepository()
	if err != nil {
		return err
	}
	list, err := repo.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No saved presets. Import some with 'soroban presets import'.")
		return nil
	}

	maxLen := 0
	for _, p := range list {
		if len(p.Name()) > maxLen {
			maxLen = len(p.Name())
		}
	}
	for _, p := range list {
		params := p.Params()
		fmt.Printf("  %-*s  %d cols, %d/%d beads, weight %d, base %d\n",
			maxLen, p.Name(), params.Columns, params.UpperBeads, params.LowerBeads,
			params.UpperWeight, params.Radix)
	}
	return nil
}

func runPresetsExport(cmd *cobra.Command, args []string) error {
	repo, err := presetRepository()
	if err != nil {
		return err
	}
	list, err := repo.List()
	if err != nil {
		return err
	}
	data, err := presets.ExportYAML(list)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(args[0], data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	fmt.Printf("Exported %d preset(s) to %s\n", len(list), args[0])
	return nil
}

func runPresetsImport(cmd *cobra.Command, args []string) error {
	repo, err := presetRepository()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[0]) //nolint:gosec // G304: path is a user argument
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	list, err := presets.ImportYAML(data)
	if err != nil {
		return err
	}

	imported, skipped := 0, 0
	for _, p := range list {
		if err := repo.Save(p); err != nil {
			var dup *presets.DuplicateNameError
			if errors.As(err, &dup) {
				fmt.Printf("  skipped %q (name already taken)\n", p.Name())
				skipped++
				continue
			}
			return fmt.Errorf("saving %q: %w", p.Name(), err)
		}
		imported++
	}
	fmt.Printf("Imported %d preset(s), skipped %d\n", imported, skipped)
	return nil
}
