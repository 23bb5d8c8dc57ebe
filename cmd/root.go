// Package cmd wires the soroban CLI: the root command launches the TUI,
// subcommands manage config and saved presets.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/soroban/internal/app"
	"github.com/zjrosen/soroban/internal/config"
	"github.com/zjrosen/soroban/internal/infrastructure/sqlite"
	"github.com/zjrosen/soroban/internal/log"
	"github.com/zjrosen/soroban/internal/paths"
	"github.com/zjrosen/soroban/internal/presets"
	"github.com/zjrosen/soroban/internal/ui/styles"
)

var (
	cfg config.Config

	cfgPathFlag string
	presetFlag  string
	columnsFlag int
)

var rootCmd = &cobra.Command{
	Use:   "soroban",
	Short: "An abacus in your terminal",
	Long: `Soroban renders an interactive abacus in the terminal. Click beads
with the mouse or drive the board from the keyboard; the total updates
as you go. Board shape, theme, and saved presets live in a YAML config
and a small SQLite database.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPathFlag, "config", "", "path to config file (default ~/.config/soroban/config.yaml)")
	rootCmd.Flags().StringVar(&presetFlag, "preset", "", "start with a saved preset (by name)")
	rootCmd.Flags().IntVar(&columnsFlag, "columns", 0, "override the number of columns")
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// configPath resolves the config file location, preferring the --config
// flag over the default under the user config dir.
func configPath() string {
	if cfgPathFlag != "" {
		return cfgPathFlag
	}
	return paths.ConfigPath()
}

func loadConfig() error {
	c, err := config.Load(configPath())
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

// openRepository opens the preset database. Failure is not fatal for
// the TUI; the app degrades to a board without saved presets.
func openRepository() presets.Repository {
	dbPath := paths.PresetDBPath(cfg.Database.Path)
	db, err := sqlite.NewDB(dbPath)
	if err != nil {
		log.ErrorErr(log.CatDB, "opening preset database", err, "path", dbPath)
		return nil
	}
	return db.PresetRepository()
}

// applyFlagOverrides layers --preset and --columns on top of the
// loaded config.
func applyFlagOverrides(repo presets.Repository) error {
	if presetFlag != "" {
		if repo == nil {
			return fmt.Errorf("--preset %q: preset storage is unavailable", presetFlag)
		}
		p, err := repo.FindByName(presetFlag)
		if err != nil {
			return fmt.Errorf("--preset: %w", err)
		}
		params := p.Params()
		cfg.Abacus = config.AbacusConfig{
			Columns:     params.Columns,
			UpperBeads:  params.UpperBeads,
			LowerBeads:  params.LowerBeads,
			UpperWeight: params.UpperWeight,
			Radix:       params.Radix,
		}
	}
	if columnsFlag > 0 {
		cfg.Abacus.Columns = columnsFlag
	}
	return cfg.Validate()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	if err := log.Setup(paths.LogPath(cfg.Log.Path), cfg.Log.Level); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: logging disabled:", err)
	}
	defer log.Close() //nolint:errcheck

	repo := openRepository()
	if err := applyFlagOverrides(repo); err != nil {
		return err
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.Colors,
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	zone.NewGlobal()
	defer zone.Close()

	model, err := app.New(cfg, repo)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	stopWatch, err := watchConfig(p)
	if err != nil {
		log.ErrorErr(log.CatConfig, "config watcher unavailable", err)
	} else {
		defer stopWatch()
	}

	_, err = p.Run()
	return err
}

// watchConfig reloads the config file on change and pushes the result
// into the running program. Editors write via rename, so watch the
// parent directory rather than the file itself. Events are debounced
// because a single save often produces several.
func watchConfig(p *tea.Program) (func(), error) {
	path := configPath()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close() //nolint:errcheck
		return nil, err
	}

	var debounce *time.Timer
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(path) {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(200*time.Millisecond, func() {
					fresh, err := config.Load(path)
					if err != nil {
						log.ErrorErr(log.CatConfig, "reloading config", err)
						return
					}
					log.Info(log.CatConfig, "config reloaded", "path", path)
					p.Send(app.ConfigReloadedMsg{Config: fresh})
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.ErrorErr(log.CatConfig, "config watcher", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil //nolint:errcheck
}
