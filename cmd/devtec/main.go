package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pders01/devtec/internal/catalog"
	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/debuglog"
	"github.com/pders01/devtec/internal/render"
	"github.com/pders01/devtec/internal/storage"
	"github.com/pders01/devtec/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	dataSource string
	dbPath     string
	logLevel   string
	quiet      bool
	sortFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "devtec",
	Short: "Browse a catalog of programming technologies",
	Long: `devtec lists programming languages and technologies from a JSON, TOML
or YAML catalog, local or remote, with search, tag filters and sorting.

Running devtec without a subcommand opens the interactive browser.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var listCmd = &cobra.Command{
	Use:   "list [term]",
	Short: "Print the catalog, optionally filtered by a search term",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("devtec %s\n", Version)
		fmt.Println("Catálogo de tecnologias")
		fmt.Println("github.com/pders01/devtec")
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configGenCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the default config file",
	Run: func(cmd *cobra.Command, args []string) {
		home, _ := os.UserHomeDir()
		configFile := filepath.Join(home, ".config", "devtec", "config.toml")

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataSource, "data", "", "Catalog file or URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to preferences database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: off, error, warn, info, debug")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip startup banner")
	listCmd.Flags().StringVarP(&sortFlag, "sort", "s", string(catalog.SortNameAsc), "Sort order: alfa_asc, alfa_desc, ano_desc, ano_asc, pop_desc, pop_asc")

	configCmd.AddCommand(configGenCmd)
	rootCmd.AddCommand(listCmd, versionCmd, configCmd)
}

func main() {
	// A missing .env is fine; it only seeds DEVTEC_* variables.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if dataSource != "" {
		cfg.Data.Source = dataSource
		if !config.IsRemoteSource(dataSource) {
			cfg.Data.Source = expandTilde(dataSource)
		}
	}
	if dbPath != "" {
		cfg.Database.Path = expandTilde(dbPath)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	return cfg, nil
}

func expandTilde(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !quiet {
		tui.ShowBanner(Version)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer debuglog.Close()

	// Without a store the theme still toggles, it just isn't remembered.
	store, err := storage.NewStoreWithTimeout(cfg.Database.Path, cfg.Database.Timeout)
	if err != nil {
		debuglog.Warnf("opening preferences: %v", err)
		fmt.Fprintf(os.Stderr, "Warning: preferences unavailable: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := tui.NewApp(ctx, cfg, store)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	order, err := catalog.ParseSortOrder(sortFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Same policy as the interface: a failed load lists an empty catalog.
	entries, err := catalog.NewLoader(cfg).LoadOrEmpty(cmd.Context(), cfg.Data.Source)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	state := catalog.State{Sort: order}
	if len(args) == 1 {
		state.SearchTerm = args[0]
	}

	results := catalog.NewEngine(cfg.Data.Locale).Process(entries, state)
	page := render.NewRenderer(cfg.UI.TagPalette, nil).Render(results, state.SearchTerm)

	fmt.Fprint(cmd.OutOrStdout(), page.Plain())
	return nil
}
