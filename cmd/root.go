package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/preview"
	"github.com/Zachkp/folio/internal/reveal"
	"github.com/Zachkp/folio/internal/server"
	"github.com/Zachkp/folio/internal/storage"
	"github.com/Zachkp/folio/internal/theme"
)

var version = "dev"

var (
	flagContent string
	flagTheme   string
)

var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "Personal portfolio site with a terminal preview",
	Version: version,
	RunE:    runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the portfolio in the terminal",
	RunE:  runPreview,
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the terminal theme preference",
}

var themeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the stored preference and the theme it resolves to",
	Args:  cobra.NoArgs,
	RunE:  runThemeGet,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark|system>",
	Short:     "Store a theme preference",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark", "system"},
	RunE:      runThemeSet,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch to the opposite of the current theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "portfolio YAML file (default: built-in)")
	previewCmd.Flags().StringVar(&flagTheme, "theme", "", "theme for this session only (light, dark, system)")
	themeCmd.AddCommand(themeGetCmd, themeSetCmd, themeToggleCmd)
	rootCmd.AddCommand(serveCmd, previewCmd, themeCmd)
}

// Execute runs the root CLI command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadPortfolio(cfg config.Config) (content.Portfolio, error) {
	path := cfg.ContentPath
	if flagContent != "" {
		path = flagContent
	}
	p, err := content.Load(path)
	if err != nil {
		return content.Portfolio{}, fmt.Errorf("load content: %w", err)
	}
	return p, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	p, err := loadPortfolio(cfg)
	if err != nil {
		return err
	}
	p = content.ResolveAssets(p, cfg.ImagesDir)

	var db *storage.DB
	if cfg.DBPath != "" {
		db, err = storage.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
	}

	s, err := server.New(cfg, p, db)
	if err != nil {
		return err
	}
	return s.Run()
}

func terminalResolver(cfg config.Config, store theme.Store) *theme.Resolver {
	if store == nil {
		store = theme.FileStore{Path: cfg.PrefsFile}
	}
	return theme.NewResolver(store, theme.DetectTerminal(termenv.NewOutput(os.Stdout)))
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	p, err := loadPortfolio(cfg)
	if err != nil {
		return err
	}

	var store theme.Store
	if flagTheme != "" {
		pref, err := theme.ParsePreference(flagTheme)
		if err != nil {
			return err
		}
		store = theme.NewMemoryStore(pref.String())
	}
	r := terminalResolver(cfg, store)
	defer r.Close()

	model, err := preview.NewModel(page.Build(p), r, reveal.NewEngine(nil))
	if err != nil {
		return fmt.Errorf("build preview: %w", err)
	}
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = prog.Run()
	return err
}

func printTheme(cmd *cobra.Command, r *theme.Resolver) {
	fmt.Fprintf(cmd.OutOrStdout(), "preference: %s\neffective:  %s\n", r.Preference(), r.EffectiveTheme())
}

func runThemeGet(cmd *cobra.Command, args []string) error {
	r := terminalResolver(config.Load(), nil)
	defer r.Close()
	printTheme(cmd, r)
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	pref, err := theme.ParsePreference(args[0])
	if err != nil {
		return err
	}
	r := terminalResolver(config.Load(), nil)
	defer r.Close()
	r.SetPreference(pref)
	printTheme(cmd, r)
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	r := terminalResolver(config.Load(), nil)
	defer r.Close()
	r.Toggle()
	printTheme(cmd, r)
	return nil
}
