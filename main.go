package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"staffgrid/internal/app"
	"staffgrid/internal/config"
	"staffgrid/internal/grid"
	"staffgrid/internal/notify"
)

var (
	flagData     string
	flagLocale   string
	flagCurrency string
	flagNoMouse  bool
)

var rootCmd = &cobra.Command{
	Use:   "staffgrid",
	Short: "Interactive employee table for the terminal",
	Long: `staffgrid renders an editable employee table: sort by column,
edit cells inline, and add validated records through the form.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagData, "data", "", "grid definition file (YAML)")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "", "locale for sorting and formatting (default en)")
	rootCmd.Flags().StringVar(&flagCurrency, "currency", "", "currency symbol for formatted columns (default $)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse support")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load()

	locale := cfg.Locale
	if flagLocale != "" {
		locale = flagLocale
	}
	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		tag = parsed
	}

	symbol := cfg.Currency
	if flagCurrency != "" {
		symbol = flagCurrency
	}
	if symbol == "" {
		symbol = "$"
	}

	dataset := config.DefaultDataset()
	if flagData != "" {
		loaded, err := config.LoadDataset(flagData)
		if err != nil {
			return err
		}
		dataset = loaded
	}

	registry, rows, overrides, err := dataset.Build(tag, symbol)
	if err != nil {
		return err
	}

	notices := notify.NewRecorder()
	ctrl, err := grid.NewController(registry, rows, overrides, notices, tag)
	if err != nil {
		return err
	}

	model, err := app.NewModel(ctrl, notices, dataset.Title)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !flagNoMouse && cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
