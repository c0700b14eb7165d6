package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/exactas-tools/cal2org/internal/agenda"
	"github.com/exactas-tools/cal2org/internal/config"
	"github.com/exactas-tools/cal2org/internal/logger"
	"github.com/exactas-tools/cal2org/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagURL     string
	flagYear    int
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cal2org",
		Short: "Convert the published academic calendar into an Org-mode agenda",
		Long: `Fetches the academic calendar page, extracts the configured sections and
prints them as an Org-mode agenda on stdout. Diagnostics go to stderr, so
the output can be redirected straight into an agenda file.`,
		SilenceUsage: true,
		RunE:         runConvert,
	}

	cmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath, "YAML file naming the calendar sections to extract")
	cmd.Flags().StringVar(&flagURL, "url", "", "Calendar page URL (default: configured or built-in URL)")
	cmd.Flags().IntVar(&flagYear, "year", 0, "Calendar year for resolved dates (default: current year)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runConvert is the main command logic
func runConvert(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	url := flagURL
	if url == "" {
		url = cfg.CalendarURL
	}
	year := flagYear
	if year == 0 {
		year = time.Now().Year()
	}

	sc := scraper.New(url)
	logger.Debug("fetching calendar page", logger.Fields{"url": sc.URL()})

	doc, err := sc.Fetch()
	if err != nil {
		return fmt.Errorf("fetching calendar: %w", err)
	}

	p := agenda.NewProcessor(year)
	sections := make([]agenda.Section, 0, len(cfg.Sections))
	for _, s := range cfg.Sections {
		sections = append(sections, agenda.Section{Header: s.Header, Short: s.Short})
	}

	if err := p.WriteAgenda(os.Stdout, doc, sections); err != nil {
		return err
	}

	if cfg.Holidays {
		rows, err := doc.HolidayRows()
		if err != nil {
			return fmt.Errorf("extracting holidays: %w", err)
		}
		p.WriteHolidays(os.Stdout, rows)
	}

	if len(cfg.ScienceWeeks) > 0 {
		p.WriteScienceWeeks(os.Stdout, doc, cfg.ScienceWeeks)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
