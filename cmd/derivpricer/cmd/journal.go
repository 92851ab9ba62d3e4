package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/derivpricer/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the quote journal",
	Long: `Query and display quote records from the SQLite journal.

Subcommands:
  show  - Details of one quote by run id
  list  - Quotes recorded on a day (today by default)

Examples:
  derivpricer journal show <run-id>
  derivpricer journal list
  derivpricer journal list --day 2024-01-15`,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one quote and its curve",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quotes recorded on a day",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var (
	journalDBPath string
	journalDay    string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalListCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (defaults to journal.db_path from config)")
	journalListCmd.Flags().StringVar(&journalDay, "day", "", "day to list, YYYY-MM-DD (default today)")
}

func openJournal() (*journal.SQLite, error) {
	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		path = "./derivpricer.sqlite"
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	runID := args[0]
	rec, err := j.GetQuote(runID)
	if err != nil {
		return fmt.Errorf("get quote: %w", err)
	}
	pts, err := j.ListCurve(runID)
	if err != nil {
		return fmt.Errorf("get curve: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, journal.FormatQuoteOrg(rec))
	if len(pts) > 0 {
		fmt.Fprintf(out, "Curve: %d points, spot %g..%g\n", len(pts), pts[0].Spot, pts[len(pts)-1].Spot)
	}
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	loc := time.Local
	day := journalDay
	if day == "" {
		day = time.Now().In(loc).Format("2006-01-02")
	}
	start, end, err := dayBounds(loc, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListQuotesBetween(start, end)
	if err != nil {
		return fmt.Errorf("query quotes: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatQuotesOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
