package config

import (
	"fmt"

	"github.com/rustyeddy/derivpricer/journal"
)

// Open returns the configured journal, or nil when journaling is off.
func (jc JournalConfig) Open() (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return nil, nil
	case "csv":
		j, err := journal.NewCSV(jc.QuotesFile, jc.CurvesFile)
		if err != nil {
			return nil, err
		}
		return j, nil
	case "sqlite":
		j, err := journal.NewSQLite(jc.DBPath)
		if err != nil {
			return nil, err
		}
		return j, nil
	}
	return nil, fmt.Errorf("unknown journal type %q", jc.Type)
}
