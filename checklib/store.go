package checklib

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordResults appends one row per assertion to the history table,
// creating the table on first use. The caller owns the db handle.
func RecordResults(db *sql.DB, tableName string, scenario string, targetURL string, results []AssertionResult) error {
	_, err := db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		Scenario TEXT NOT NULL,
		Target TEXT NOT NULL,
		Predicate TEXT NOT NULL,
		Expected TEXT NOT NULL,
		Actual TEXT NOT NULL,
		Pass INTEGER NOT NULL,
		CheckedAt TEXT NOT NULL
	)`, tableName))
	if err != nil {
		return err
	}

	stmt, err := db.Prepare(fmt.Sprintf("INSERT INTO %s(Scenario, Target, Predicate, Expected, Actual, Pass, CheckedAt) VALUES (?, ?, ?, ?, ?, ?, ?)", tableName))
	if err != nil {
		return err
	}
	defer stmt.Close()

	checkedAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range results {
		if _, err := stmt.Exec(scenario, targetURL, r.Predicate, r.Expected, r.Actual, r.Pass, checkedAt); err != nil {
			return err
		}
	}
	return nil
}
