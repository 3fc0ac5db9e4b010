package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/uicontract/go-overlay-check/checklib"
)

func main() {
	os.Exit(run())
}

func run() int {
	var options checklib.CheckOptions

	err := checklib.LoadOptions(&options, "balloons", "LayoutResults")
	if err != nil {
		log.Print(err)
		return 1
	}

	dir, err := checklib.TempDir(&options)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer os.RemoveAll(dir)

	var sqliteDB *sql.DB
	if options.SqliteDbPath != "" {
		sqliteDB, err = sql.Open("sqlite3", options.SqliteDbPath)
		if err != nil {
			log.Print(err)
			return 1
		}
		defer sqliteDB.Close()
	}

	session, err := checklib.NewSession(&options, dir)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer session.Close()

	results, err := session.VerifyOverlayLayoutNeutrality(options.TargetURL, options.MarkerSelector, options.InstanceIndex)
	if err != nil {
		log.Print(err)
		return 1
	}

	for _, r := range results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
		}
		log.Printf("%s: %s: expected %s, got %q", status, r.Predicate, r.Expected, r.Actual)
	}

	if sqliteDB != nil {
		if err := checklib.RecordResults(sqliteDB, options.SqliteResultTable, options.Scenario, options.TargetURL, results); err != nil {
			log.Print(err)
			return 1
		}
	}

	if checklib.Failed(results) {
		return 1
	}

	log.Printf("Completed: overlay layout contract holds at %s", options.TargetURL)
	return 0
}
