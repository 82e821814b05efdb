package migrations

import "database/sql"

func addPriorityIndexToCurrenciesTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE INDEX currencies_priority_idx ON currencies (priority, code);
	`)

	return err
}
