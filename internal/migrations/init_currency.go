package migrations

import "database/sql"

func initCurrencyTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE currencies (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			code VARCHAR(16) NOT NULL,
			priority INTEGER NOT NULL,
			iso_code VARCHAR(16) NOT NULL,
			iso_numeric VARCHAR(3) NOT NULL DEFAULT '',
			name VARCHAR(255) NOT NULL DEFAULT '',
			symbol VARCHAR(32) NOT NULL DEFAULT '',
			subunit VARCHAR(255) NOT NULL DEFAULT '',
			subunit_to_unit INTEGER NOT NULL,
			symbol_first BOOLEAN NOT NULL DEFAULT TRUE,
			html_entity VARCHAR(32) NOT NULL DEFAULT '',
			decimal_mark VARCHAR(8) NOT NULL DEFAULT '.',
			thousands_separator VARCHAR(8) NOT NULL DEFAULT ',',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);

		ALTER TABLE ONLY currencies
			ADD CONSTRAINT currencies_code_key UNIQUE (code);
	`)

	return err
}
