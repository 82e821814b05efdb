package migrations

import "github.com/lopezator/migrator"

// Migrations contains all migrations in the order they must be applied.
var Migrations = []any{
	&migrator.MigrationNoTx{
		Name: "Init UUID extension",
		Func: initUUIDExtension,
	},
	&migrator.MigrationNoTx{
		Name: "Init currency table",
		Func: initCurrencyTable,
	},
	&migrator.MigrationNoTx{
		Name: "Add priority index to currencies table",
		Func: addPriorityIndexToCurrenciesTable,
	},
}
