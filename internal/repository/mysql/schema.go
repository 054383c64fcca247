package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/adiwarta/warta/domain"
)

// MySQL server error codes signalling that the statement referenced a schema
// object the current database does not have.
const (
	mysqlErrUnknownTable  = 1146 // ER_NO_SUCH_TABLE
	mysqlErrUnknownColumn = 1054 // ER_BAD_FIELD_ERROR
	mysqlErrDuplicateKey  = 1062 // ER_DUP_ENTRY
)

// isMissingSchemaObject recognizes the "unknown relation" signal used by the
// rolling-migration degradation paths, distinct from other failures.
func isMissingSchemaObject(err error) bool {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return false
	}
	return myErr.Number == mysqlErrUnknownTable || myErr.Number == mysqlErrUnknownColumn
}

// isDuplicateKey recognizes a unique-constraint violation.
func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return false
	}
	return myErr.Number == mysqlErrDuplicateKey
}

// schemaErr maps MySQL schema-drift errors onto the domain signal so the
// services can choose between hard failure and silent degradation.
func schemaErr(err error) error {
	if isMissingSchemaObject(err) {
		return domain.ErrSchemaMissing
	}
	return err
}

// hasTable probes whether the table backing the given model is provisioned.
// Probed per call rather than cached so a finished migration takes effect
// without a restart.
func hasTable(db *gorm.DB, dst any) bool {
	return db.Migrator().HasTable(dst)
}

// hasColumn probes whether the given column of the model is provisioned.
func hasColumn(db *gorm.DB, dst any, column string) bool {
	return db.Migrator().HasColumn(dst, column)
}
