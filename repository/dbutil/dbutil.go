package dbutil

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDupEntry = 1062

// IsDuplicateKey reports whether err is a MySQL duplicate-key violation.
// Unique indexes back the uniqueness invariants (email, username, one
// entry and one suggestion per user per date), so concurrent
// check-then-act inserts surface here instead of racing.
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDupEntry
	}
	return false
}
