package database

import (
	"fmt"
	"strings"
)

// Dialect is the SQL flavor of the open handle.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite3"
	DialectMySQL  Dialect = "mysql"
)

// UpsertByKey returns an INSERT that replaces updateColumns when a row with the
// same unique key already exists.
func (d Dialect) UpsertByKey(table, key string, columns, updateColumns []string) string {
	insert := buildInsert(table, columns)
	sets := make([]string, 0, len(updateColumns))
	switch d {
	case DialectMySQL:
		for _, c := range updateColumns {
			sets = append(sets, fmt.Sprintf("%s = VALUES(%s)", c, c))
		}
		return insert + " ON DUPLICATE KEY UPDATE " + strings.Join(sets, ", ")
	default:
		for _, c := range updateColumns {
			sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
		}
		return insert + fmt.Sprintf(" ON CONFLICT(%s) DO UPDATE SET ", key) + strings.Join(sets, ", ")
	}
}

// InsertIgnoringDuplicate returns an INSERT that is a no-op when the unique key already exists.
func (d Dialect) InsertIgnoringDuplicate(table, key string, columns []string) string {
	switch d {
	case DialectMySQL:
		return strings.Replace(buildInsert(table, columns), "INSERT INTO", "INSERT IGNORE INTO", 1)
	default:
		return buildInsert(table, columns) + fmt.Sprintf(" ON CONFLICT(%s) DO NOTHING", key)
	}
}

// Insert returns a plain single-row INSERT.
func (d Dialect) Insert(table string, columns []string) string {
	return buildInsert(table, columns)
}

func buildInsert(table string, columns []string) string {
	placeholder := "(" + strings.Repeat("?, ", len(columns)-1) + "?)"
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), placeholder)
}
