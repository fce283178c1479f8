// package repositories provides persistence layer implementations for the catalog
package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// querier is satisfied by both [sql.DB] and [sql.Tx].
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NextSequence increments and returns the sequence for table in a single statement.
//
// Sequence numbers order courses the way the source catalog listed them. Pass a [sql.Tx]
// to allocate the number inside the transaction that uses it.
func NextSequence(q querier, table string) (int, error) {
	var sequence int
	query := fmt.Sprintf("UPDATE %s_sequence SET value = value + 1 WHERE id = 1 RETURNING value", table)

	if err := q.QueryRow(query).Scan(&sequence); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("sequence %s_sequence is not initialized", table)
		}
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}
	return sequence, nil
}
