package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const dialectPostgres = "postgres"

// Builder renders prepared statements with $n placeholders.
var Builder = goqu.Dialect(dialectPostgres)

// sqlBuilder is satisfied by every goqu dataset.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// ToSQL renders ds as a prepared statement.
func ToSQL(ds any) (string, []any, error) {
	var builder sqlBuilder

	switch d := ds.(type) {
	case *goqu.SelectDataset:
		builder = d.Prepared(true)
	case *goqu.InsertDataset:
		builder = d.Prepared(true)
	case *goqu.UpdateDataset:
		builder = d.Prepared(true)
	case *goqu.DeleteDataset:
		builder = d.Prepared(true)
	default:
		return "", nil, fmt.Errorf("unsupported dataset %T", ds)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build query: %w", err)
	}

	return query, args, nil
}

// Select runs ds against the reader of ctx and scans every row into dest.
func (c *Connection) Select(ctx context.Context, dest any, ds *goqu.SelectDataset) (string, error) {
	query, args, err := ToSQL(ds)
	if err != nil {
		return query, err
	}

	if err = c.Reader(ctx).SelectContext(ctx, dest, query, args...); err != nil {
		return query, fmt.Errorf("failed to select: %w", err)
	}

	return query, nil
}

// GetOne runs ds and scans a single row into dest. found is false when no row matched.
func (c *Connection) GetOne(ctx context.Context, dest any, ds *goqu.SelectDataset) (found bool, query string, err error) {
	query, args, err := ToSQL(ds)
	if err != nil {
		return false, query, err
	}

	err = c.Reader(ctx).GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, query, nil
	}

	if err != nil {
		return false, query, fmt.Errorf("failed to get: %w", err)
	}

	return true, query, nil
}

// Exec runs an insert, update or delete dataset on the writer of ctx and returns the affected rows.
func (c *Connection) Exec(ctx context.Context, ds any) (int64, string, error) {
	query, args, err := ToSQL(ds)
	if err != nil {
		return 0, query, err
	}

	result, err := c.Writer(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, query, fmt.Errorf("failed to exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, query, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, query, nil
}

// AliasColumns selects table.column AS "prefix.column" for each column so that sqlx
// scans them into the nested struct tagged prefix.
func AliasColumns(table, prefix string, columns []string) []any {
	selected := make([]any, len(columns))
	for i, col := range columns {
		selected[i] = goqu.L(fmt.Sprintf(`%q.%q AS %q`, table, col, prefix+"."+col))
	}

	return selected
}

// QualifiedColumns selects table.column for each column.
func QualifiedColumns(table string, columns []string) []any {
	selected := make([]any, len(columns))
	for i, col := range columns {
		selected[i] = goqu.T(table).Col(col)
	}

	return selected
}
