package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/runs.sql
var sqlFiles embed.FS

// CreateRunTables executes the embedded runs schema script on the pool.
// The script is idempotent (CREATE ... IF NOT EXISTS).
func CreateRunTables(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/runs.sql")
	if err != nil {
		return fmt.Errorf("read embedded sql file runs.sql: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("execute runs schema: %w", err)
	}

	return nil
}
