package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revelaction/nerstat/corpus"
	"github.com/revelaction/nerstat/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// RunStore persists corpus scans in a SQLite database. Stats and
// frequency tables are stored as JSON text columns.
type RunStore struct {
	pool *sqlitex.Pool
}

var _ storage.RunRepository = (*RunStore)(nil)

func NewRunStore(pool *sqlitex.Pool) *RunStore {
	return &RunStore{pool: pool}
}

func (s *RunStore) Write(run storage.Run) (int64, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer s.pool.Put(conn)

	stats, err := json.Marshal(run.Stats)
	if err != nil {
		return 0, fmt.Errorf("encode run stats: %w", err)
	}
	labels, err := json.Marshal(run.LabelCounts)
	if err != nil {
		return 0, fmt.Errorf("encode label counts: %w", err)
	}
	types, err := json.Marshal(run.TypeCounts)
	if err != nil {
		return 0, fmt.Errorf("encode type counts: %w", err)
	}

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	err = sqlitex.Execute(conn,
		"INSERT INTO runs (created_at, root, stats, label_counts, type_counts) VALUES (?, ?, ?, ?, ?)",
		&sqlitex.ExecOptions{
			Args: []interface{}{
				createdAt.UTC().Format(time.RFC3339),
				run.Root,
				string(stats),
				string(labels),
				string(types),
			},
		})
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	return conn.LastInsertRowID(), nil
}

func (s *RunStore) List() ([]storage.Run, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn,
		"SELECT id, created_at, root, stats FROM runs ORDER BY id",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				run, err := scanRun(stmt, false)
				if err != nil {
					return err
				}
				runs = append(runs, run)
				return nil
			},
		})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *RunStore) Read(id int64) (storage.Run, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return storage.Run{}, err
	}
	defer s.pool.Put(conn)

	var run storage.Run
	found := false

	err = sqlitex.Execute(conn,
		"SELECT id, created_at, root, stats, label_counts, type_counts FROM runs WHERE id = ?",
		&sqlitex.ExecOptions{
			Args: []interface{}{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				var err error
				run, err = scanRun(stmt, true)
				return err
			},
		})
	if err != nil {
		return storage.Run{}, err
	}
	if !found {
		return storage.Run{}, fmt.Errorf("run not found: %d", id)
	}

	return run, nil
}

func scanRun(stmt *sqlite.Stmt, withCounts bool) (storage.Run, error) {
	run := storage.Run{
		Id:   stmt.ColumnInt64(0),
		Root: stmt.ColumnText(2),
	}

	createdAt, err := time.Parse(time.RFC3339, stmt.ColumnText(1))
	if err != nil {
		return storage.Run{}, fmt.Errorf("decode run %d created_at: %w", run.Id, err)
	}
	run.CreatedAt = createdAt

	var stats corpus.Stats
	if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &stats); err != nil {
		return storage.Run{}, fmt.Errorf("decode run %d stats: %w", run.Id, err)
	}
	run.Stats = stats

	if !withCounts {
		return run, nil
	}

	if err := json.Unmarshal([]byte(stmt.ColumnText(4)), &run.LabelCounts); err != nil {
		return storage.Run{}, fmt.Errorf("decode run %d label counts: %w", run.Id, err)
	}
	if err := json.Unmarshal([]byte(stmt.ColumnText(5)), &run.TypeCounts); err != nil {
		return storage.Run{}, fmt.Errorf("decode run %d type counts: %w", run.Id, err)
	}

	return run, nil
}
