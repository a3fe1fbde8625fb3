package domain

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	_ "github.com/sijms/go-ora/v2"

	"veridian-datagen/models"
)

// Driver names as registered with database/sql.
const (
	DriverPostgres = "postgres"
	DriverOracle   = "oracle"
)

// OpenSQL opens and pings a database handle for driver.
func OpenSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("db connection string not found")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	log.Printf("[sink:sql] %s connection successful", driver)
	return db, nil
}

// SQLRepository inserts the batch into one table inside a single
// transaction, tagging every row with the run ID. Postgres uses COPY,
// Oracle a prepared positional insert.
type SQLRepository struct {
	db     *sql.DB
	driver string
	table  string
}

func NewSQLRepository(db *sql.DB, driver, table string) *SQLRepository {
	return &SQLRepository{db: db, driver: driver, table: table}
}

func (r *SQLRepository) Name() string { return "sql" }

func (r *SQLRepository) Remote() bool { return true }

func (r *SQLRepository) Save(ctx context.Context, dataset models.Dataset) error {
	query, err := r.insertQuery()
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sql: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("sql: prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range dataset.Records {
		if _, err := stmt.ExecContext(ctx, rowArgs(dataset.RunID, p)...); err != nil {
			return fmt.Errorf("sql: insert %s: %w", p.ID, err)
		}
	}
	if r.driver == DriverPostgres {
		// an argument-less Exec flushes the COPY buffer
		if _, err := stmt.ExecContext(ctx); err != nil {
			return fmt.Errorf("sql: flush copy: %w", err)
		}
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("sql: close statement: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sql: commit: %w", err)
	}

	log.Printf("[sink:sql] inserted %d rows into %s (run %s)", len(dataset.Records), r.table, dataset.RunID)
	return nil
}

func (r *SQLRepository) insertQuery() (string, error) {
	switch r.driver {
	case DriverPostgres:
		return pq.CopyIn(r.table, sqlColumns()...), nil
	case DriverOracle:
		return oracleInsert(r.table), nil
	default:
		return "", fmt.Errorf("sql: unsupported driver %q", r.driver)
	}
}

func sqlColumns() []string {
	return append([]string{"run_id"}, recordColumns...)
}

func rowArgs(runID string, p models.PropertyRecord) []any {
	return append([]any{runID}, recordArgs(p)...)
}

func oracleInsert(table string) string {
	cols := sqlColumns()
	binds := make([]string, len(cols))
	for i := range cols {
		binds[i] = fmt.Sprintf(":%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(binds, ", "))
}
