package db

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is the interface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New creates a Queries instance bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries provides typed access to the analyses table.
type Queries struct {
	db DBTX
}

// WithTx returns Queries bound to a transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// Analysis is one stored analysis run. Entities and Synopsis hold JSON
// arrays of strings.
type Analysis struct {
	ID           int64
	Title        string
	CharCount    int64
	PassageCount int64
	Entities     string
	Synopsis     string
	EasterEgg    sql.NullString
	CreatedAt    time.Time
}

const analysisColumns = `id, title, char_count, passage_count, entities, synopsis, easter_egg, created_at`

func scanAnalysis(row interface{ Scan(...any) error }) (Analysis, error) {
	var a Analysis
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.CharCount,
		&a.PassageCount,
		&a.Entities,
		&a.Synopsis,
		&a.EasterEgg,
		&a.CreatedAt,
	)
	return a, err
}

// CreateAnalysisParams holds the fields for a new analysis row.
type CreateAnalysisParams struct {
	Title        string
	CharCount    int64
	PassageCount int64
	Entities     string
	Synopsis     string
	EasterEgg    sql.NullString
}

// CreateAnalysis inserts an analysis and returns the stored row.
func (q *Queries) CreateAnalysis(ctx context.Context, params CreateAnalysisParams) (Analysis, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO analyses (title, char_count, passage_count, entities, synopsis, easter_egg)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+analysisColumns,
		params.Title,
		params.CharCount,
		params.PassageCount,
		params.Entities,
		params.Synopsis,
		params.EasterEgg,
	)
	return scanAnalysis(row)
}

// GetAnalysis fetches one analysis by id.
func (q *Queries) GetAnalysis(ctx context.Context, id int64) (Analysis, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+analysisColumns+` FROM analyses WHERE id = ?`, id)
	return scanAnalysis(row)
}

// ListAnalyses returns the most recent analyses, newest first.
func (q *Queries) ListAnalyses(ctx context.Context, limit int64) ([]Analysis, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+analysisColumns+` FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// CountAnalyses returns the total number of stored analyses.
func (q *Queries) CountAnalyses(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count)
	return count, err
}

// CountAnalysesByTitleRow is one row of the per-title breakdown.
type CountAnalysesByTitleRow struct {
	Title string
	Count int64
}

// CountAnalysesByTitle returns analysis counts grouped by title, most
// analyzed first.
func (q *Queries) CountAnalysesByTitle(ctx context.Context) ([]CountAnalysesByTitleRow, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT title, COUNT(*) AS count
		FROM analyses
		GROUP BY title
		ORDER BY count DESC, title ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CountAnalysesByTitleRow
	for rows.Next() {
		var r CountAnalysesByTitleRow
		if err := rows.Scan(&r.Title, &r.Count); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// DeleteAnalysis removes one analysis by id.
func (q *Queries) DeleteAnalysis(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	return err
}
