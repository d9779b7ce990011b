package repository

import (
	"context"
	"database/sql"
)

// ResultRepo handles the round_results journal.
type ResultRepo struct {
	db *sql.DB
}

func NewResultRepo(db *sql.DB) *ResultRepo { return &ResultRepo{db: db} }

func (r *ResultRepo) Insert(ctx context.Context, res RoundResult) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO round_results(id, app_id, game, outcome, attempts, created_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`, res.ID, res.AppID, res.Game, res.Outcome, res.Attempts, res.CreatedAt)
	return err
}

func (r *ResultRepo) Counts(ctx context.Context) ([]OutcomeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT game, outcome, COUNT(*) FROM round_results
	GROUP BY game, outcome
	ORDER BY game, outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []OutcomeCount
	for rows.Next() {
		var c OutcomeCount
		if err := rows.Scan(&c.Game, &c.Outcome, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Recent lists the newest results first.
func (r *ResultRepo) Recent(ctx context.Context, limit int) ([]RoundResult, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, app_id, game, outcome, attempts, created_at FROM round_results
	ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RoundResult
	for rows.Next() {
		var res RoundResult
		if err := rows.Scan(&res.ID, &res.AppID, &res.Game, &res.Outcome, &res.Attempts, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
