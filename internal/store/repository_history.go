// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/minitranslate/vocabsync/internal/logger"
	"github.com/minitranslate/vocabsync/models"
)

// historyCapacity bounds the conflict-history log; older rows are trimmed on
// every Record call.
const historyCapacity = 100

type historyRepository struct {
	*DB
	logger *logger.Logger
	sb     sq.StatementBuilderType
}

// NewHistoryRepository returns the SQLite-backed [ConflictHistoryRepository].
func NewHistoryRepository(db *DB, logger *logger.Logger) ConflictHistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *historyRepository) Record(ctx context.Context, records ...models.ResolutionRecord) error {
	if len(records) == 0 {
		return nil
	}

	insert := r.sb.Insert("conflict_history").
		Columns("id", "run_id", "category", "key", "strategy", "choice", "reason", "resolved_at")
	for _, rec := range records {
		insert = insert.Values(rec.ID, rec.RunID, rec.Category, rec.Key, rec.Strategy, rec.Choice, rec.Reason, rec.ResolvedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history insert: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "historyRepository.Record").
			Int("records", len(records)).
			Msg("failed to insert conflict history")
		return fmt.Errorf("failed to insert conflict history: %w", err)
	}

	return r.trim(ctx)
}

func (r *historyRepository) History(ctx context.Context, limit int) ([]models.ResolutionRecord, error) {
	if limit <= 0 || limit > historyCapacity {
		limit = historyCapacity
	}

	query, args, err := r.sb.
		Select("id", "run_id", "category", "key", "strategy", "choice", "reason", "resolved_at").
		From("conflict_history").
		OrderBy("resolved_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build history select: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflict history: %w", err)
	}
	defer rows.Close()

	var records []models.ResolutionRecord
	for rows.Next() {
		var rec models.ResolutionRecord
		if err = rows.Scan(&rec.ID, &rec.RunID, &rec.Category, &rec.Key, &rec.Strategy, &rec.Choice, &rec.Reason, &rec.ResolvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conflict history: %w", err)
	}

	return records, nil
}

// trim deletes everything older than the newest historyCapacity rows.
func (r *historyRepository) trim(ctx context.Context) error {
	keep, args, err := r.sb.
		Select("id").
		From("conflict_history").
		OrderBy("resolved_at DESC", "id").
		Limit(historyCapacity).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build history trim subquery: %w", err)
	}

	query := fmt.Sprintf("DELETE FROM conflict_history WHERE id NOT IN (%s)", keep)
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to trim conflict history: %w", err)
	}

	return nil
}
