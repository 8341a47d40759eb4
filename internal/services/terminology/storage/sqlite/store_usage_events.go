package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/oakleafmed/medterm/internal/services/terminology/storage"
)

// AppendUsageEvent records one terminology function invocation.
func (s *Store) AppendUsageEvent(ctx context.Context, record storage.UsageEventRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.Term) == "" {
		return fmt.Errorf("term is required")
	}
	if strings.TrimSpace(string(record.Outcome)) == "" {
		return fmt.Errorf("outcome is required")
	}
	if record.CreatedAt.IsZero() {
		return fmt.Errorf("created at is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO terminology_usage_events (
	term, outcome, model, latency_ms, created_at
) VALUES (?, ?, ?, ?, ?)
`,
		strings.TrimSpace(record.Term),
		strings.TrimSpace(string(record.Outcome)),
		strings.TrimSpace(record.Model),
		record.LatencyMillis,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("append usage event: %w", err)
	}
	return nil
}

// RecentUsageEvents returns the newest events, most recent first.
// Intended for operational checks and tests.
func (s *Store) RecentUsageEvents(ctx context.Context, limit int) ([]storage.UsageEventRecord, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT term, outcome, model, latency_ms, created_at
FROM terminology_usage_events
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query usage events: %w", err)
	}
	defer rows.Close()

	var records []storage.UsageEventRecord
	for rows.Next() {
		var record storage.UsageEventRecord
		var outcome string
		var createdAt int64
		if err := rows.Scan(&record.Term, &outcome, &record.Model, &record.LatencyMillis, &createdAt); err != nil {
			return nil, fmt.Errorf("scan usage event: %w", err)
		}
		record.Outcome = storage.UsageOutcome(outcome)
		record.CreatedAt = fromMillis(createdAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usage events: %w", err)
	}
	return records, nil
}

// CountUsageEvents reports the number of recorded events for an outcome.
// Intended for operational checks and tests.
func (s *Store) CountUsageEvents(ctx context.Context, outcome storage.UsageOutcome) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int64
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM terminology_usage_events WHERE outcome = ?",
		strings.TrimSpace(string(outcome)),
	)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count usage events: %w", err)
	}
	return count, nil
}
