package store

import (
	"context"
	"fmt"

	"ipmds/internal/model"
)

// InsertAnalyzeLog 写入一条分析日志
func (s *Store) InsertAnalyzeLog(ctx context.Context, log model.AnalyzeLog) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyze_logs (id, filename, mode, project_id, added, modified, unchanged, rows)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, log.ID, log.Filename, log.Mode, log.ProjectID, log.Added, log.Modified, log.Unchanged, log.Rows)
	if err != nil {
		return fmt.Errorf("failed to insert analyze log: %w", err)
	}
	return nil
}

// RecentAnalyzeLogs 按时间倒序返回最近 limit 条分析日志
func (s *Store) RecentAnalyzeLogs(ctx context.Context, limit int) ([]model.AnalyzeLog, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, mode, project_id, added, modified, unchanged, rows, created_at
		FROM analyze_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyze logs: %w", err)
	}
	defer rows.Close()

	var logs []model.AnalyzeLog
	for rows.Next() {
		var l model.AnalyzeLog
		if err := rows.Scan(&l.ID, &l.Filename, &l.Mode, &l.ProjectID, &l.Added, &l.Modified, &l.Unchanged, &l.Rows, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analyze log: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyze logs: %w", err)
	}

	return logs, nil
}
