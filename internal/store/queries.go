package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/blackwell-systems/bundlescope/internal/analyzer"
)

// Report operations

// InsertReport records a completed analysis report and its recommendations.
// Returns the new report's row ID.
func (s *Store) InsertReport(report *analyzer.Report) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO reports
		(created_at, total_size_bytes, total_compressed_bytes, module_count, dependency_count, estimated_savings_bytes)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		report.CreatedAt.Format(time.RFC3339),
		report.TotalSizeBytes,
		report.TotalCompressedBytes,
		len(report.Modules),
		len(report.Dependencies),
		report.EstimatedSavings(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	reportID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report id: %w", err)
	}

	for i, rec := range report.Recommendations {
		stepsJSON, err := json.Marshal(rec.Steps)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal steps: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO report_recommendations
			(report_id, kind, description, estimated_savings_bytes, difficulty, priority, position, steps)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`,
			reportID,
			rec.Kind,
			rec.Description,
			rec.EstimatedSavings,
			rec.Difficulty,
			rec.Priority,
			i,
			string(stepsJSON),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert recommendation for report %d: %w", reportID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit report: %w", err)
	}

	return reportID, nil
}

// ListReports returns recorded reports, newest first. A limit of 0 returns
// all reports.
func (s *Store) ListReports(limit int) ([]*ReportSummary, error) {
	query := `
		SELECT id, created_at, total_size_bytes, total_compressed_bytes, module_count, dependency_count, estimated_savings_bytes
		FROM reports
		ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*ReportSummary
	for rows.Next() {
		var r ReportSummary
		var createdAt string

		if err := rows.Scan(
			&r.ID,
			&createdAt,
			&r.TotalSizeBytes,
			&r.TotalCompressedBytes,
			&r.ModuleCount,
			&r.DependencyCount,
			&r.EstimatedSavingsBytes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}

		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for report %d: %w", r.ID, err)
		}

		reports = append(reports, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}

	return reports, nil
}

// GetRecommendations returns the recommendations recorded for a report, in
// their original ranked order.
func (s *Store) GetRecommendations(reportID int64) ([]analyzer.Recommendation, error) {
	rows, err := s.db.Query(`
		SELECT kind, description, estimated_savings_bytes, difficulty, priority, steps
		FROM report_recommendations
		WHERE report_id = ?
		ORDER BY position
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recommendations for report %d: %w", reportID, err)
	}
	defer rows.Close()

	var recs []analyzer.Recommendation
	for rows.Next() {
		var rec analyzer.Recommendation
		var stepsJSON string

		if err := rows.Scan(
			&rec.Kind,
			&rec.Description,
			&rec.EstimatedSavings,
			&rec.Difficulty,
			&rec.Priority,
			&stepsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation row: %w", err)
		}

		if err := json.Unmarshal([]byte(stepsJSON), &rec.Steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal steps for report %d: %w", reportID, err)
		}

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recommendation rows: %w", err)
	}

	return recs, nil
}
