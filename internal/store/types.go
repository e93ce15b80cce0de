package store

import "time"

// ReportSummary is one recorded analysis run.
type ReportSummary struct {
	ID                    int64
	CreatedAt             time.Time
	TotalSizeBytes        int64
	TotalCompressedBytes  int64
	ModuleCount           int
	DependencyCount       int
	EstimatedSavingsBytes int64
}
