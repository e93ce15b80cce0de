package store

const schema = `
CREATE TABLE IF NOT EXISTS reports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP NOT NULL,
    total_size_bytes INTEGER NOT NULL,
    total_compressed_bytes INTEGER NOT NULL,
    module_count INTEGER NOT NULL,
    dependency_count INTEGER NOT NULL,
    estimated_savings_bytes INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS report_recommendations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    report_id INTEGER NOT NULL,
    kind TEXT NOT NULL,
    description TEXT NOT NULL,
    estimated_savings_bytes INTEGER NOT NULL,
    difficulty TEXT NOT NULL,
    priority TEXT NOT NULL,
    position INTEGER NOT NULL,
    steps TEXT,
    FOREIGN KEY (report_id) REFERENCES reports(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_recs_report ON report_recommendations(report_id);
CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at);
`
