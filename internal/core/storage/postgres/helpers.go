package postgres

import (
	"database/sql"
	"fmt"

	"github.com/aevon-lab/interval/internal/core/schedule"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanScheduleRow scans one schedules row. The every column decodes through
// interval.Value's sql.Scanner. Works for both sql.Row and sql.Rows.
func scanScheduleRow(row scanner) (*schedule.Schedule, error) {
	var s schedule.Schedule
	var fingerprint sql.NullString

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Anchor,
		&s.Every,
		&fingerprint,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan schedule row: %w", err)
	}
	s.Fingerprint = fingerprint.String

	return &s, nil
}

// nullableFingerprint stores API-created schedules with a NULL fingerprint.
func nullableFingerprint(fp string) sql.NullString {
	return sql.NullString{String: fp, Valid: fp != ""}
}
