package postgres

// SQL queries for schedule storage. The every column is a native INTERVAL;
// values are written in canonical text form and read back the same way.

const (
	// queryInsertSchedule returns no rows (sql.ErrNoRows) when the name is taken.
	queryInsertSchedule = `
		INSERT INTO schedules (id, name, anchor, every, fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`

	// queryUpsertSchedule keeps id and created_at of an existing row so that
	// re-seeding definitions on startup does not churn identities.
	queryUpsertSchedule = `
		INSERT INTO schedules (id, name, anchor, every, fingerprint, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE
		SET anchor = EXCLUDED.anchor,
		    every = EXCLUDED.every,
		    fingerprint = EXCLUDED.fingerprint
		RETURNING id, created_at
	`

	queryGetSchedule = `
		SELECT id, name, anchor, every::text, fingerprint, created_at
		FROM schedules
		WHERE name = $1
	`

	queryListSchedules = `
		SELECT id, name, anchor, every::text, fingerprint, created_at
		FROM schedules
		ORDER BY name ASC
	`

	queryDeleteSchedule = `
		DELETE FROM schedules WHERE name = $1
	`

	querySchemaExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'schedules'
		)
	`
)
