package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_ArePaired(t *testing.T) {
	entries, err := fs.ReadDir(MigrationFiles, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestSource_ReadsFirstMigration(t *testing.T) {
	d, err := openSource()
	require.NoError(t, err)
	defer d.Close()

	first, err := d.First()
	require.NoError(t, err)
	require.Equal(t, uint(1), first)

	body, ident, err := d.ReadUp(first)
	require.NoError(t, err)
	defer body.Close()
	require.Equal(t, "create_schedules", ident)
}

func TestSchedulesTableDefinesIntervalColumn(t *testing.T) {
	data, err := fs.ReadFile(MigrationFiles, "001_create_schedules.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(data), "every       INTERVAL NOT NULL")
	require.Contains(t, string(data), "name        TEXT NOT NULL UNIQUE")
}
