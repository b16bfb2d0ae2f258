package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/stretchr/testify/require"
)

func writeDefinition(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadDefinitions(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "invoice.yaml", `
name: "month_end_invoice"
anchor: "2024-01-31T09:00:00Z"
every: "1 month"
`)
	writeDefinition(t, dir, "backup.yml", `
name: "nightly_backup"
anchor: "2024-01-01T02:30:00Z"
every: "1 day"
`)
	writeDefinition(t, dir, "empty.yaml", "# nothing here\n")
	writeDefinition(t, dir, "notes.txt", "name: ignored\n")

	defs, err := LoadDefinitions(dir)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	require.Equal(t, "month_end_invoice", defs[0].Name)
	require.Equal(t, interval.New(1, 0, 0), defs[0].Every)
	require.Equal(t, time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC), defs[0].Anchor.UTC())
	require.Len(t, defs[0].Fingerprint, 64)

	require.Equal(t, "nightly_backup", defs[1].Name)
	require.Equal(t, interval.New(0, 1, 0), defs[1].Every)
}

func TestLoadDefinitions_MissingDirIsEmpty(t *testing.T) {
	defs, err := LoadDefinitions(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.Empty(t, defs)
}

func TestLoadDefinitions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name: "bad interval",
			files: map[string]string{"a.yaml": `
name: "a"
anchor: "2024-01-01T00:00:00Z"
every: "5 fortnights"
`},
			wantErr: "invalid input syntax for type interval",
		},
		{
			name: "bad anchor",
			files: map[string]string{"a.yaml": `
name: "a"
anchor: "yesterday"
every: "1 day"
`},
			wantErr: "invalid anchor",
		},
		{
			name: "missing every",
			files: map[string]string{"a.yaml": `
name: "a"
anchor: "2024-01-01T00:00:00Z"
`},
			wantErr: "does not move",
		},
		{
			name: "duplicate names",
			files: map[string]string{
				"a.yaml": "name: \"dup\"\nanchor: \"2024-01-01T00:00:00Z\"\nevery: \"1 day\"\n",
				"b.yaml": "name: \"dup\"\nanchor: \"2024-01-01T00:00:00Z\"\nevery: \"2 days\"\n",
			},
			wantErr: "duplicate name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, body := range tc.files {
				writeDefinition(t, dir, name, body)
			}
			_, err := LoadDefinitions(dir)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoadDefinitions_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.yaml")
	writeDefinition(t, dir, "file.yaml", "name: x\n")

	_, err := LoadDefinitions(path)
	require.ErrorContains(t, err, "is not a directory")
}
