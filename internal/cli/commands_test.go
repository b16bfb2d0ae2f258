package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"parse canonicalises", []string{"parse", "14 months 3 days 90"}, "1 year 2 mons 3 days 00:01:30"},
		{"parse fused", []string{"parse", "2months"}, "2 mons"},
		{"combine", []string{"combine", "1 day", "2 hours", "30 minutes"}, "1 day 02:30:00"},
		{"scale", []string{"scale", "1 day 10:00:00", "0.5"}, "05:00:00"},
		{"apply", []string{"apply", "1 month", "2024-01-31T10:00:00Z"}, "2024-02-29T10:00:00Z"},
		{"between", []string{"between", "2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z"}, "-1 days"},
		{"terse", []string{"terse", "02:00:05"}, "02hrs 05s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := run(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, strings.TrimSpace(stdout))
		})
	}
}

func TestCommands_JSON(t *testing.T) {
	stdout, _, err := run("--format", "json", "parse", "1 year 2 mons")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Interval string `json:"interval"`
			Months   int64  `json:"months"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1 year 2 mons", resp.Data.Interval)
	assert.Equal(t, int64(14), resp.Data.Months)
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"bad interval", []string{"parse", "soon"}, ExitFailure, ErrCodeParse},
		{"terse of days", []string{"terse", "1 day"}, ExitFailure, ErrCodeUnsupported},
		{"bad factor", []string{"scale", "1 day", "half"}, ExitCommandError, ErrCodeArgument},
		{"bad time", []string{"apply", "1 day", "tomorrow"}, ExitCommandError, ErrCodeArgument},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := run(tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, GetExitCode(err))
			assert.Contains(t, stderr, "Error ["+tc.wantErr+"]")
		})
	}
}

func TestCommands_JSONError(t *testing.T) {
	stdout, _, err := run("--format", "json", "parse", "1  day")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeParse, resp.Error.Code)
	assert.Equal(t, `invalid input syntax for type interval: "1  day"`, resp.Error.Message)
}

func TestCommands_UsageErrors(t *testing.T) {
	_, _, err := run("combine", "1 day")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = run("--format", "yaml", "parse", "1 day")
	require.ErrorContains(t, err, "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
