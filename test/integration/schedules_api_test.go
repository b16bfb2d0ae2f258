//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	httperr "github.com/aevon-lab/interval/internal/core/errors"
	"github.com/aevon-lab/interval/internal/core/schedule"
	"github.com/stretchr/testify/require"
)

func TestSchedulesAPI_Lifecycle(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	anchor := time.Date(2024, time.January, 31, 18, 0, 0, 0, time.UTC)

	t.Run("seeded definitions are listed", func(t *testing.T) {
		status, body := get(t, h.client, h.baseURL+"/v1/schedules")
		require.Equal(t, http.StatusOK, status, string(body))

		var resp v1.ScheduleListResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		names := make([]string, 0, len(resp.Schedules))
		for _, s := range resp.Schedules {
			names = append(names, s.Name)
			require.NotEmpty(t, s.Fingerprint)
		}
		require.Equal(t, []string{"month_end_invoice", "nightly_backup", "quarterly_review"}, names)
	})

	t.Run("create", func(t *testing.T) {
		req := v1.CreateScheduleRequest{Name: "payroll", Anchor: anchor, Every: "1 mon"}
		status, body := postJSON(t, h.client, h.baseURL+"/v1/schedules", req)
		require.Equal(t, http.StatusCreated, status, string(body))

		var created schedule.Schedule
		require.NoError(t, json.Unmarshal(body, &created))
		require.NotEmpty(t, created.ID)
		require.Equal(t, "payroll", created.Name)
		require.Equal(t, "1 mon", created.Every.String())
		require.Empty(t, created.Fingerprint)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		req := v1.CreateScheduleRequest{Name: "payroll", Anchor: anchor, Every: "2 weeks"}
		status, body := postJSON(t, h.client, h.baseURL+"/v1/schedules", req)
		require.Equal(t, http.StatusConflict, status, string(body))
	})

	t.Run("invalid every is rejected", func(t *testing.T) {
		req := v1.CreateScheduleRequest{Name: "broken", Anchor: anchor, Every: "00:00:00"}
		status, body := postJSON(t, h.client, h.baseURL+"/v1/schedules", req)
		require.Equal(t, http.StatusBadRequest, status, string(body))

		var resp httperr.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Equal(t, httperr.HttpInvalidScheduleError, resp.ErrorType)
	})

	t.Run("occurrences stay on month end", func(t *testing.T) {
		query := url.Values{}
		query.Set("after", "2024-01-31T18:00:00Z")
		query.Set("limit", "3")

		status, body := get(t, h.client, h.baseURL+"/v1/schedules/payroll/occurrences?"+query.Encode())
		require.Equal(t, http.StatusOK, status, string(body))

		var resp v1.OccurrencesResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Equal(t, "payroll", resp.Name)
		require.Len(t, resp.Occurrences, 3)
		want := []time.Time{
			time.Date(2024, time.February, 29, 18, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 31, 18, 0, 0, 0, time.UTC),
			time.Date(2024, time.April, 30, 18, 0, 0, 0, time.UTC),
		}
		for i, w := range want {
			require.True(t, resp.Occurrences[i].Equal(w), "occurrence %d = %s", i, resp.Occurrences[i])
		}
	})

	t.Run("limit above maximum is rejected", func(t *testing.T) {
		status, body := get(t, h.client, h.baseURL+"/v1/schedules/payroll/occurrences?limit=1000")
		require.Equal(t, http.StatusBadRequest, status, string(body))
	})

	t.Run("delete", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, h.baseURL+"/v1/schedules/payroll", nil)
		require.NoError(t, err)
		status, body := do(t, h.client, req)
		require.Equal(t, http.StatusNoContent, status, string(body))

		status, body = get(t, h.client, h.baseURL+"/v1/schedules/payroll")
		require.Equal(t, http.StatusNotFound, status, string(body))

		var resp httperr.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Equal(t, httperr.HttpScheduleNotFoundError, resp.ErrorType)
	})
}
