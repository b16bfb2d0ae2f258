package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/aevon-lab/interval/internal/core/schedule"
)

type CreateScheduleRequest struct {
	Name   string    `json:"name"`
	Anchor time.Time `json:"anchor"`
	Every  string    `json:"every"`
}

func (r *CreateScheduleRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Anchor.IsZero() {
		return fmt.Errorf("anchor is required")
	}
	if strings.TrimSpace(r.Every) == "" {
		return fmt.Errorf("every is required")
	}
	return nil
}

type ScheduleListResponse struct {
	Schedules []*schedule.Schedule `json:"schedules"`
}

type OccurrencesResponse struct {
	Name        string      `json:"name"`
	After       time.Time   `json:"after"`
	Until       time.Time   `json:"until"`
	Occurrences []time.Time `json:"occurrences"`
}
