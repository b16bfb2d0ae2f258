package storage

import (
	"context"
	"errors"

	"github.com/aevon-lab/interval/internal/core/schedule"
)

var (
	// ErrDuplicate is returned when a schedule with the same name already exists.
	ErrDuplicate = errors.New("schedule already exists")
	// ErrNotFound is returned when no schedule has the requested name.
	ErrNotFound = errors.New("schedule not found")
)

// ScheduleStore persists named schedules.
type ScheduleStore interface {
	// SaveSchedule inserts a new schedule and fills in ID and CreatedAt.
	// Returns ErrDuplicate if the name is taken.
	SaveSchedule(ctx context.Context, s *schedule.Schedule) error

	// UpsertSchedule inserts or replaces the schedule with the same name.
	// Used to seed schedules from definition files at startup.
	UpsertSchedule(ctx context.Context, s *schedule.Schedule) error

	GetSchedule(ctx context.Context, name string) (*schedule.Schedule, error)

	// ListSchedules returns all schedules ordered by name.
	ListSchedules(ctx context.Context) ([]*schedule.Schedule, error)

	// DeleteSchedule removes a schedule. Returns ErrNotFound if absent.
	DeleteSchedule(ctx context.Context, name string) error
}
