package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/interval/internal/api/v1"
	"github.com/aevon-lab/interval/internal/core/interval"
	"github.com/aevon-lab/interval/internal/core/schedule"
	"github.com/aevon-lab/interval/internal/core/storage"
	"github.com/aevon-lab/interval/internal/metrics"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

const (
	defaultLimit  = 10
	opOccurrences = "occurrences"
)

// ErrInvalidQuery is returned for occurrence queries that cannot be served.
var ErrInvalidQuery = errors.New("invalid occurrence query")

// Service manages named schedules and expands their occurrences.
type Service struct {
	store          storage.ScheduleStore
	maxOccurrences int
	horizon        interval.Value
	metrics        *metrics.Recorder
	now            func() time.Time

	// Dedupe concurrent store lookups for the same schedule on the
	// occurrences path.
	lookups singleflight.Group
}

// NewService builds the schedule service. Occurrence queries return at most
// maxOccurrences entries and never reach past horizon added to their
// starting point.
func NewService(store storage.ScheduleStore, maxOccurrences int, horizon interval.Value, rec *metrics.Recorder) *Service {
	if store == nil {
		panic("scheduling: store must not be nil")
	}
	if maxOccurrences <= 0 {
		maxOccurrences = 500
	}
	return &Service{
		store:          store,
		maxOccurrences: maxOccurrences,
		horizon:        horizon,
		metrics:        rec,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// RegisterRoutes registers the schedule routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/v1/schedules")
	g.POST("", s.HandleCreate)
	g.GET("", s.HandleList)
	g.GET("/:name", s.HandleGet)
	g.DELETE("/:name", s.HandleDelete)
	g.GET("/:name/occurrences", s.HandleOccurrences)
}

// Seed upserts schedules loaded from definition files. Existing schedules
// keep their identity; anchor and interval are replaced.
func (s *Service) Seed(ctx context.Context, defs []schedule.Schedule) error {
	for i := range defs {
		def := defs[i]
		if err := s.store.UpsertSchedule(ctx, &def); err != nil {
			return fmt.Errorf("seeding schedule %q: %w", def.Name, err)
		}
		slog.Info("Seeded schedule", "name", def.Name, "every", def.Every.String(), "fingerprint", def.Fingerprint)
	}
	return nil
}

// Create validates and stores a new schedule.
func (s *Service) Create(ctx context.Context, req v1.CreateScheduleRequest) (*schedule.Schedule, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrInvalid, err)
	}

	every, err := interval.Parse(req.Every)
	s.metrics.Observe("parse", err)
	if err != nil {
		return nil, err
	}

	sch := &schedule.Schedule{
		Name:   req.Name,
		Anchor: req.Anchor,
		Every:  every,
	}
	if err := sch.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.SaveSchedule(ctx, sch); err != nil {
		return nil, err
	}

	slog.Info("Created schedule", "name", sch.Name, "id", sch.ID, "every", sch.Every.String())
	return sch, nil
}

func (s *Service) Get(ctx context.Context, name string) (*schedule.Schedule, error) {
	return s.store.GetSchedule(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*schedule.Schedule, error) {
	return s.store.ListSchedules(ctx)
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.store.DeleteSchedule(ctx, name); err != nil {
		return err
	}
	slog.Info("Deleted schedule", "name", name)
	return nil
}

// Occurrences returns up to limit occurrences of the named schedule
// strictly after the given time. A zero after means now; limit <= 0 means
// the default of 10.
func (s *Service) Occurrences(ctx context.Context, name string, after time.Time, limit int) (v1.OccurrencesResponse, error) {
	resp, err := s.occurrences(ctx, name, after, limit)
	s.metrics.Observe(opOccurrences, err)
	return resp, err
}

func (s *Service) occurrences(ctx context.Context, name string, after time.Time, limit int) (v1.OccurrencesResponse, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > s.maxOccurrences {
		return v1.OccurrencesResponse{}, fmt.Errorf("%w: limit %d exceeds maximum of %d", ErrInvalidQuery, limit, s.maxOccurrences)
	}
	if after.IsZero() {
		after = s.now()
	}

	result, err, _ := s.lookups.Do(name, func() (interface{}, error) {
		return s.store.GetSchedule(ctx, name)
	})
	if err != nil {
		return v1.OccurrencesResponse{}, err
	}
	sch := result.(*schedule.Schedule)

	until := s.horizon.AddTo(after)
	return v1.OccurrencesResponse{
		Name:        sch.Name,
		After:       after,
		Until:       until,
		Occurrences: sch.Occurrences(after, until, limit),
	}, nil
}
