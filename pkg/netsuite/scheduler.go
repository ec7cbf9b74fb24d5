package netsuite

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/pkg/models"
)

// Schedule is one tenant-owned scheduled job.
type Schedule struct {
	ID           string         `json:"schedule_id"`
	TenantID     string         `json:"-"`
	Name         string         `json:"name"`
	ScheduleType string         `json:"schedule_type"`
	Cron         string         `json:"cron"`
	Params       map[string]any `json:"params,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	LastRunAt    *time.Time     `json:"last_run_at,omitempty"`
}

// MemoryScheduler is a process-local scheduler used until the external
// scheduling service is wired. Tenant-scoped and thread-safe.
type MemoryScheduler struct {
	mu        sync.RWMutex
	schedules map[string]*Schedule
}

// NewMemoryScheduler creates an empty scheduler.
func NewMemoryScheduler() *MemoryScheduler {
	return &MemoryScheduler{schedules: make(map[string]*Schedule)}
}

// CreateSchedule registers a new job.
func (s *MemoryScheduler) CreateSchedule(_ context.Context, identity models.Identity, name, scheduleType, cron string, params map[string]any) (map[string]any, error) {
	if name == "" || scheduleType == "" || cron == "" {
		return nil, fmt.Errorf("name, schedule_type, and cron are required")
	}
	sched := &Schedule{
		ID:           uuid.New().String(),
		TenantID:     identity.TenantID,
		Name:         name,
		ScheduleType: scheduleType,
		Cron:         cron,
		Params:       params,
		CreatedAt:    time.Now().UTC(),
	}
	s.mu.Lock()
	s.schedules[sched.ID] = sched
	s.mu.Unlock()

	return map[string]any{"schedule_id": sched.ID, "name": name, "cron": cron}, nil
}

// ListSchedules returns the tenant's jobs sorted by name.
func (s *MemoryScheduler) ListSchedules(_ context.Context, identity models.Identity) (map[string]any, error) {
	s.mu.RLock()
	var owned []*Schedule
	for _, sched := range s.schedules {
		if sched.TenantID == identity.TenantID {
			owned = append(owned, sched)
		}
	}
	s.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool { return owned[i].Name < owned[j].Name })
	entries := make([]map[string]any, 0, len(owned))
	for _, sched := range owned {
		entry := map[string]any{
			"schedule_id":   sched.ID,
			"name":          sched.Name,
			"schedule_type": sched.ScheduleType,
			"cron":          sched.Cron,
		}
		if sched.LastRunAt != nil {
			entry["last_run_at"] = sched.LastRunAt.Format(time.RFC3339)
		}
		entries = append(entries, entry)
	}
	return map[string]any{"schedules": entries, "count": len(entries)}, nil
}

// RunSchedule triggers a job immediately. Ownership is checked before the
// schedule ID is even acknowledged to exist.
func (s *MemoryScheduler) RunSchedule(_ context.Context, identity models.Identity, scheduleID string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.schedules[scheduleID]
	if !ok || sched.TenantID != identity.TenantID {
		return nil, fmt.Errorf("unknown schedule %q", scheduleID)
	}
	now := time.Now().UTC()
	sched.LastRunAt = &now
	return map[string]any{
		"schedule_id": sched.ID,
		"status":      "triggered",
		"run_at":      now.Format(time.RFC3339),
	}, nil
}
