package readingplans

import (
	"context"

	"github.com/lecternapp/lectern/pkg/errcodes"
	"github.com/lecternapp/lectern/pkg/models"
	"github.com/lecternapp/lectern/pkg/store"
)

// Service tracks reading-plan progress. Progress only moves forward:
// completed days accumulate and the current day never decreases, so marking
// an old day done again can't rewind the reader.
type Service struct {
	store *store.Service
}

func NewService(storeService *store.Service) *Service {
	return &Service{storeService}
}

// StartPlan creates progress state for a plan. Starting an already-started
// plan returns the existing state untouched.
func (svc *Service) StartPlan(ctx context.Context, planID string) (*models.ReadingPlan, error) {
	existing, err := svc.store.RetrieveReadingPlan(ctx, planID)
	if err == nil {
		return existing, nil
	}
	if !errcodes.IsNotFound(err) {
		return nil, err
	}

	plan := &models.ReadingPlan{
		PlanID:              planID,
		CompletedDaysParsed: []int{},
		CurrentDay:          1,
	}
	if err := svc.store.PutReadingPlan(ctx, plan); err != nil {
		return nil, err
	}

	return svc.store.RetrieveReadingPlan(ctx, planID)
}

func (svc *Service) RetrievePlan(ctx context.Context, planID string) (*models.ReadingPlan, error) {
	return svc.store.RetrieveReadingPlan(ctx, planID)
}

func (svc *Service) ListPlans(ctx context.Context) ([]*models.ReadingPlan, error) {
	return svc.store.ListReadingPlans(ctx)
}

// CompleteDay marks one day of a plan as read. Completing a day twice is a
// no-op for the completed set, and the current day only ever advances.
func (svc *Service) CompleteDay(ctx context.Context, planID string, day int) (*models.ReadingPlan, error) {
	plan, err := svc.store.RetrieveReadingPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if !plan.HasCompletedDay(day) {
		plan.CompletedDaysParsed = append(plan.CompletedDaysParsed, day)
	}
	if day+1 > plan.CurrentDay {
		plan.CurrentDay = day + 1
	}

	if err := svc.store.PutReadingPlan(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// UpdateNotifications sets the plan's reminder settings.
func (svc *Service) UpdateNotifications(ctx context.Context, planID string, enabled bool, notificationTime *string) (*models.ReadingPlan, error) {
	plan, err := svc.store.RetrieveReadingPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	plan.NotificationsEnabled = enabled
	plan.NotificationTime = notificationTime

	if err := svc.store.PutReadingPlan(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (svc *Service) DeletePlan(ctx context.Context, planID string) error {
	return svc.store.DeleteReadingPlan(ctx, planID)
}
