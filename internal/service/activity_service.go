package service

import (
	"context"
	"log"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
)

// ActivityService records audited user actions. Logging is best-effort:
// a failed write is reported but never fails the triggering operation.
type ActivityService struct {
	activityRepo repository.ActivityLogRepo
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityLogRepo) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// Log records one action
func (s *ActivityService) Log(ctx context.Context, userID string, action model.ActivityAction, entityType model.EntityType, entityID string, details map[string]string) {
	entry := &model.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := s.activityRepo.Insert(ctx, entry); err != nil {
		log.Printf("activity log write failed: %v", err)
	}
}

// List returns paged activity logs matching the filter (admin view)
func (s *ActivityService) List(ctx context.Context, filter repository.ActivityFilter) ([]*model.ActivityLog, int64, error) {
	return s.activityRepo.List(ctx, filter)
}

// ListForUser returns the user's own activity, newest first
func (s *ActivityService) ListForUser(ctx context.Context, userID string, page, limit int64) ([]*model.ActivityLog, int64, error) {
	return s.activityRepo.List(ctx, repository.ActivityFilter{
		UserID: userID,
		Page:   page,
		Limit:  limit,
	})
}
