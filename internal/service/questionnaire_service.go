package service

import (
	"context"
	"fmt"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
)

// QuestionnaireService handles questionnaire CRUD and the open -> closed
// transition. Edits and close both push a questionnaire-updated event.
type QuestionnaireService struct {
	questionnaireRepo repository.QuestionnaireRepo
	activitySvc       *ActivityService
	notifier          Notifier
}

// NewQuestionnaireService creates a new questionnaire service
func NewQuestionnaireService(questionnaireRepo repository.QuestionnaireRepo, activitySvc *ActivityService) *QuestionnaireService {
	return &QuestionnaireService{
		questionnaireRepo: questionnaireRepo,
		activitySvc:       activitySvc,
	}
}

// SetNotifier sets the notifier for real-time events
func (s *QuestionnaireService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Create creates a new open questionnaire
func (s *QuestionnaireService) Create(ctx context.Context, q *model.Questionnaire, creatorID string) (string, error) {
	if len(q.Brands) < 2 {
		return "", &ValidationError{Fields: map[string]string{"brands": "at least two brands are required"}}
	}
	if len(q.Criteria) < 1 {
		return "", &ValidationError{Fields: map[string]string{"criteria": "at least one criterion is required"}}
	}
	if err := checkCriteriaUnique(q.Criteria); err != nil {
		return "", err
	}

	q.CreatedBy = creatorID
	id, err := s.questionnaireRepo.Create(ctx, q)
	if err != nil {
		return "", fmt.Errorf("create questionnaire: %w", err)
	}

	if s.activitySvc != nil {
		s.activitySvc.Log(ctx, creatorID, model.ActionCreateQuestionnaire, model.EntityQuestionnaire, id, nil)
	}
	return id, nil
}

// Get returns a questionnaire. Participants may only see open ones.
func (s *QuestionnaireService) Get(ctx context.Context, id string, role model.Role) (*model.Questionnaire, error) {
	q, err := s.questionnaireRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	if q == nil {
		return nil, ErrQuestionnaireNotFound
	}
	if role != model.RoleAdmin && !q.IsOpen() {
		return nil, ErrForbidden
	}
	return q, nil
}

// List returns all questionnaires for admins, open ones for everyone else
func (s *QuestionnaireService) List(ctx context.Context, role model.Role) ([]*model.Questionnaire, error) {
	return s.questionnaireRepo.List(ctx, role != model.RoleAdmin)
}

// Update edits an open questionnaire in place. Brands and criteria that
// existing responses reference should stay put; this service does not
// police that, matching the original behavior.
func (s *QuestionnaireService) Update(ctx context.Context, q *model.Questionnaire, editorID string) (*model.Questionnaire, error) {
	current, err := s.questionnaireRepo.GetByID(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	if current == nil {
		return nil, ErrQuestionnaireNotFound
	}
	if !current.IsOpen() {
		return nil, ErrQuestionnaireClosed
	}
	if err := checkCriteriaUnique(q.Criteria); err != nil {
		return nil, err
	}

	if err := s.questionnaireRepo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("update questionnaire: %w", err)
	}

	if s.notifier != nil {
		s.notifier.Publish(q.ID, EventQuestionnaireUpdated)
	}
	if s.activitySvc != nil {
		s.activitySvc.Log(ctx, editorID, model.ActionUpdateQuestionnaire, model.EntityQuestionnaire, q.ID, nil)
	}
	return q, nil
}

// Close transitions the questionnaire to closed. One-way and
// idempotent; in-flight saves racing this close are rejected by the
// status re-check inside ResponseService.Save.
func (s *QuestionnaireService) Close(ctx context.Context, id, adminID string) (*model.Questionnaire, error) {
	q, err := s.questionnaireRepo.Close(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("close questionnaire: %w", err)
	}
	if q == nil {
		return nil, ErrQuestionnaireNotFound
	}

	if s.notifier != nil {
		s.notifier.Publish(id, EventQuestionnaireUpdated)
	}
	if s.activitySvc != nil {
		s.activitySvc.Log(ctx, adminID, model.ActionCloseQuestionnaire, model.EntityQuestionnaire, id, nil)
	}
	return q, nil
}

func checkCriteriaUnique(criteria []model.Criterion) error {
	seen := make(map[string]bool, len(criteria))
	for _, c := range criteria {
		if seen[c.Key] {
			return &ValidationError{Fields: map[string]string{"criteria": "duplicate criterion key: " + c.Key}}
		}
		seen[c.Key] = true
	}
	return nil
}
