package service

import (
	"context"
	"fmt"
	"log"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/cache"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/repository"
	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/validation"
)

// ResponseService orchestrates the lifecycle of a participant's
// response: draft saves, submission, and in-place edits.
type ResponseService struct {
	responseRepo      repository.ResponseRepo
	questionnaireRepo repository.QuestionnaireRepo
	statsCache        cache.StatisticsCache
	activitySvc       *ActivityService
	notifier          Notifier
}

// NewResponseService creates a new response service
func NewResponseService(
	responseRepo repository.ResponseRepo,
	questionnaireRepo repository.QuestionnaireRepo,
	statsCache cache.StatisticsCache,
	activitySvc *ActivityService,
) *ResponseService {
	return &ResponseService{
		responseRepo:      responseRepo,
		questionnaireRepo: questionnaireRepo,
		statsCache:        statsCache,
		activitySvc:       activitySvc,
	}
}

// SetNotifier sets the notifier for real-time events
func (s *ResponseService) SetNotifier(n Notifier) {
	s.notifier = n
}

// LoadForEdit fetches the participant's existing response for the
// questionnaire. Returns nil when none exists; the caller treats that
// as an empty draft.
func (s *ResponseService) LoadForEdit(ctx context.Context, questionnaireID, participantID string) (*model.Response, error) {
	resp, err := s.responseRepo.GetByParticipant(ctx, questionnaireID, participantID)
	if err != nil {
		return nil, fmt.Errorf("load response: %w", err)
	}
	return resp, nil
}

// Save validates and persists a draft or submitted response. The
// questionnaire's status is read here, at save time, so a close that
// lands between page load and save rejects the write. A response that
// is already submitted never reverts to draft, and answers merge by
// (brandId, criterion) so a partial save cannot drop pairs saved
// earlier. Fires a response-submitted event only on the transition into
// submitted.
func (s *ResponseService) Save(ctx context.Context, questionnaireID, participantID string, payload model.ResponsePayload, asDraft bool) (*model.Response, error) {
	questionnaire, err := s.questionnaireRepo.GetByID(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	if questionnaire == nil {
		return nil, ErrQuestionnaireNotFound
	}
	if !questionnaire.IsOpen() {
		return nil, ErrQuestionnaireClosed
	}

	target := model.ResponseSubmitted
	if asDraft {
		target = model.ResponseDraft
	}

	result := validation.Validate(questionnaire, payload, target)
	if !result.Valid {
		return nil, &ValidationError{Fields: result.Errors}
	}

	existing, err := s.responseRepo.GetByParticipant(ctx, questionnaireID, participantID)
	if err != nil {
		return nil, fmt.Errorf("load response: %w", err)
	}

	resp := &model.Response{
		QuestionnaireID: questionnaireID,
		ParticipantID:   participantID,
		Status:          target,
		Answers:         payload.Answers,
		Comparative:     payload.Comparative,
	}

	wasSubmitted := false
	if existing != nil {
		wasSubmitted = existing.Status == model.ResponseSubmitted
		resp.Answers = model.MergeAnswers(existing.Answers, payload.Answers)
		if payload.Comparative.PreferredBrandID == "" {
			resp.Comparative.PreferredBrandID = existing.Comparative.PreferredBrandID
		}
		if payload.Comparative.Comments == "" {
			resp.Comparative.Comments = existing.Comparative.Comments
		}
		// Status is monotonic: a submitted response stays submitted
		// even when the caller asks for a draft save.
		if wasSubmitted {
			resp.Status = model.ResponseSubmitted
		}
	}

	saved, err := s.responseRepo.Upsert(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("save response: %w", err)
	}

	if err := s.statsCache.Invalidate(ctx, questionnaireID); err != nil {
		// Stale cache self-heals on TTL expiry.
		log.Printf("invalidate statistics cache for %s: %v", questionnaireID, err)
	}

	submittedNow := saved.Status == model.ResponseSubmitted && !wasSubmitted
	if submittedNow && s.notifier != nil {
		s.notifier.Publish(questionnaireID, EventResponseSubmitted)
	}

	if s.activitySvc != nil {
		action := model.ActionUpdateResponse
		if submittedNow {
			action = model.ActionSubmitResponse
		}
		s.activitySvc.Log(ctx, participantID, action, model.EntityResponse, saved.ID, map[string]string{
			"questionnaireId": questionnaireID,
			"status":          string(saved.Status),
		})
	}

	return saved, nil
}

// Create handles a first-time save. Unlike Save, it refuses to collide
// with an already submitted response: submitting "fresh" when one
// exists is a duplicate, while editing through Save remains allowed.
func (s *ResponseService) Create(ctx context.Context, questionnaireID, participantID string, payload model.ResponsePayload, asDraft bool) (*model.Response, error) {
	existing, err := s.responseRepo.GetByParticipant(ctx, questionnaireID, participantID)
	if err != nil {
		return nil, fmt.Errorf("load response: %w", err)
	}
	if existing != nil && existing.Status == model.ResponseSubmitted {
		return nil, ErrDuplicateSubmission
	}
	return s.Save(ctx, questionnaireID, participantID, payload, asDraft)
}

// GetSubmitted returns the full submitted-response set for a
// questionnaire (admin view). The read is a snapshot: a response still
// mid-save may be missing, which is acceptable for statistics.
func (s *ResponseService) GetSubmitted(ctx context.Context, questionnaireID string) ([]*model.Response, error) {
	questionnaire, err := s.questionnaireRepo.GetByID(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	if questionnaire == nil {
		return nil, ErrQuestionnaireNotFound
	}
	return s.responseRepo.GetSubmitted(ctx, questionnaireID)
}

// GetMine returns all of a participant's responses across
// questionnaires, newest first.
func (s *ResponseService) GetMine(ctx context.Context, participantID string) ([]*model.Response, error) {
	return s.responseRepo.GetByUser(ctx, participantID)
}
