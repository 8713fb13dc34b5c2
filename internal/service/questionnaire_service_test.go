package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

func newTestQuestionnaireService(q *model.Questionnaire) (*QuestionnaireService, *mockNotifier) {
	notifier := &mockNotifier{}
	svc := NewQuestionnaireService(&mockQuestionnaireRepo{questionnaire: q}, nil)
	svc.SetNotifier(notifier)
	return svc, notifier
}

func TestCreateRequiresTwoBrands(t *testing.T) {
	svc, _ := newTestQuestionnaireService(nil)

	q := &model.Questionnaire{
		Title:    "Solo",
		Brands:   []model.Brand{{ID: "a", Name: "Only"}},
		Criteria: []model.Criterion{{Key: "flavor", Description: "Taste"}},
	}
	_, err := svc.Create(context.Background(), q, "admin_1")

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "brands")
}

func TestCreateRequiresCriterion(t *testing.T) {
	svc, _ := newTestQuestionnaireService(nil)

	q := &model.Questionnaire{
		Title:  "No criteria",
		Brands: []model.Brand{{ID: "a"}, {ID: "b"}},
	}
	_, err := svc.Create(context.Background(), q, "admin_1")

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "criteria")
}

func TestCreateRejectsDuplicateCriterionKeys(t *testing.T) {
	svc, _ := newTestQuestionnaireService(nil)

	q := &model.Questionnaire{
		Title:  "Dupes",
		Brands: []model.Brand{{ID: "a"}, {ID: "b"}},
		Criteria: []model.Criterion{
			{Key: "flavor", Description: "Taste"},
			{Key: "flavor", Description: "Taste again"},
		},
	}
	_, err := svc.Create(context.Background(), q, "admin_1")

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "criteria")
}

func TestGetClosedDeniedForParticipants(t *testing.T) {
	q := openQuestionnaire()
	q.Status = model.QuestionnaireClosed
	svc, _ := newTestQuestionnaireService(q)

	_, err := svc.Get(context.Background(), "q1", model.RoleParticipant)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Get(context.Background(), "q1", model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "q1", got.ID)
}

func TestUpdateClosedRejected(t *testing.T) {
	q := openQuestionnaire()
	q.Status = model.QuestionnaireClosed
	svc, notifier := newTestQuestionnaireService(q)

	_, err := svc.Update(context.Background(), openQuestionnaire(), "admin_1")

	assert.ErrorIs(t, err, ErrQuestionnaireClosed)
	assert.Empty(t, notifier.events)
}

func TestUpdateFiresQuestionnaireUpdated(t *testing.T) {
	svc, notifier := newTestQuestionnaireService(openQuestionnaire())

	edited := openQuestionnaire()
	edited.Title = "Renamed"
	_, err := svc.Update(context.Background(), edited, "admin_1")

	require.NoError(t, err)
	assert.Equal(t, []string{"q1:" + EventQuestionnaireUpdated}, notifier.events)
}

func TestCloseFiresQuestionnaireUpdated(t *testing.T) {
	svc, notifier := newTestQuestionnaireService(openQuestionnaire())

	q, err := svc.Close(context.Background(), "q1", "admin_1")

	require.NoError(t, err)
	assert.Equal(t, model.QuestionnaireClosed, q.Status)
	assert.Equal(t, []string{"q1:" + EventQuestionnaireUpdated}, notifier.events)
}

func TestCloseMissingQuestionnaire(t *testing.T) {
	svc, _ := newTestQuestionnaireService(nil)

	_, err := svc.Close(context.Background(), "missing", "admin_1")

	assert.ErrorIs(t, err, ErrQuestionnaireNotFound)
}
