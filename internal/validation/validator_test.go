package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

func testQuestionnaire() *model.Questionnaire {
	return &model.Questionnaire{
		ID:    "q1",
		Title: "Croissant Tasting",
		Brands: []model.Brand{
			{ID: "brandA", Name: "Boulangerie A"},
			{ID: "brandB", Name: "Boulangerie B"},
		},
		Criteria: []model.Criterion{
			{Key: "appearance", Description: "Visual appeal"},
			{Key: "flavor", Description: "Taste"},
		},
		Status: model.QuestionnaireOpen,
	}
}

func fullAnswers() []model.Answer {
	return []model.Answer{
		{BrandID: "brandA", Criterion: "appearance", Rating: 4},
		{BrandID: "brandA", Criterion: "flavor", Rating: 5},
		{BrandID: "brandB", Criterion: "appearance", Rating: 3},
		{BrandID: "brandB", Criterion: "flavor", Rating: 4},
	}
}

func TestValidateSubmittedValid(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers:     fullAnswers(),
		Comparative: model.ComparativeEvaluation{PreferredBrandID: "brandA"},
	}

	result := Validate(q, payload, model.ResponseSubmitted)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateEmptyAnswers(t *testing.T) {
	q := testQuestionnaire()

	for _, target := range []model.ResponseStatus{model.ResponseDraft, model.ResponseSubmitted} {
		payload := model.ResponsePayload{
			Comparative: model.ComparativeEvaluation{PreferredBrandID: "brandA"},
		}
		result := Validate(q, payload, target)

		assert.False(t, result.Valid, "target %s", target)
		assert.Contains(t, result.Errors, "answers", "target %s", target)
	}
}

func TestValidateDraftSkipsRatingRange(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers: []model.Answer{
			{BrandID: "brandA", Criterion: "appearance", Rating: 0},
			{BrandID: "brandA", Criterion: "flavor"},
		},
	}

	result := Validate(q, payload, model.ResponseDraft)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateSubmittedRatingRange(t *testing.T) {
	q := testQuestionnaire()

	cases := []struct {
		name   string
		rating int
	}{
		{"zero", 0},
		{"negative", -1},
		{"too high", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := model.ResponsePayload{
				Answers: []model.Answer{
					{BrandID: "brandA", Criterion: "appearance", Rating: tc.rating},
				},
				Comparative: model.ComparativeEvaluation{PreferredBrandID: "brandA"},
			}
			result := Validate(q, payload, model.ResponseSubmitted)

			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors, "answers")
		})
	}
}

func TestValidateUnknownCriterionEnumerated(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers: []model.Answer{
			{BrandID: "brandA", Criterion: "aroma", Rating: 3},
			{BrandID: "brandA", Criterion: "crunch", Rating: 2},
		},
	}

	// Structural checks apply to drafts too.
	result := Validate(q, payload, model.ResponseDraft)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["answers"], "aroma")
	assert.Contains(t, result.Errors["answers"], "crunch")
}

func TestValidateUnknownBrand(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers: []model.Answer{
			{BrandID: "brandX", Criterion: "flavor", Rating: 3},
		},
	}

	result := Validate(q, payload, model.ResponseDraft)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors["answers"], "brandX")
}

func TestValidateMissingPreferredBrand(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{Answers: fullAnswers()}

	result := Validate(q, payload, model.ResponseSubmitted)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "preferredBrand")
}

func TestValidateUndeclaredPreferredBrand(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers:     fullAnswers(),
		Comparative: model.ComparativeEvaluation{PreferredBrandID: "brandX"},
	}

	result := Validate(q, payload, model.ResponseSubmitted)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "preferredBrand")
}

func TestValidateDraftSkipsPreferredBrand(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers: []model.Answer{
			{BrandID: "brandA", Criterion: "appearance", Rating: 4},
		},
	}

	result := Validate(q, payload, model.ResponseDraft)

	assert.True(t, result.Valid)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers: []model.Answer{
			{BrandID: "brandX", Criterion: "aroma", Rating: 9},
		},
	}

	result := Validate(q, payload, model.ResponseSubmitted)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "answers")
	assert.Contains(t, result.Errors, "preferredBrand")
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	q := testQuestionnaire()
	payload := model.ResponsePayload{
		Answers:     fullAnswers(),
		Comparative: model.ComparativeEvaluation{PreferredBrandID: "brandA"},
	}

	Validate(q, payload, model.ResponseSubmitted)

	assert.Equal(t, fullAnswers(), payload.Answers)
	assert.Equal(t, testQuestionnaire(), q)
}

// A brand stored without an id (legacy documents predating id backfill
// on edits) must not make empty brand references validate.
func TestValidateEmptyBrandIDRejected(t *testing.T) {
	q := testQuestionnaire()
	q.Brands = append(q.Brands, model.Brand{Name: "Boulangerie Sans ID"})

	payload := model.ResponsePayload{
		Answers: []model.Answer{
			{BrandID: "", Criterion: "flavor", Rating: 4},
		},
		Comparative: model.ComparativeEvaluation{PreferredBrandID: "brandA"},
	}

	result := Validate(q, payload, model.ResponseSubmitted)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "answers")
}
