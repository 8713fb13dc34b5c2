package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeAnswersOverwritesSamePair(t *testing.T) {
	existing := []Answer{
		{BrandID: "a", Criterion: "flavor", Rating: 3},
		{BrandID: "b", Criterion: "flavor", Rating: 4},
	}
	incoming := []Answer{
		{BrandID: "a", Criterion: "flavor", Rating: 5, Comment: "improved"},
	}

	merged := MergeAnswers(existing, incoming)

	assert.Len(t, merged, 2)
	assert.Equal(t, 5, merged[0].Rating)
	assert.Equal(t, "improved", merged[0].Comment)
	assert.Equal(t, 4, merged[1].Rating)
}

func TestMergeAnswersAppendsNewPairs(t *testing.T) {
	existing := []Answer{
		{BrandID: "a", Criterion: "flavor", Rating: 3},
	}
	incoming := []Answer{
		{BrandID: "a", Criterion: "appearance", Rating: 4},
		{BrandID: "b", Criterion: "flavor", Rating: 2},
	}

	merged := MergeAnswers(existing, incoming)

	assert.Len(t, merged, 3)
}

func TestMergeAnswersLeavesInputsAlone(t *testing.T) {
	existing := []Answer{
		{BrandID: "a", Criterion: "flavor", Rating: 3},
	}
	incoming := []Answer{
		{BrandID: "a", Criterion: "flavor", Rating: 1},
	}

	_ = MergeAnswers(existing, incoming)

	assert.Equal(t, 3, existing[0].Rating)
}

func TestMergeAnswersEmptyExisting(t *testing.T) {
	incoming := []Answer{
		{BrandID: "a", Criterion: "flavor", Rating: 3},
	}

	merged := MergeAnswers(nil, incoming)

	assert.Equal(t, incoming, merged)
}

func TestQuestionnaireLookups(t *testing.T) {
	q := &Questionnaire{
		Brands:   []Brand{{ID: "a", Name: "A"}},
		Criteria: []Criterion{{Key: "flavor", Description: "Taste"}},
		Status:   QuestionnaireOpen,
	}

	assert.True(t, q.HasBrand("a"))
	assert.False(t, q.HasBrand("z"))
	assert.True(t, q.HasCriterion("flavor"))
	assert.False(t, q.HasCriterion("aroma"))
	assert.True(t, q.IsOpen())

	q.Status = QuestionnaireClosed
	assert.False(t, q.IsOpen())
}
