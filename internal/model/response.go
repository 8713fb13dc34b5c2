package model

import "time"

type ResponseStatus string

const (
	ResponseDraft     ResponseStatus = "draft"
	ResponseSubmitted ResponseStatus = "submitted"
)

// Answer is a single (brand, criterion) rating within a response.
// Rating 0 marks an answer a draft has not filled in yet.
type Answer struct {
	BrandID   string `json:"brandId" bson:"brandId"`
	Criterion string `json:"criterion" bson:"criterion"`
	Rating    int    `json:"rating" bson:"rating"`
	Comment   string `json:"comment,omitempty" bson:"comment,omitempty"`
}

// ComparativeEvaluation is the participant's overall verdict
type ComparativeEvaluation struct {
	PreferredBrandID string `json:"preferredBrandId,omitempty" bson:"preferredBrandId,omitempty"`
	Comments         string `json:"comments,omitempty" bson:"comments,omitempty"`
}

// Response is one participant's answer set for one questionnaire.
// At most one exists per (questionnaire, participant) pair.
type Response struct {
	ID              string                `json:"id" bson:"_id,omitempty"`
	QuestionnaireID string                `json:"questionnaireId" bson:"questionnaireId"`
	ParticipantID   string                `json:"participantId" bson:"participantId"`
	Status          ResponseStatus        `json:"status" bson:"status"`
	Answers         []Answer              `json:"answers" bson:"answers"`
	Comparative     ComparativeEvaluation `json:"comparativeEvaluation" bson:"comparativeEvaluation"`
	CreatedAt       time.Time             `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt" bson:"updatedAt"`
}

// ResponsePayload is the inbound shape for a draft or submit save
type ResponsePayload struct {
	Answers     []Answer              `json:"answers"`
	Comparative ComparativeEvaluation `json:"comparativeEvaluation"`
}

// MergeAnswers folds incoming answers into the stored set, keyed by
// (brandId, criterion). Incoming values win; pairs absent from the
// payload keep their previously saved value.
func MergeAnswers(existing, incoming []Answer) []Answer {
	merged := make([]Answer, len(existing))
	copy(merged, existing)

	index := make(map[[2]string]int, len(merged))
	for i, a := range merged {
		index[[2]string{a.BrandID, a.Criterion}] = i
	}

	for _, a := range incoming {
		key := [2]string{a.BrandID, a.Criterion}
		if i, ok := index[key]; ok {
			merged[i] = a
		} else {
			index[key] = len(merged)
			merged = append(merged, a)
		}
	}
	return merged
}
