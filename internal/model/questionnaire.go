package model

import "time"

type QuestionnaireStatus string

const (
	QuestionnaireOpen   QuestionnaireStatus = "open"
	QuestionnaireClosed QuestionnaireStatus = "closed"
)

// Brand is one compared item within a questionnaire
type Brand struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Criterion is one rated dimension, e.g. "flavor"
type Criterion struct {
	Key         string `json:"key" bson:"key"`
	Description string `json:"description" bson:"description"`
}

// Questionnaire is a comparative tasting survey created by an admin
type Questionnaire struct {
	ID        string              `json:"id" bson:"_id,omitempty"`
	Title     string              `json:"title" bson:"title"`
	Brands    []Brand             `json:"brands" bson:"brands"`
	Criteria  []Criterion         `json:"criteria" bson:"criteria"`
	Status    QuestionnaireStatus `json:"status" bson:"status"`
	CreatedBy string              `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// IsOpen reports whether the questionnaire still accepts responses
func (q *Questionnaire) IsOpen() bool {
	return q.Status == QuestionnaireOpen
}

// HasBrand reports whether brandID is declared by the questionnaire.
// The empty string never matches, even if a stored brand lost its id.
func (q *Questionnaire) HasBrand(brandID string) bool {
	if brandID == "" {
		return false
	}
	for _, b := range q.Brands {
		if b.ID == brandID {
			return true
		}
	}
	return false
}

// HasCriterion reports whether key is a declared criterion key
func (q *Questionnaire) HasCriterion(key string) bool {
	for _, c := range q.Criteria {
		if c.Key == key {
			return true
		}
	}
	return false
}
