package model

import "time"

type ActivityAction string

const (
	ActionLogin               ActivityAction = "LOGIN"
	ActionCreateQuestionnaire ActivityAction = "CREATE_QUESTIONNAIRE"
	ActionUpdateQuestionnaire ActivityAction = "UPDATE_QUESTIONNAIRE"
	ActionCloseQuestionnaire  ActivityAction = "CLOSE_QUESTIONNAIRE"
	ActionSubmitResponse      ActivityAction = "SUBMIT_RESPONSE"
	ActionUpdateResponse      ActivityAction = "UPDATE_RESPONSE"
	ActionViewStatistics      ActivityAction = "VIEW_STATISTICS"
)

type EntityType string

const (
	EntityUser          EntityType = "USER"
	EntityQuestionnaire EntityType = "QUESTIONNAIRE"
	EntityResponse      EntityType = "RESPONSE"
)

// ActivityLog records one audited user action
type ActivityLog struct {
	ID         string            `json:"id" bson:"_id,omitempty"`
	UserID     string            `json:"userId" bson:"userId"`
	Action     ActivityAction    `json:"action" bson:"action"`
	EntityType EntityType        `json:"entityType" bson:"entityType"`
	EntityID   string            `json:"entityId" bson:"entityId"`
	Details    map[string]string `json:"details,omitempty" bson:"details,omitempty"`
	IPAddress  string            `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent  string            `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
	CreatedAt  time.Time         `json:"createdAt" bson:"createdAt"`
}
