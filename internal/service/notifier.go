package service

// Events pushed to subscribers of a questionnaire channel
const (
	EventQuestionnaireUpdated = "questionnaire-updated"
	EventResponseSubmitted    = "response-submitted"
)

// Notifier publishes real-time events to subscribers of a questionnaire
// channel (avoids import cycle with the websocket transport). Instances
// are injected; services never reach for a global.
type Notifier interface {
	Publish(questionnaireID string, event string)
}
