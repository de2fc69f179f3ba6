package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kinds of domain events the quiz service emits
type EventType string

const (
	// Test events
	EventTestCreated EventType = "test.created"
	EventTestUpdated EventType = "test.updated"
	EventTestDeleted EventType = "test.deleted"

	// Result events
	EventResultSubmitted EventType = "result.submitted"
)

const (
	EventSource  = "practice-quiz"
	EventVersion = "1.0"
)

// QuizEvent is the envelope shared by every published event
type QuizEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Test event payloads

type TestCreatedEvent struct {
	TestID        string `json:"test_id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
}

type TestUpdatedEvent struct {
	TestID        string `json:"test_id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
	HadResults    bool   `json:"had_results"`
	Purged        bool   `json:"purged"`
	PurgedCount   int    `json:"purged_count"`
}

type TestDeletedEvent struct {
	TestID      string `json:"test_id"`
	PurgedCount int    `json:"purged_count"`
}

// Result event payloads

type ResultSubmittedEvent struct {
	TestID     string `json:"test_id"`
	ResultID   string `json:"result_id"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Graded     bool   `json:"graded"` // scored by the service rather than the client
}

// Event factory functions

func NewTestCreatedEvent(testID, title string, questionCount int) *QuizEvent {
	return newEvent(EventTestCreated, TestCreatedEvent{
		TestID:        testID,
		Title:         title,
		QuestionCount: questionCount,
	})
}

func NewTestUpdatedEvent(testID, title string, questionCount int, hadResults, purged bool, purgedCount int) *QuizEvent {
	return newEvent(EventTestUpdated, TestUpdatedEvent{
		TestID:        testID,
		Title:         title,
		QuestionCount: questionCount,
		HadResults:    hadResults,
		Purged:        purged,
		PurgedCount:   purgedCount,
	})
}

func NewTestDeletedEvent(testID string, purgedCount int) *QuizEvent {
	return newEvent(EventTestDeleted, TestDeletedEvent{
		TestID:      testID,
		PurgedCount: purgedCount,
	})
}

func NewResultSubmittedEvent(testID, resultID string, correct, total, percentage int, graded bool) *QuizEvent {
	return newEvent(EventResultSubmitted, ResultSubmittedEvent{
		TestID:     testID,
		ResultID:   resultID,
		Correct:    correct,
		Total:      total,
		Percentage: percentage,
		Graded:     graded,
	})
}

func newEvent(eventType EventType, data interface{}) *QuizEvent {
	return &QuizEvent{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    EventSource,
		Version:   EventVersion,
		Data:      data,
	}
}

// GenerateEventID returns a random UUID string
func GenerateEventID() string {
	return uuid.NewString()
}
