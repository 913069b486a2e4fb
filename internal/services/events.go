package services

import (
	"time"

	"github.com/google/uuid"
)

// Events emitted once per successful submission, the refresh signal the
// embedding view listens for.
const (
	EventCareTeamCreated = "careteam.created"
	EventNutritionLogged = "nutrition.logged"
	EventVitalRecorded   = "vital.recorded"
)

type EventPublisher interface {
	Publish(profileID uuid.UUID, event string, payload any)
}

// submissionTTL backstops guard slots held by requests that never settle.
const submissionTTL = 30 * time.Second
