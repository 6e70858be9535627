package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
)

// Task represents one durable unit of background work for data transfer
// between layers.
type Task struct {
	ID           uuid.UUID           `json:"id"`
	UserID       uuid.UUID           `json:"user_id"`
	Kind         constants.TaskKind  `json:"kind"`
	Status       constants.TaskStatus `json:"status"`
	Payload      json.RawMessage     `json:"payload,omitempty"`
	Result       json.RawMessage     `json:"result,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TaskPayload is the structured blob stored on a task at creation time.
type TaskPayload struct {
	TargetKind    constants.TargetKind `json:"target_kind,omitempty"`
	TargetID      uuid.UUID            `json:"target_id,omitempty"`
	ImagePath     string               `json:"image_path,omitempty"`
	MimeType      string               `json:"mime_type,omitempty"`
	Template      constants.Template   `json:"template,omitempty"`
	Provider      string               `json:"provider,omitempty"`
	OdometerField string               `json:"odometer_field,omitempty"` // "start" | "end"
	FromDate      string               `json:"from_date,omitempty"`      // export window
	ToDate        string               `json:"to_date,omitempty"`
}

// DecodeTaskPayload parses the payload column of a task row.
func DecodeTaskPayload(raw json.RawMessage) (TaskPayload, error) {
	var p TaskPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return TaskPayload{}, err
	}
	return p, nil
}

// DispatchOutcome describes what one ProcessNext invocation did.
// Extraction failure is a normal, reported outcome, not a transport error.
type DispatchOutcome struct {
	NoTask       bool           `json:"no_task,omitempty"`
	TaskID       uuid.UUID      `json:"task_id,omitempty"`
	TargetID     uuid.UUID      `json:"target_id,omitempty"`
	Fields       map[string]any `json:"extracted_fields,omitempty"`
	ErrorMessage string         `json:"error,omitempty"`
}
