package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
)

// MileageLog represents a mileage log row for data transfer between layers.
// Odometer readings are decimal strings so a blank reading stays blank
// instead of becoming a misleading zero.
type MileageLog struct {
	ID             uuid.UUID              `json:"id"`
	UserID         uuid.UUID              `json:"user_id"`
	TripID         *uuid.UUID             `json:"trip_id,omitempty"`
	LogDate        string                 `json:"log_date"` // YYYY-MM-DD
	StartOdometer  string                 `json:"start_odometer,omitempty"`
	EndOdometer    string                 `json:"end_odometer,omitempty"`
	StartImagePath string                 `json:"start_image_path,omitempty"`
	EndImagePath   string                 `json:"end_image_path,omitempty"`
	Status         constants.RecordStatus `json:"status"`
	OCRError       *string                `json:"ocr_error,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
