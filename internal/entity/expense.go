package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
)

// Expense represents an expense row for data transfer between layers.
// Money fields are decimal strings, same convention as the wire format.
type Expense struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	TripID      *uuid.UUID             `json:"trip_id,omitempty"`
	Vendor      string                 `json:"vendor"`
	TxDate      string                 `json:"tx_date"` // YYYY-MM-DD
	Cost        string                 `json:"cost"`
	Currency    string                 `json:"currency,omitempty"`
	Location    string                 `json:"location,omitempty"`
	ExpenseType string                 `json:"expense_type,omitempty"`
	Comments    string                 `json:"comments,omitempty"`
	ReceiptPath string                 `json:"receipt_path,omitempty"`
	Status      constants.RecordStatus `json:"status"`
	OCRError    *string                `json:"ocr_error,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
