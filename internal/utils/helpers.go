package utils

import (
	"time"

	expensespb "github.com/oghenetejiriorukpegmail/expense-tracker/gen/proto/expenses/v1"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBTask(t *entity.Task) *expensespb.Task {
	return &expensespb.Task{
		Id:           t.ID.String(),
		UserId:       t.UserID.String(),
		Kind:         string(t.Kind),
		Status:       string(t.Status),
		PayloadJson:  string(t.Payload),
		ResultJson:   string(t.Result),
		ErrorMessage: strOrEmpty(t.ErrorMessage),
		CreatedAt:    t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
