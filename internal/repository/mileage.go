package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/mileagelog"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

type MileageRepository interface {
	Create(ctx context.Context, log *entity.MileageLog) (*entity.MileageLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MileageLog, error)
	SetImagePath(ctx context.Context, id uuid.UUID, field, path string) error
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// ApplyReading writes one odometer reading ("start" or "end"), flips
	// status to COMPLETE, and clears any previous OCR error.
	ApplyReading(ctx context.Context, id uuid.UUID, field, reading string) error
	// MarkComplete flips status without touching readings, for the case
	// where the user already typed a genuine value before extraction ran.
	MarkComplete(ctx context.Context, id uuid.UUID) error
	MarkOCRFailed(ctx context.Context, id uuid.UUID, message string) error
}

type mileageRepo struct {
	client *ent.Client
	log    *slog.Logger
}

func NewMileageRepository(client *ent.Client, log *slog.Logger) MileageRepository {
	if log == nil {
		log = slog.Default()
	}
	return &mileageRepo{client: client, log: log}
}

func (r *mileageRepo) Create(ctx context.Context, ml *entity.MileageLog) (*entity.MileageLog, error) {
	builder := r.client.MileageLog.
		Create().
		SetUserID(ml.UserID).
		SetNillableTripID(ml.TripID).
		SetStatus(string(constants.RecordStatusPending))
	if ml.LogDate != "" {
		builder = builder.SetLogDate(ml.LogDate)
	}
	if ml.StartImagePath != "" {
		builder = builder.SetStartImagePath(ml.StartImagePath)
	}
	if ml.EndImagePath != "" {
		builder = builder.SetEndImagePath(ml.EndImagePath)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("mileage log create failed", "user_id", ml.UserID, "error", err)
		return nil, err
	}
	r.log.Info("mileage log created", "mileage_log_id", row.ID, "user_id", ml.UserID)
	return toMileageLog(row), nil
}

func (r *mileageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MileageLog, error) {
	row, err := r.client.MileageLog.Query().Where(mileagelog.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("MILEAGE_LOG_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.log.Error("get mileage log failed", "mileage_log_id", id, "error", err)
		return nil, err
	}
	return toMileageLog(row), nil
}

func (r *mileageRepo) SetImagePath(ctx context.Context, id uuid.UUID, field, path string) error {
	builder := r.client.MileageLog.UpdateOneID(id)
	switch field {
	case "start":
		builder = builder.SetStartImagePath(path)
	case "end":
		builder = builder.SetEndImagePath(path)
	default:
		return fmt.Errorf("unknown odometer field %q", field)
	}
	return builder.Exec(ctx)
}

func (r *mileageRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.client.MileageLog.
		UpdateOneID(id).
		SetStatus(string(constants.RecordStatusProcessing)).
		Exec(ctx)
}

func (r *mileageRepo) ApplyReading(ctx context.Context, id uuid.UUID, field, reading string) error {
	builder := r.client.MileageLog.UpdateOneID(id)
	switch field {
	case "start":
		builder = builder.SetStartOdometer(reading)
	case "end":
		builder = builder.SetEndOdometer(reading)
	default:
		return fmt.Errorf("unknown odometer field %q", field)
	}
	err := builder.
		SetStatus(string(constants.RecordStatusComplete)).
		ClearOcrError().
		Exec(ctx)
	if err != nil {
		r.log.Error("apply reading failed", "mileage_log_id", id, "error", err)
		return err
	}
	r.log.Info("mileage log reconciled", "mileage_log_id", id, "field", field, "reading", reading)
	return nil
}

func (r *mileageRepo) MarkComplete(ctx context.Context, id uuid.UUID) error {
	return r.client.MileageLog.
		UpdateOneID(id).
		SetStatus(string(constants.RecordStatusComplete)).
		ClearOcrError().
		Exec(ctx)
}

func (r *mileageRepo) MarkOCRFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.MileageLog.
		UpdateOneID(id).
		SetStatus(string(constants.RecordStatusOCRFailed)).
		SetOcrError(message).
		Exec(ctx)
	if err != nil {
		r.log.Error("mark ocr failed errored", "mileage_log_id", id, "error", err)
		return err
	}
	return nil
}

func toMileageLog(row *ent.MileageLog) *entity.MileageLog {
	return &entity.MileageLog{
		ID:             row.ID,
		UserID:         row.UserID,
		TripID:         row.TripID,
		LogDate:        row.LogDate,
		StartOdometer:  row.StartOdometer,
		EndOdometer:    row.EndOdometer,
		StartImagePath: row.StartImagePath,
		EndImagePath:   row.EndImagePath,
		Status:         constants.RecordStatus(row.Status),
		OCRError:       row.OcrError,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
