package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/reconcile"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/repository"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/storage"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/vision"
)

// Exporter runs an export task and returns the stored object path.
type Exporter interface {
	Run(ctx context.Context, userID uuid.UUID, payload entity.TaskPayload) (string, error)
}

// Dispatcher drives one pending task to a terminal state per invocation.
// Provider, parse, storage and target failures never propagate past this
// boundary; they land in the task's FAILED state and the target's OCR_FAILED
// status. Only registry-level failures (the database itself) surface as
// errors.
type Dispatcher struct {
	logger   *slog.Logger
	tasks    repository.TaskRepository
	expenses repository.ExpenseRepository
	mileage  repository.MileageRepository
	store    storage.Gateway
	vision   vision.Extractor
	exporter Exporter
}

func NewDispatcher(
	logger *slog.Logger,
	tasks repository.TaskRepository,
	expenses repository.ExpenseRepository,
	mileage repository.MileageRepository,
	store storage.Gateway,
	extractor vision.Extractor,
	exporter Exporter,
) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		logger:   logger,
		tasks:    tasks,
		expenses: expenses,
		mileage:  mileage,
		store:    store,
		vision:   extractor,
		exporter: exporter,
	}
}

// ProcessNext claims the oldest pending task for the owner and runs it.
// Claiming is a conditional update, so concurrent invocations for the same
// owner never process the same task twice; a loser simply tries the next
// pending row and eventually reports no work.
func (d *Dispatcher) ProcessNext(ctx context.Context, userID uuid.UUID) (*entity.DispatchOutcome, error) {
	pending, err := d.tasks.ListPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending tasks: %w", err)
	}

	var claimed *entity.Task
	for _, t := range pending {
		ok, err := d.tasks.Claim(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("claim task %s: %w", t.ID, err)
		}
		if ok {
			claimed = t
			break
		}
		d.logger.Info("dispatch.claim_lost", "task_id", t.ID)
	}
	if claimed == nil {
		return &entity.DispatchOutcome{NoTask: true}, nil
	}
	d.logger.Info("dispatch.claimed", "task_id", claimed.ID, "kind", claimed.Kind, "user_id", userID)

	payload, err := entity.DecodeTaskPayload(claimed.Payload)
	if err != nil {
		return d.failTask(ctx, claimed, payload, fmt.Sprintf("malformed task payload: %v", err)), nil
	}

	switch claimed.Kind {
	case constants.TaskKindExport:
		return d.runExport(ctx, claimed, payload), nil
	default:
		return d.runExtraction(ctx, claimed, payload), nil
	}
}

func (d *Dispatcher) runExtraction(ctx context.Context, t *entity.Task, payload entity.TaskPayload) *entity.DispatchOutcome {
	// resolve the target record before spending a provider call on it
	var mileageLog *entity.MileageLog
	switch payload.TargetKind {
	case constants.TargetExpense:
		if _, err := d.expenses.GetByID(ctx, payload.TargetID); err != nil {
			return d.failTaskOnly(ctx, t, payload, "target not found")
		}
		if err := d.expenses.MarkProcessing(ctx, payload.TargetID); err != nil {
			d.logger.Warn("dispatch.mark_processing_failed", "task_id", t.ID, "error", err)
		}
	case constants.TargetMileage:
		lg, err := d.mileage.GetByID(ctx, payload.TargetID)
		if err != nil {
			return d.failTaskOnly(ctx, t, payload, "target not found")
		}
		mileageLog = lg
		if err := d.mileage.MarkProcessing(ctx, payload.TargetID); err != nil {
			d.logger.Warn("dispatch.mark_processing_failed", "task_id", t.ID, "error", err)
		}
	default:
		return d.failTaskOnly(ctx, t, payload, fmt.Sprintf("unknown target kind %q", payload.TargetKind))
	}

	image, err := d.store.Download(ctx, payload.ImagePath)
	if err != nil {
		return d.failTask(ctx, t, payload, fmt.Sprintf("stored image missing or empty: %s", payload.ImagePath))
	}

	res, err := d.vision.Extract(ctx, vision.Request{
		Image:    image,
		MimeType: payload.MimeType,
		Template: payload.Template,
		Provider: payload.Provider,
	})
	if err != nil {
		return d.failTask(ctx, t, payload, err.Error())
	}

	switch payload.TargetKind {
	case constants.TargetExpense:
		exp, err := d.expenses.GetByID(ctx, payload.TargetID)
		if err != nil {
			return d.failTask(ctx, t, payload, "target not found")
		}
		changed := reconcile.MergeExpense(exp, res.Fields)
		if err := d.expenses.ApplyExtraction(ctx, payload.TargetID, changed); err != nil {
			return d.failTask(ctx, t, payload, fmt.Sprintf("apply extraction: %v", err))
		}
	case constants.TargetMileage:
		reading, settable, err := reconcile.MergeOdometer(mileageLog, payload.OdometerField, res.Fields)
		if err != nil {
			return d.failTask(ctx, t, payload, err.Error())
		}
		if settable {
			err = d.mileage.ApplyReading(ctx, payload.TargetID, payload.OdometerField, reading)
		} else {
			err = d.mileage.MarkComplete(ctx, payload.TargetID)
		}
		if err != nil {
			return d.failTask(ctx, t, payload, fmt.Sprintf("apply reading: %v", err))
		}
	}

	result, err := json.Marshal(map[string]any{
		"fields":   res.Fields,
		"raw_text": res.RawText,
	})
	if err != nil {
		return d.failTask(ctx, t, payload, fmt.Sprintf("encode result: %v", err))
	}
	if err := d.tasks.Complete(ctx, t.ID, result); err != nil {
		d.logger.Error("dispatch.complete_failed", "task_id", t.ID, "error", err)
		return &entity.DispatchOutcome{TaskID: t.ID, TargetID: payload.TargetID, ErrorMessage: err.Error()}
	}

	d.logger.Info("dispatch.completed", "task_id", t.ID, "target_id", payload.TargetID, "fields", len(res.Fields))
	return &entity.DispatchOutcome{TaskID: t.ID, TargetID: payload.TargetID, Fields: res.Fields}
}

func (d *Dispatcher) runExport(ctx context.Context, t *entity.Task, payload entity.TaskPayload) *entity.DispatchOutcome {
	if d.exporter == nil {
		return d.failTaskOnly(ctx, t, payload, "export is not configured")
	}
	path, err := d.exporter.Run(ctx, t.UserID, payload)
	if err != nil {
		return d.failTaskOnly(ctx, t, payload, fmt.Sprintf("export: %v", err))
	}
	result, _ := json.Marshal(map[string]any{"path": path})
	if err := d.tasks.Complete(ctx, t.ID, result); err != nil {
		d.logger.Error("dispatch.complete_failed", "task_id", t.ID, "error", err)
		return &entity.DispatchOutcome{TaskID: t.ID, ErrorMessage: err.Error()}
	}
	d.logger.Info("dispatch.export_completed", "task_id", t.ID, "path", path)
	return &entity.DispatchOutcome{TaskID: t.ID, Fields: map[string]any{"path": path}}
}

// failTask records the failure on both the task and its target record.
func (d *Dispatcher) failTask(ctx context.Context, t *entity.Task, payload entity.TaskPayload, msg string) *entity.DispatchOutcome {
	switch payload.TargetKind {
	case constants.TargetExpense:
		if err := d.expenses.MarkOCRFailed(ctx, payload.TargetID, msg); err != nil {
			d.logger.Error("dispatch.mark_ocr_failed_errored", "task_id", t.ID, "error", err)
		}
	case constants.TargetMileage:
		if err := d.mileage.MarkOCRFailed(ctx, payload.TargetID, msg); err != nil {
			d.logger.Error("dispatch.mark_ocr_failed_errored", "task_id", t.ID, "error", err)
		}
	}
	return d.failTaskOnly(ctx, t, payload, msg)
}

// failTaskOnly records the failure on the task alone, for the cases where
// no target record can be updated.
func (d *Dispatcher) failTaskOnly(ctx context.Context, t *entity.Task, payload entity.TaskPayload, msg string) *entity.DispatchOutcome {
	if err := d.tasks.Fail(ctx, t.ID, msg); err != nil {
		d.logger.Error("dispatch.fail_transition_errored", "task_id", t.ID, "error", err)
	}
	d.logger.Info("dispatch.failed", "task_id", t.ID, "target_id", payload.TargetID, "message", msg)
	return &entity.DispatchOutcome{TaskID: t.ID, TargetID: payload.TargetID, ErrorMessage: msg}
}
