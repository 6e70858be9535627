package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/task"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

// TaskRepository is the task registry: one durable row per unit of
// background work. Status only ever moves forward; nothing here deletes.
type TaskRepository interface {
	Create(ctx context.Context, userID uuid.UUID, kind constants.TaskKind, payload entity.TaskPayload) (*entity.Task, error)
	// Claim atomically moves a PENDING task to PROCESSING. It is a single
	// conditional update, so exactly one of any number of concurrent callers
	// wins; the rest see claimed=false.
	Claim(ctx context.Context, taskID uuid.UUID) (bool, error)
	Complete(ctx context.Context, taskID uuid.UUID, result json.RawMessage) error
	Fail(ctx context.Context, taskID uuid.UUID, message string) error
	ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	GetByID(ctx context.Context, taskID uuid.UUID) (*entity.Task, error)
}

type taskRepo struct {
	client *ent.Client
	log    *slog.Logger
}

func NewTaskRepository(client *ent.Client, log *slog.Logger) TaskRepository {
	if log == nil {
		log = slog.Default()
	}
	return &taskRepo{client: client, log: log}
}

func (r *taskRepo) Create(ctx context.Context, userID uuid.UUID, kind constants.TaskKind, payload entity.TaskPayload) (*entity.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, common.WrapError(err, "encode task payload")
	}
	row, err := r.client.Task.
		Create().
		SetUserID(userID).
		SetKind(string(kind)).
		SetStatus(string(constants.TaskStatusPending)).
		SetPayload(raw).
		Save(ctx)
	if err != nil {
		r.log.Error("task create failed", "user_id", userID, "kind", kind, "error", err)
		return nil, err
	}
	r.log.Info("task created", "task_id", row.ID, "user_id", userID, "kind", kind)
	return toTask(row), nil
}

func (r *taskRepo) Claim(ctx context.Context, taskID uuid.UUID) (bool, error) {
	n, err := r.client.Task.
		Update().
		Where(task.IDEQ(taskID), task.StatusEQ(string(constants.TaskStatusPending))).
		SetStatus(string(constants.TaskStatusProcessing)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("task claim failed", "task_id", taskID, "error", err)
		return false, err
	}
	return n == 1, nil
}

func (r *taskRepo) Complete(ctx context.Context, taskID uuid.UUID, result json.RawMessage) error {
	if len(result) == 0 {
		return common.NewAppError("TASK_TRANSITION", "completing a task requires a result payload", common.ErrInvalidTransition)
	}
	n, err := r.client.Task.
		Update().
		Where(task.IDEQ(taskID), task.StatusEQ(string(constants.TaskStatusProcessing))).
		SetStatus(string(constants.TaskStatusCompleted)).
		SetResult(result).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("task complete failed", "task_id", taskID, "error", err)
		return err
	}
	if n != 1 {
		// not PROCESSING: walking backwards through the state machine is a
		// programming error, not a recoverable condition
		return common.NewAppError("TASK_TRANSITION", "task is not PROCESSING", common.ErrInvalidTransition)
	}
	r.log.Info("task completed", "task_id", taskID)
	return nil
}

func (r *taskRepo) Fail(ctx context.Context, taskID uuid.UUID, message string) error {
	if message == "" {
		return common.NewAppError("TASK_TRANSITION", "failing a task requires an error message", common.ErrInvalidTransition)
	}
	n, err := r.client.Task.
		Update().
		Where(task.IDEQ(taskID), task.StatusEQ(string(constants.TaskStatusProcessing))).
		SetStatus(string(constants.TaskStatusFailed)).
		SetErrorMessage(message).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("task fail transition failed", "task_id", taskID, "error", err)
		return err
	}
	if n != 1 {
		return common.NewAppError("TASK_TRANSITION", "task is not PROCESSING", common.ErrInvalidTransition)
	}
	r.log.Info("task failed", "task_id", taskID, "message", message)
	return nil
}

func (r *taskRepo) ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	rows, err := r.client.Task.
		Query().
		Where(task.UserIDEQ(userID), task.StatusEQ(string(constants.TaskStatusPending))).
		Order(task.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("list pending tasks failed", "user_id", userID, "error", err)
		return nil, err
	}
	return toTasks(rows), nil
}

func (r *taskRepo) List(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	rows, err := r.client.Task.
		Query().
		Where(task.UserIDEQ(userID)).
		Order(task.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("list tasks failed", "user_id", userID, "error", err)
		return nil, err
	}
	return toTasks(rows), nil
}

func (r *taskRepo) GetByID(ctx context.Context, taskID uuid.UUID) (*entity.Task, error) {
	row, err := r.client.Task.Query().Where(task.IDEQ(taskID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("TASK_NOT_FOUND", taskID.String(), common.ErrNotFound)
		}
		r.log.Error("get task failed", "task_id", taskID, "error", err)
		return nil, err
	}
	return toTask(row), nil
}

func toTask(row *ent.Task) *entity.Task {
	return &entity.Task{
		ID:           row.ID,
		UserID:       row.UserID,
		Kind:         constants.TaskKind(row.Kind),
		Status:       constants.TaskStatus(row.Status),
		Payload:      row.Payload,
		Result:       row.Result,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toTasks(rows []*ent.Task) []*entity.Task {
	out := make([]*entity.Task, len(rows))
	for i, row := range rows {
		out[i] = toTask(row)
	}
	return out
}
