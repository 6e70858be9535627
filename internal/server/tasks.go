package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	expensespb "github.com/oghenetejiriorukpegmail/expense-tracker/gen/proto/expenses/v1"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/repository"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/utils"
)

// Dispatcher is the slice of the pipeline the task service needs.
type Dispatcher interface {
	ProcessNext(ctx context.Context, userID uuid.UUID) (*entity.DispatchOutcome, error)
}

type TaskService struct {
	expensespb.UnimplementedTasksServiceServer
	taskRepo   repository.TaskRepository
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewTaskService(taskRepo repository.TaskRepository, dispatcher Dispatcher, logger *slog.Logger) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ProcessNextTask drains one pending task for the caller. A task that fails
// extraction still returns OK; the failure rides in the error field.
func (s *TaskService) ProcessNextTask(ctx context.Context, req *expensespb.ProcessNextTaskRequest) (*expensespb.ProcessNextTaskResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		s.logger.Error("invalid user_id for process next task", "user_id", req.GetUserId(), "error", err)
		return nil, err
	}

	outcome, err := s.dispatcher.ProcessNext(ctx, userID)
	if err != nil {
		s.logger.Error("dispatch failed", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "process next task: %v", err)
	}
	if outcome.NoTask {
		return &expensespb.ProcessNextTaskResponse{NoTasks: true}, nil
	}

	resp := &expensespb.ProcessNextTaskResponse{
		TaskId: outcome.TaskID.String(),
		Error:  outcome.ErrorMessage,
	}
	if outcome.TargetID != uuid.Nil {
		resp.TargetId = outcome.TargetID.String()
	}
	if len(outcome.Fields) > 0 {
		if b, err := json.Marshal(outcome.Fields); err == nil {
			resp.ExtractedJson = string(b)
		}
	}
	return resp, nil
}

func (s *TaskService) ListTasks(ctx context.Context, req *expensespb.ListTasksRequest) (*expensespb.ListTasksResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		s.logger.Error("invalid user_id for list tasks", "user_id", req.GetUserId(), "error", err)
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list tasks", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "list tasks: %v", err)
	}

	out := make([]*expensespb.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, utils.ToPBTask(t))
	}
	return &expensespb.ListTasksResponse{Tasks: out}, nil
}

func (s *TaskService) GetTask(ctx context.Context, req *expensespb.GetTaskRequest) (*expensespb.GetTaskResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		s.logger.Error("invalid user_id for get task", "user_id", req.GetUserId(), "error", err)
		return nil, err
	}
	taskID, err := uuid.Parse(strings.TrimSpace(req.GetTaskId()))
	if err != nil {
		s.logger.Error("invalid task_id for get task", "task_id", req.GetTaskId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "task_id must be a UUID")
	}

	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "task not found")
		}
		s.logger.Error("failed to get task", "task_id", taskID, "error", err)
		return nil, status.Errorf(codes.Internal, "get task: %v", err)
	}
	if t.UserID != userID {
		s.logger.Warn("task ownership mismatch", "task_id", taskID, "user_id", userID)
		return nil, status.Error(codes.PermissionDenied, "task belongs to another user")
	}

	return &expensespb.GetTaskResponse{Task: utils.ToPBTask(t)}, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	return userID, nil
}
