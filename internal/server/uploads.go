package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	expensespb "github.com/oghenetejiriorukpegmail/expense-tracker/gen/proto/expenses/v1"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/async"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/repository"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/storage"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/utils"
)

type UploadService struct {
	expensespb.UnimplementedUploadsServiceServer
	taskRepo    repository.TaskRepository
	expenseRepo repository.ExpenseRepository
	mileageRepo repository.MileageRepository
	store       storage.Gateway
	queue       async.Queue
	logger      *slog.Logger
}

func NewUploadService(
	taskRepo repository.TaskRepository,
	expenseRepo repository.ExpenseRepository,
	mileageRepo repository.MileageRepository,
	store storage.Gateway,
	queue async.Queue,
	logger *slog.Logger,
) *UploadService {
	return &UploadService{
		taskRepo:    taskRepo,
		expenseRepo: expenseRepo,
		mileageRepo: mileageRepo,
		store:       store,
		queue:       queue,
		logger:      logger,
	}
}

// UploadReceipt stores the image, creates a placeholder expense and a pending
// extraction task, and kicks the dispatcher. The RPC returns as soon as the
// rows exist; extraction itself runs in the background.
func (s *UploadService) UploadReceipt(ctx context.Context, req *expensespb.UploadReceiptRequest) (*expensespb.UploadReceiptResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		s.logger.Error("invalid user_id for receipt upload", "user_id", req.GetUserId(), "error", err)
		return nil, err
	}
	tripID, err := parseOptionalUUID(req.GetTripId(), "trip_id")
	if err != nil {
		return nil, err
	}
	if err := validateUpload(req.GetFilename(), req.GetContentType(), req.GetContent()); err != nil {
		s.logger.Error("invalid receipt upload", "user_id", userID, "filename", req.GetFilename(), "error", err)
		return nil, err
	}

	template := constants.TemplateGeneral
	if raw := strings.TrimSpace(req.GetTemplate()); raw != "" {
		parsed, ok := constants.ParseTemplate(raw)
		if !ok || parsed == constants.TemplateOdometer {
			return nil, status.Errorf(codes.InvalidArgument, "template must be one of: general, travel")
		}
		template = parsed
	}

	objectPath := storage.ObjectPath("receipts", userID, req.GetFilename())
	if _, err := s.store.Upload(ctx, objectPath, req.GetContent(), req.GetContentType()); err != nil {
		s.logger.Error("receipt upload to storage failed", "user_id", userID, "path", objectPath, "error", err)
		return nil, status.Errorf(codes.Internal, "store receipt: %v", err)
	}

	expense, err := s.expenseRepo.Create(ctx, &entity.Expense{
		UserID:      userID,
		TripID:      tripID,
		ReceiptPath: objectPath,
		Status:      constants.RecordStatusPending,
	})
	if err != nil {
		s.logger.Error("failed to create expense", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "create expense: %v", err)
	}

	task, err := s.taskRepo.Create(ctx, userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind: constants.TargetExpense,
		TargetID:   expense.ID,
		ImagePath:  objectPath,
		MimeType:   req.GetContentType(),
		Template:   template,
		Provider:   strings.TrimSpace(req.GetProvider()),
	})
	if err != nil {
		s.logger.Error("failed to create extraction task", "user_id", userID, "expense_id", expense.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "create task: %v", err)
	}

	// fire-and-forget: the queue logs its own outcome
	_ = s.queue.Enqueue(ctx, async.Job{UserID: userID, SubmittedAt: time.Now()})

	s.logger.Info("receipt upload accepted",
		"user_id", userID, "expense_id", expense.ID, "task_id", task.ID, "path", objectPath)
	return &expensespb.UploadReceiptResponse{
		ExpenseId:   expense.ID.String(),
		TaskId:      task.ID.String(),
		ReceiptPath: objectPath,
	}, nil
}

// UploadOdometer stores an odometer photo against a mileage log, creating the
// log when no mileage_log_id is supplied, and queues the reading extraction.
func (s *UploadService) UploadOdometer(ctx context.Context, req *expensespb.UploadOdometerRequest) (*expensespb.UploadOdometerResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		s.logger.Error("invalid user_id for odometer upload", "user_id", req.GetUserId(), "error", err)
		return nil, err
	}
	tripID, err := parseOptionalUUID(req.GetTripId(), "trip_id")
	if err != nil {
		return nil, err
	}
	field := strings.ToLower(strings.TrimSpace(req.GetField()))
	if field != "start" && field != "end" {
		return nil, status.Error(codes.InvalidArgument, "field must be start or end")
	}
	if err := validateUpload(req.GetFilename(), req.GetContentType(), req.GetContent()); err != nil {
		s.logger.Error("invalid odometer upload", "user_id", userID, "filename", req.GetFilename(), "error", err)
		return nil, err
	}

	var log *entity.MileageLog
	if raw := strings.TrimSpace(req.GetMileageLogId()); raw != "" {
		logID, err := uuid.Parse(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "mileage_log_id must be a UUID")
		}
		log, err = s.mileageRepo.GetByID(ctx, logID)
		if err != nil {
			return nil, status.Error(codes.NotFound, "mileage log not found")
		}
		if log.UserID != userID {
			s.logger.Warn("mileage log ownership mismatch", "mileage_log_id", logID, "user_id", userID)
			return nil, status.Error(codes.PermissionDenied, "mileage log belongs to another user")
		}
	} else {
		log, err = s.mileageRepo.Create(ctx, &entity.MileageLog{
			UserID:  userID,
			TripID:  tripID,
			LogDate: time.Now().UTC().Format("2006-01-02"),
			Status:  constants.RecordStatusPending,
		})
		if err != nil {
			s.logger.Error("failed to create mileage log", "user_id", userID, "error", err)
			return nil, status.Errorf(codes.Internal, "create mileage log: %v", err)
		}
	}

	objectPath := storage.ObjectPath("odometer", userID, req.GetFilename())
	if _, err := s.store.Upload(ctx, objectPath, req.GetContent(), req.GetContentType()); err != nil {
		s.logger.Error("odometer upload to storage failed", "user_id", userID, "path", objectPath, "error", err)
		return nil, status.Errorf(codes.Internal, "store odometer image: %v", err)
	}
	if err := s.mileageRepo.SetImagePath(ctx, log.ID, field, objectPath); err != nil {
		s.logger.Error("failed to record image path", "mileage_log_id", log.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "record image path: %v", err)
	}

	task, err := s.taskRepo.Create(ctx, userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind:    constants.TargetMileage,
		TargetID:      log.ID,
		ImagePath:     objectPath,
		MimeType:      req.GetContentType(),
		Template:      constants.TemplateOdometer,
		Provider:      strings.TrimSpace(req.GetProvider()),
		OdometerField: field,
	})
	if err != nil {
		s.logger.Error("failed to create extraction task", "user_id", userID, "mileage_log_id", log.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "create task: %v", err)
	}

	_ = s.queue.Enqueue(ctx, async.Job{UserID: userID, SubmittedAt: time.Now()})

	s.logger.Info("odometer upload accepted",
		"user_id", userID, "mileage_log_id", log.ID, "task_id", task.ID, "field", field, "path", objectPath)
	return &expensespb.UploadOdometerResponse{
		MileageLogId: log.ID.String(),
		TaskId:       task.ID.String(),
		ImagePath:    objectPath,
	}, nil
}

// ExportExpenses queues an export task for the caller's expenses.
func (s *UploadService) ExportExpenses(ctx context.Context, req *expensespb.ExportExpensesRequest) (*expensespb.ExportExpensesResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		s.logger.Error("invalid user_id for export", "user_id", req.GetUserId(), "error", err)
		return nil, err
	}
	fromDate, toDate := strings.TrimSpace(req.GetFromDate()), strings.TrimSpace(req.GetToDate())
	for name, v := range map[string]string{"from_date": fromDate, "to_date": toDate} {
		if v == "" {
			continue
		}
		if _, err := utils.ParseYMD(v); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s invalid (YYYY-MM-DD): %v", name, err)
		}
	}

	task, err := s.taskRepo.Create(ctx, userID, constants.TaskKindExport, entity.TaskPayload{
		FromDate: fromDate,
		ToDate:   toDate,
	})
	if err != nil {
		s.logger.Error("failed to create export task", "user_id", userID, "error", err)
		return nil, status.Errorf(codes.Internal, "create task: %v", err)
	}

	_ = s.queue.Enqueue(ctx, async.Job{UserID: userID, SubmittedAt: time.Now()})

	s.logger.Info("export queued", "user_id", userID, "task_id", task.ID)
	return &expensespb.ExportExpensesResponse{TaskId: task.ID.String()}, nil
}

func parseOptionalUUID(raw, name string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", name)
	}
	return &id, nil
}

func validateUpload(filename, contentType string, content []byte) error {
	if strings.TrimSpace(filename) == "" {
		return status.Error(codes.InvalidArgument, "filename is required")
	}
	if !constants.IsAllowedImageType(contentType) {
		return status.Errorf(codes.InvalidArgument, "unsupported content type %q", contentType)
	}
	if len(content) == 0 {
		return status.Error(codes.InvalidArgument, "content is empty")
	}
	return nil
}
