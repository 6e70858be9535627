package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent"
	"github.com/oghenetejiriorukpegmail/expense-tracker/gen/ent/expense"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
)

type ExpenseRepository interface {
	Create(ctx context.Context, exp *entity.Expense) (*entity.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	List(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*entity.Expense, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	// ApplyExtraction writes the reconciled business fields, flips status to
	// COMPLETE, and clears any previous OCR error. Keys are column names.
	ApplyExtraction(ctx context.Context, id uuid.UUID, fields map[string]string) error
	MarkOCRFailed(ctx context.Context, id uuid.UUID, message string) error
}

type expenseRepo struct {
	client *ent.Client
	log    *slog.Logger
}

func NewExpenseRepository(client *ent.Client, log *slog.Logger) ExpenseRepository {
	if log == nil {
		log = slog.Default()
	}
	return &expenseRepo{client: client, log: log}
}

func (r *expenseRepo) Create(ctx context.Context, exp *entity.Expense) (*entity.Expense, error) {
	builder := r.client.Expense.
		Create().
		SetUserID(exp.UserID).
		SetNillableTripID(exp.TripID).
		SetReceiptPath(exp.ReceiptPath).
		SetStatus(string(constants.RecordStatusPending))
	if exp.Vendor != "" {
		builder = builder.SetVendor(exp.Vendor)
	}
	if exp.TxDate != "" {
		builder = builder.SetTxDate(exp.TxDate)
	}
	if exp.Cost != "" {
		builder = builder.SetCost(exp.Cost)
	}
	if exp.Currency != "" {
		builder = builder.SetCurrency(exp.Currency)
	}
	if exp.Location != "" {
		builder = builder.SetLocation(exp.Location)
	}
	if exp.ExpenseType != "" {
		builder = builder.SetExpenseType(exp.ExpenseType)
	}
	if exp.Comments != "" {
		builder = builder.SetComments(exp.Comments)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.log.Error("expense create failed", "user_id", exp.UserID, "error", err)
		return nil, err
	}
	r.log.Info("expense created", "expense_id", row.ID, "user_id", exp.UserID)
	return toExpense(row), nil
}

func (r *expenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	row, err := r.client.Expense.Query().Where(expense.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("EXPENSE_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		r.log.Error("get expense failed", "expense_id", id, "error", err)
		return nil, err
	}
	return toExpense(row), nil
}

func (r *expenseRepo) List(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]*entity.Expense, error) {
	q := r.client.Expense.Query().Where(expense.UserIDEQ(userID))
	// tx_date is ISO YYYY-MM-DD, so lexical compare is date compare
	if fromDate != "" {
		q = q.Where(expense.TxDateGTE(fromDate))
	}
	if toDate != "" {
		q = q.Where(expense.TxDateLTE(toDate))
	}
	rows, err := q.Order(expense.ByTxDate()).All(ctx)
	if err != nil {
		r.log.Error("list expenses failed", "user_id", userID, "error", err)
		return nil, err
	}
	out := make([]*entity.Expense, len(rows))
	for i, row := range rows {
		out[i] = toExpense(row)
	}
	return out, nil
}

func (r *expenseRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.client.Expense.
		UpdateOneID(id).
		SetStatus(string(constants.RecordStatusProcessing)).
		Exec(ctx)
}

func (r *expenseRepo) ApplyExtraction(ctx context.Context, id uuid.UUID, fields map[string]string) error {
	builder := r.client.Expense.UpdateOneID(id)
	for k, v := range fields {
		switch k {
		case "vendor":
			builder = builder.SetVendor(v)
		case "tx_date":
			builder = builder.SetTxDate(v)
		case "cost":
			builder = builder.SetCost(v)
		case "currency":
			builder = builder.SetCurrency(v)
		case "location":
			builder = builder.SetLocation(v)
		case "expense_type":
			builder = builder.SetExpenseType(v)
		case "comments":
			builder = builder.SetComments(v)
		default:
			// not an OCR-derived column; reconciliation never invents fields
			r.log.Warn("ignoring unknown extraction field", "expense_id", id, "field", k)
		}
	}
	err := builder.
		SetStatus(string(constants.RecordStatusComplete)).
		ClearOcrError().
		Exec(ctx)
	if err != nil {
		r.log.Error("apply extraction failed", "expense_id", id, "error", err)
		return err
	}
	r.log.Info("expense reconciled", "expense_id", id, "fields", len(fields))
	return nil
}

func (r *expenseRepo) MarkOCRFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.Expense.
		UpdateOneID(id).
		SetStatus(string(constants.RecordStatusOCRFailed)).
		SetOcrError(message).
		Exec(ctx)
	if err != nil {
		r.log.Error("mark ocr failed errored", "expense_id", id, "error", err)
		return err
	}
	return nil
}

func toExpense(row *ent.Expense) *entity.Expense {
	return &entity.Expense{
		ID:          row.ID,
		UserID:      row.UserID,
		TripID:      row.TripID,
		Vendor:      row.Vendor,
		TxDate:      row.TxDate,
		Cost:        row.Cost,
		Currency:    row.Currency,
		Location:    row.Location,
		ExpenseType: row.ExpenseType,
		Comments:    row.Comments,
		ReceiptPath: row.ReceiptPath,
		Status:      constants.RecordStatus(row.Status),
		OCRError:    row.OcrError,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
