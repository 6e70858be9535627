package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/repository"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/storage"
)

// Service produces XLSX workbooks from a user's expenses and stores them
// as downloadable objects.
type Service struct {
	expenses repository.ExpenseRepository
	store    storage.Gateway
	logger   *slog.Logger
}

func NewService(expenses repository.ExpenseRepository, store storage.Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{expenses: expenses, store: store, logger: logger}
}

// Run builds the workbook for the payload's date window, uploads it, and
// returns the stored object path. Satisfies pipeline.Exporter.
func (s *Service) Run(ctx context.Context, userID uuid.UUID, payload entity.TaskPayload) (string, error) {
	data, rows, err := s.BuildXLSX(ctx, userID, payload.FromDate, payload.ToDate)
	if err != nil {
		return "", err
	}

	objectPath := storage.ObjectPath("exports", userID, "expenses.xlsx")
	const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if _, err := s.store.Upload(ctx, objectPath, data, xlsxMime); err != nil {
		return "", fmt.Errorf("store export: %w", err)
	}

	s.logger.Info("export.stored", "user_id", userID.String(), "path", objectPath, "rows", rows)
	return objectPath, nil
}

// BuildXLSX returns an XLSX workbook (as bytes) for the given user and date
// window. Empty fromDate means from the beginning; empty toDate means today.
func (s *Service) BuildXLSX(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]byte, int, error) {
	start := time.Now()

	if fromDate != "" && toDate == "" {
		toDate = time.Now().UTC().Format("2006-01-02")
	}

	expenses, err := s.expenses.List(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, 0, fmt.Errorf("query expenses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Expenses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Transaction Date",
		"Expense Type",
		"Vendor",
		"Location",
		"Cost",
		"Currency",
		"Comments",
		"Receipt Path",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range expenses {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.TxDate)
		write(2, e.ExpenseType)
		write(3, e.Vendor)
		write(4, e.Location)
		write(5, e.Cost)
		write(6, e.Currency)
		write(7, truncate(e.Comments, 140))
		write(8, e.ReceiptPath)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 22) // type
	_ = f.SetColWidth(sheet, "C", "D", 28) // vendor, location
	_ = f.SetColWidth(sheet, "E", "F", 12) // cost, currency
	_ = f.SetColWidth(sheet, "G", "G", 48) // comments
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(expenses),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(expenses), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
