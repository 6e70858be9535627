package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/entity"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/storage"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/vision"
)

type fakeTaskRepo struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*entity.Task)}
}

func (r *fakeTaskRepo) add(userID uuid.UUID, kind constants.TaskKind, payload entity.TaskPayload) *entity.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, _ := json.Marshal(payload)
	t := &entity.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Status:    constants.TaskStatusPending,
		Payload:   raw,
		CreatedAt: time.Now(),
	}
	r.tasks[t.ID] = t
	return t
}

func (r *fakeTaskRepo) Create(_ context.Context, userID uuid.UUID, kind constants.TaskKind, payload entity.TaskPayload) (*entity.Task, error) {
	return r.add(userID, kind, payload), nil
}

func (r *fakeTaskRepo) Claim(_ context.Context, taskID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok || t.Status != constants.TaskStatusPending {
		return false, nil
	}
	t.Status = constants.TaskStatusProcessing
	return true, nil
}

func (r *fakeTaskRepo) Complete(_ context.Context, taskID uuid.UUID, result json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return errors.New("task not found")
	}
	if t.Status != constants.TaskStatusProcessing {
		return fmt.Errorf("task is %s, not PROCESSING", t.Status)
	}
	t.Status = constants.TaskStatusCompleted
	t.Result = result
	return nil
}

func (r *fakeTaskRepo) Fail(_ context.Context, taskID uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return errors.New("task not found")
	}
	t.Status = constants.TaskStatusFailed
	t.ErrorMessage = &message
	return nil
}

func (r *fakeTaskRepo) ListPending(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.UserID == userID && t.Status == constants.TaskStatusPending {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTaskRepo) List(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, taskID uuid.UUID) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return nil, errors.New("task not found")
	}
	return t, nil
}

type fakeExpenseRepo struct {
	mu       sync.Mutex
	expenses map[uuid.UUID]*entity.Expense
	applied  map[uuid.UUID]map[string]string
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{
		expenses: make(map[uuid.UUID]*entity.Expense),
		applied:  make(map[uuid.UUID]map[string]string),
	}
}

func (r *fakeExpenseRepo) add(e *entity.Expense) *entity.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses[e.ID] = e
	return e
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) (*entity.Expense, error) {
	return r.add(e), nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return nil, errors.New("expense not found")
	}
	return e, nil
}

func (r *fakeExpenseRepo) List(_ context.Context, userID uuid.UUID, _, _ string) ([]*entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.expenses[id]; ok {
		e.Status = constants.RecordStatusProcessing
	}
	return nil
}

func (r *fakeExpenseRepo) ApplyExtraction(_ context.Context, id uuid.UUID, fields map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return errors.New("expense not found")
	}
	r.applied[id] = fields
	if v, ok := fields["vendor"]; ok {
		e.Vendor = v
	}
	if v, ok := fields["cost"]; ok {
		e.Cost = v
	}
	if v, ok := fields["tx_date"]; ok {
		e.TxDate = v
	}
	e.Status = constants.RecordStatusComplete
	e.OCRError = nil
	return nil
}

func (r *fakeExpenseRepo) MarkOCRFailed(_ context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.expenses[id]
	if !ok {
		return errors.New("expense not found")
	}
	e.Status = constants.RecordStatusOCRFailed
	e.OCRError = &message
	return nil
}

type fakeMileageRepo struct {
	mu   sync.Mutex
	logs map[uuid.UUID]*entity.MileageLog
}

func newFakeMileageRepo() *fakeMileageRepo {
	return &fakeMileageRepo{logs: make(map[uuid.UUID]*entity.MileageLog)}
}

func (r *fakeMileageRepo) add(l *entity.MileageLog) *entity.MileageLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.logs[l.ID] = l
	return l
}

func (r *fakeMileageRepo) Create(_ context.Context, l *entity.MileageLog) (*entity.MileageLog, error) {
	return r.add(l), nil
}

func (r *fakeMileageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MileageLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.logs[id]
	if !ok {
		return nil, errors.New("mileage log not found")
	}
	return l, nil
}

func (r *fakeMileageRepo) SetImagePath(_ context.Context, id uuid.UUID, field, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.logs[id]
	if field == "start" {
		l.StartImagePath = path
	} else {
		l.EndImagePath = path
	}
	return nil
}

func (r *fakeMileageRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs[id].Status = constants.RecordStatusProcessing
	return nil
}

func (r *fakeMileageRepo) ApplyReading(_ context.Context, id uuid.UUID, field, reading string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.logs[id]
	if field == "start" {
		l.StartOdometer = reading
	} else {
		l.EndOdometer = reading
	}
	l.Status = constants.RecordStatusComplete
	l.OCRError = nil
	return nil
}

func (r *fakeMileageRepo) MarkComplete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.logs[id]
	l.Status = constants.RecordStatusComplete
	l.OCRError = nil
	return nil
}

func (r *fakeMileageRepo) MarkOCRFailed(_ context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := r.logs[id]
	l.Status = constants.RecordStatusOCRFailed
	l.OCRError = &message
	return nil
}

type fakeGateway struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{objects: make(map[string][]byte)}
}

func (g *fakeGateway) Upload(_ context.Context, objectPath string, data []byte, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.objects[objectPath] = data
	return objectPath, nil
}

func (g *fakeGateway) Download(_ context.Context, objectPath string) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	data, ok := g.objects[objectPath]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("object %s not found", objectPath)
	}
	return data, nil
}

func (g *fakeGateway) Delete(_ context.Context, objectPath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.objects, objectPath)
	return nil
}

func (g *fakeGateway) SignedURL(_ context.Context, objectPath string, _ time.Duration) (string, error) {
	return "https://example.test/" + objectPath, nil
}

var _ storage.Gateway = (*fakeGateway)(nil)

type fakeExtractor struct {
	result vision.Result
	err    error
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, _ vision.Request) (vision.Result, error) {
	f.calls++
	return f.result, f.err
}

type fakeExporter struct {
	path string
	err  error
}

func (f *fakeExporter) Run(_ context.Context, _ uuid.UUID, _ entity.TaskPayload) (string, error) {
	return f.path, f.err
}

type fixture struct {
	tasks    *fakeTaskRepo
	expenses *fakeExpenseRepo
	mileage  *fakeMileageRepo
	store    *fakeGateway
	vision   *fakeExtractor
	exporter *fakeExporter
	d        *Dispatcher
}

func newFixture(extractor *fakeExtractor) *fixture {
	f := &fixture{
		tasks:    newFakeTaskRepo(),
		expenses: newFakeExpenseRepo(),
		mileage:  newFakeMileageRepo(),
		store:    newFakeGateway(),
		vision:   extractor,
		exporter: &fakeExporter{path: "exports/u/expenses.xlsx"},
	}
	f.d = NewDispatcher(nil, f.tasks, f.expenses, f.mileage, f.store, f.vision, f.exporter)
	return f
}

func TestProcessNextNoTasks(t *testing.T) {
	f := newFixture(&fakeExtractor{})
	outcome, err := f.d.ProcessNext(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if !outcome.NoTask {
		t.Error("expected NoTask outcome for an empty registry")
	}
}

func TestProcessNextReceiptSuccess(t *testing.T) {
	f := newFixture(&fakeExtractor{result: vision.Result{
		RawText: `{"vendor":"City Cabs"}`,
		Fields: map[string]any{
			"vendor":   "City Cabs",
			"cost":     json.Number("45.5"),
			"date":     "2024-03-15",
			"type":     "Transportation",
			"location": "New York, NY",
		},
	}})
	userID := uuid.New()
	exp := f.expenses.add(&entity.Expense{
		UserID:      userID,
		Vendor:      constants.PlaceholderVendor,
		Cost:        "0",
		Currency:    "USD",
		Location:    constants.PlaceholderLocation,
		ExpenseType: constants.PlaceholderType,
		ReceiptPath: "receipts/u/r.jpg",
		Status:      constants.RecordStatusPending,
	})
	_, _ = f.store.Upload(context.Background(), "receipts/u/r.jpg", []byte{0x1}, "image/jpeg")
	task := f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind: constants.TargetExpense,
		TargetID:   exp.ID,
		ImagePath:  "receipts/u/r.jpg",
		MimeType:   "image/jpeg",
		Template:   constants.TemplateGeneral,
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if outcome.ErrorMessage != "" {
		t.Fatalf("outcome error = %q, want success", outcome.ErrorMessage)
	}
	if outcome.TaskID != task.ID || outcome.TargetID != exp.ID {
		t.Errorf("outcome ids = %v/%v, want %v/%v", outcome.TaskID, outcome.TargetID, task.ID, exp.ID)
	}

	got, _ := f.tasks.GetByID(context.Background(), task.ID)
	if got.Status != constants.TaskStatusCompleted {
		t.Errorf("task status = %s, want COMPLETED", got.Status)
	}
	var result map[string]any
	if err := json.Unmarshal(got.Result, &result); err != nil {
		t.Fatalf("task result is not JSON: %v", err)
	}
	if _, ok := result["fields"]; !ok {
		t.Error("task result missing extracted fields")
	}

	if exp.Status != constants.RecordStatusComplete {
		t.Errorf("expense status = %s, want COMPLETE", exp.Status)
	}
	if exp.Vendor != "City Cabs" {
		t.Errorf("vendor = %q, want City Cabs", exp.Vendor)
	}
	if f.expenses.applied[exp.ID]["cost"] != "45.50" {
		t.Errorf("applied cost = %q, want 45.50", f.expenses.applied[exp.ID]["cost"])
	}
}

func TestProcessNextExtractionFailureIsOutcome(t *testing.T) {
	f := newFixture(&fakeExtractor{err: errors.New("openai status 401")})
	userID := uuid.New()
	exp := f.expenses.add(&entity.Expense{
		UserID:      userID,
		Vendor:      constants.PlaceholderVendor,
		ReceiptPath: "receipts/u/r.jpg",
		Status:      constants.RecordStatusPending,
	})
	_, _ = f.store.Upload(context.Background(), "receipts/u/r.jpg", []byte{0x1}, "image/jpeg")
	task := f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind: constants.TargetExpense,
		TargetID:   exp.ID,
		ImagePath:  "receipts/u/r.jpg",
		Template:   constants.TemplateGeneral,
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("extraction failure must not be a dispatch error, got: %v", err)
	}
	if !strings.Contains(outcome.ErrorMessage, "status 401") {
		t.Errorf("outcome error = %q, want the provider failure", outcome.ErrorMessage)
	}

	got, _ := f.tasks.GetByID(context.Background(), task.ID)
	if got.Status != constants.TaskStatusFailed {
		t.Errorf("task status = %s, want FAILED", got.Status)
	}
	if got.ErrorMessage == nil || !strings.Contains(*got.ErrorMessage, "status 401") {
		t.Error("task error message must carry the failure")
	}
	if exp.Status != constants.RecordStatusOCRFailed {
		t.Errorf("expense status = %s, want OCR_FAILED", exp.Status)
	}
	if exp.OCRError == nil {
		t.Error("expense must record the OCR error")
	}
}

func TestProcessNextMissingImageFailsTask(t *testing.T) {
	f := newFixture(&fakeExtractor{})
	userID := uuid.New()
	exp := f.expenses.add(&entity.Expense{UserID: userID, Status: constants.RecordStatusPending})
	f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind: constants.TargetExpense,
		TargetID:   exp.ID,
		ImagePath:  "receipts/u/missing.jpg",
		Template:   constants.TemplateGeneral,
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if outcome.ErrorMessage == "" {
		t.Fatal("expected a failure outcome for a missing image")
	}
	if f.vision.calls != 0 {
		t.Errorf("extractor was called %d times, want 0", f.vision.calls)
	}
	if exp.Status != constants.RecordStatusOCRFailed {
		t.Errorf("expense status = %s, want OCR_FAILED", exp.Status)
	}
}

func TestProcessNextMissingTargetFailsTaskOnly(t *testing.T) {
	f := newFixture(&fakeExtractor{})
	userID := uuid.New()
	task := f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind: constants.TargetExpense,
		TargetID:   uuid.New(), // no such expense
		ImagePath:  "receipts/u/r.jpg",
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if !strings.Contains(outcome.ErrorMessage, "target not found") {
		t.Errorf("outcome error = %q", outcome.ErrorMessage)
	}
	got, _ := f.tasks.GetByID(context.Background(), task.ID)
	if got.Status != constants.TaskStatusFailed {
		t.Errorf("task status = %s, want FAILED", got.Status)
	}
}

func TestProcessNextOdometerReading(t *testing.T) {
	f := newFixture(&fakeExtractor{result: vision.Result{
		RawText: `{"reading": 45231.5}`,
		Fields:  map[string]any{"reading": 45231.5},
	}})
	userID := uuid.New()
	log := f.mileage.add(&entity.MileageLog{UserID: userID, Status: constants.RecordStatusPending})
	_, _ = f.store.Upload(context.Background(), "odometer/u/o.jpg", []byte{0x1}, "image/jpeg")
	f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind:    constants.TargetMileage,
		TargetID:      log.ID,
		ImagePath:     "odometer/u/o.jpg",
		Template:      constants.TemplateOdometer,
		OdometerField: "start",
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if outcome.ErrorMessage != "" {
		t.Fatalf("outcome error = %q", outcome.ErrorMessage)
	}
	if log.StartOdometer != "45231.5" {
		t.Errorf("start odometer = %q, want 45231.5", log.StartOdometer)
	}
	if log.Status != constants.RecordStatusComplete {
		t.Errorf("log status = %s, want COMPLETE", log.Status)
	}
}

func TestProcessNextOdometerKeepsManualReading(t *testing.T) {
	f := newFixture(&fakeExtractor{result: vision.Result{
		Fields: map[string]any{"reading": 99999.0},
	}})
	userID := uuid.New()
	log := f.mileage.add(&entity.MileageLog{
		UserID:        userID,
		StartOdometer: "45000",
		Status:        constants.RecordStatusPending,
	})
	_, _ = f.store.Upload(context.Background(), "odometer/u/o.jpg", []byte{0x1}, "image/jpeg")
	f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{
		TargetKind:    constants.TargetMileage,
		TargetID:      log.ID,
		ImagePath:     "odometer/u/o.jpg",
		Template:      constants.TemplateOdometer,
		OdometerField: "start",
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if outcome.ErrorMessage != "" {
		t.Fatalf("outcome error = %q", outcome.ErrorMessage)
	}
	if log.StartOdometer != "45000" {
		t.Errorf("start odometer = %q, the manual reading must survive", log.StartOdometer)
	}
	if log.Status != constants.RecordStatusComplete {
		t.Errorf("log status = %s, want COMPLETE", log.Status)
	}
}

func TestProcessNextMalformedPayload(t *testing.T) {
	f := newFixture(&fakeExtractor{})
	userID := uuid.New()
	task := f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{})
	f.tasks.mu.Lock()
	f.tasks.tasks[task.ID].Payload = json.RawMessage(`{not json`)
	f.tasks.mu.Unlock()

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if !strings.Contains(outcome.ErrorMessage, "malformed task payload") {
		t.Errorf("outcome error = %q", outcome.ErrorMessage)
	}
	got, _ := f.tasks.GetByID(context.Background(), task.ID)
	if got.Status != constants.TaskStatusFailed {
		t.Errorf("task status = %s, want FAILED", got.Status)
	}
}

func TestProcessNextClaimSkipsTaken(t *testing.T) {
	f := newFixture(&fakeExtractor{result: vision.Result{
		Fields: map[string]any{"vendor": "City Cabs"},
	}})
	userID := uuid.New()

	// already claimed elsewhere
	taken := f.tasks.add(userID, constants.TaskKindReceiptExtraction, entity.TaskPayload{})
	f.tasks.mu.Lock()
	f.tasks.tasks[taken.ID].Status = constants.TaskStatusProcessing
	f.tasks.mu.Unlock()

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if !outcome.NoTask {
		t.Error("a PROCESSING task must not be claimable")
	}
}

func TestProcessNextExport(t *testing.T) {
	f := newFixture(&fakeExtractor{})
	userID := uuid.New()
	task := f.tasks.add(userID, constants.TaskKindExport, entity.TaskPayload{
		FromDate: "2024-01-01", ToDate: "2024-12-31",
	})

	outcome, err := f.d.ProcessNext(context.Background(), userID)
	if err != nil {
		t.Fatalf("ProcessNext returned error: %v", err)
	}
	if outcome.ErrorMessage != "" {
		t.Fatalf("outcome error = %q", outcome.ErrorMessage)
	}
	got, _ := f.tasks.GetByID(context.Background(), task.ID)
	if got.Status != constants.TaskStatusCompleted {
		t.Errorf("task status = %s, want COMPLETED", got.Status)
	}
	if !strings.Contains(string(got.Result), "expenses.xlsx") {
		t.Errorf("task result = %s, want the export path", got.Result)
	}
}
