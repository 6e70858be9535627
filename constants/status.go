package constants

// TaskKind identifies the unit of background work tracked in the tasks table.
type TaskKind string

const (
	TaskKindReceiptExtraction TaskKind = "RECEIPT_EXTRACTION"
	TaskKindExport            TaskKind = "EXPORT"
)

// TaskKinds holds the allowed values for the kind column.
var TaskKinds = []string{string(TaskKindReceiptExtraction), string(TaskKindExport)}

// TaskStatus is the canonical status for task rows.
// Transitions only move forward: PENDING -> PROCESSING -> {COMPLETED|FAILED}.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusCompleted  TaskStatus = "COMPLETED" // terminal
	TaskStatusFailed     TaskStatus = "FAILED"    // terminal
)

// TaskStatuses holds the allowed values for the status column.
var TaskStatuses = []string{
	string(TaskStatusPending),
	string(TaskStatusProcessing),
	string(TaskStatusCompleted),
	string(TaskStatusFailed),
}

// RecordStatus is the extraction status carried on target records
// (expenses and mileage logs).
type RecordStatus string

const (
	RecordStatusPending    RecordStatus = "PENDING"
	RecordStatusProcessing RecordStatus = "PROCESSING"
	RecordStatusComplete   RecordStatus = "COMPLETE"
	RecordStatusOCRFailed  RecordStatus = "OCR_FAILED"
)

// RecordStatuses holds the allowed values for the target record status column.
var RecordStatuses = []string{
	string(RecordStatusPending),
	string(RecordStatusProcessing),
	string(RecordStatusComplete),
	string(RecordStatusOCRFailed),
}

// TargetKind names the record type a task reconciles into.
type TargetKind string

const (
	TargetExpense TargetKind = "expense"
	TargetMileage TargetKind = "mileage"
)

// TargetKinds holds the allowed values for the payload target kind.
var TargetKinds = []string{string(TargetExpense), string(TargetMileage)}
