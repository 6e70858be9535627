// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExpensesColumns holds the columns for the "expenses" table.
	ExpensesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "trip_id", Type: field.TypeUUID, Nullable: true},
		{Name: "vendor", Type: field.TypeString, Default: "Unknown Vendor"},
		{Name: "tx_date", Type: field.TypeString, Default: ""},
		{Name: "cost", Type: field.TypeString, Default: "0", SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "location", Type: field.TypeString, Default: "Unknown Location"},
		{Name: "expense_type", Type: field.TypeString, Default: "General Expense"},
		{Name: "comments", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "receipt_path", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "ocr_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExpensesTable holds the schema information for the "expenses" table.
	ExpensesTable = &schema.Table{
		Name:       "expenses",
		Columns:    ExpensesColumns,
		PrimaryKey: []*schema.Column{ExpensesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "expense_user_id_tx_date",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[1], ExpensesColumns[4]},
			},
			{
				Name:    "expense_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExpensesColumns[1], ExpensesColumns[11]},
			},
		},
	}
	// MileageLogsColumns holds the columns for the "mileage_logs" table.
	MileageLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "trip_id", Type: field.TypeUUID, Nullable: true},
		{Name: "log_date", Type: field.TypeString, Default: ""},
		{Name: "start_odometer", Type: field.TypeString, Default: ""},
		{Name: "end_odometer", Type: field.TypeString, Default: ""},
		{Name: "start_image_path", Type: field.TypeString, Default: ""},
		{Name: "end_image_path", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "ocr_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MileageLogsTable holds the schema information for the "mileage_logs" table.
	MileageLogsTable = &schema.Table{
		Name:       "mileage_logs",
		Columns:    MileageLogsColumns,
		PrimaryKey: []*schema.Column{MileageLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mileagelog_user_id_log_date",
				Unique:  false,
				Columns: []*schema.Column{MileageLogsColumns[1], MileageLogsColumns[3]},
			},
			{
				Name:    "mileagelog_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{MileageLogsColumns[1], MileageLogsColumns[8]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[3], TasksColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExpensesTable,
		MileageLogsTable,
		TasksTable,
	}
)

func init() {
	ExpensesTable.Annotation = &entsql.Annotation{
		Table: "expenses",
	}
	MileageLogsTable.Annotation = &entsql.Annotation{
		Table: "mileage_logs",
	}
	TasksTable.Annotation = &entsql.Annotation{
		Table: "tasks",
	}
}
