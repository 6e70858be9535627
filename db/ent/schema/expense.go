package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/db/ent/schema/utils"
)

// Expense is a target record that receipt extraction reconciles into.
// Money fields are stored as numeric strings to avoid float drift.
type Expense struct{ ent.Schema }

func (Expense) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "expenses"},
	}
}

func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		// trips are owned by the CRUD side of the app; plain FK, no edge
		field.UUID("trip_id", uuid.UUID{}).Optional().Nillable(),
		field.String("vendor").Default(constants.PlaceholderVendor),
		field.String("tx_date").Default(""),
		field.String("cost").Default("0").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").Default("USD"),
		field.String("location").Default(constants.PlaceholderLocation),
		field.String("expense_type").Default(constants.PlaceholderType),
		field.String("comments").Default("").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("receipt_path").Default(""),
		field.String("status").Default(string(constants.RecordStatusPending)).
			Validate(utils.EnumValidator(constants.RecordStatuses...)),
		field.String("ocr_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Expense) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "tx_date"),
		index.Fields("user_id", "status"),
	}
}
