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

// MileageLog is a target record populated from odometer photos.
type MileageLog struct{ ent.Schema }

func (MileageLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "mileage_logs"},
	}
}

func (MileageLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("trip_id", uuid.UUID{}).Optional().Nillable(),
		field.String("log_date").Default(""),
		// readings stay empty until extracted or typed in; "" is "not set"
		field.String("start_odometer").Default(""),
		field.String("end_odometer").Default(""),
		field.String("start_image_path").Default(""),
		field.String("end_image_path").Default(""),
		field.String("status").Default(string(constants.RecordStatusPending)).
			Validate(utils.EnumValidator(constants.RecordStatuses...)),
		field.String("ocr_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (MileageLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "log_date"),
		index.Fields("user_id", "status"),
	}
}
