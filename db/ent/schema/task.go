package schema

import (
	"encoding/json"
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

// Task is the durable record of one unit of background work.
type Task struct{ ent.Schema }

func (Task) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "tasks"},
	}
}

func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("kind").NotEmpty().
			Validate(utils.EnumValidator(constants.TaskKinds...)),
		field.String("status").Default(string(constants.TaskStatusPending)).
			Validate(utils.EnumValidator(constants.TaskStatuses...)),
		field.JSON("payload", json.RawMessage{}).Optional(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// listPending scans by owner, status, oldest first
		index.Fields("user_id", "status", "created_at"),
	}
}
