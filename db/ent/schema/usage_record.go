package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var (
	reMonth     = regexp.MustCompile(`^\d{4}-\d{2}$`)
	errBadMonth = errors.New("month must be YYYY-MM")
)

type UsageRecord struct{ ent.Schema }

func (UsageRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "usage"},
	}
}

func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("month").NotEmpty().MinLen(7).MaxLen(7).
			SchemaType(map[string]string{dialect.Postgres: "char(7)"}).
			Validate(func(s string) error {
				if reMonth.MatchString(s) {
					return nil
				}
				return errBadMonth
			}),
		field.Int("count").NonNegative().Default(0),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (UsageRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("usage").
			Field("user_id").
			Required().
			Unique(),
	}
}

func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "month").Unique(),
	}
}
