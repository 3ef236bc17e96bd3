package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting is a key/value pair of platform configuration: the API key
// and the three logo slots. Values may be large (embedded image data).
type Setting struct {
	ent.Schema
}

func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Setting name, e.g. api_key, custom_logo"),
		field.Text("value").
			Comment("Setting value; logos are data: URIs"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
