// Copyright 2025 Antfly, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Feedback is one reader message about a prediction or the app.
type Feedback struct {
	ent.Schema
}

func (Feedback) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "feedback"},
	}
}

func (Feedback) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("uuid", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable().
			Comment("Public identifier returned to the client"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC time the message was stored"),
		field.Text("message").
			NotEmpty().
			Comment("Trimmed message text"),
		field.String("prediction_id").
			Default("").
			Comment("Prediction the message refers to, if any"),
		field.String("label").
			Default("").
			Comment("Grade the reader expected, if given"),
	}
}

func (Feedback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
