// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FeedbackColumns holds the columns for the "feedback" table.
	FeedbackColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeUUID, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "prediction_id", Type: field.TypeString, Default: ""},
		{Name: "label", Type: field.TypeString, Default: ""},
	}
	// FeedbackTable holds the schema information for the "feedback" table.
	FeedbackTable = &schema.Table{
		Name:       "feedback",
		Columns:    FeedbackColumns,
		PrimaryKey: []*schema.Column{FeedbackColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FeedbackTable,
	}
)

func init() {
	FeedbackTable.Annotation = &entsql.Annotation{
		Table: "feedback",
	}
}
