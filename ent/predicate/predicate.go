// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Feedback is the predicate function for feedback builders.
type Feedback func(*sql.Selector)
