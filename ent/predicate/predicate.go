// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)
