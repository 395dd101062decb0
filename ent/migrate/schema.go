// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "completed_cases", Type: field.TypeJSON, Nullable: true},
		{Name: "assessment_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions_studied", Type: field.TypeJSON, Nullable: true},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "stats", Type: field.TypeJSON},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		UserProgressesTable,
	}
)

func init() {
}
