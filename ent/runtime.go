// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nkapoor/emcmd/ent/schema"
	"github.com/nkapoor/emcmd/ent/userprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescUserID is the schema descriptor for user_id field.
	userprogressDescUserID := userprogressFields[0].Descriptor()
	// userprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprogress.UserIDValidator = userprogressDescUserID.Validators[0].(func(string) error)
	// userprogressDescLastActivity is the schema descriptor for last_activity field.
	userprogressDescLastActivity := userprogressFields[4].Descriptor()
	// userprogress.DefaultLastActivity holds the default value on creation for the last_activity field.
	userprogress.DefaultLastActivity = userprogressDescLastActivity.Default.(func() time.Time)
}
