// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docstream/docstream/db/ent/schema"
	"github.com/docstream/docstream/gen/ent/document"
	"github.com/docstream/docstream/gen/ent/usagerecord"
	"github.com/docstream/docstream/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[2].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescStoredExt is the schema descriptor for stored_ext field.
	documentDescStoredExt := documentFields[4].Descriptor()
	// document.StoredExtValidator is a validator for the "stored_ext" field. It is called by the builders before save.
	document.StoredExtValidator = documentDescStoredExt.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescMonth is the schema descriptor for month field.
	usagerecordDescMonth := usagerecordFields[2].Descriptor()
	// usagerecord.MonthValidator is a validator for the "month" field. It is called by the builders before save.
	usagerecord.MonthValidator = func() func(string) error {
		validators := usagerecordDescMonth.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
			validators[3].(func(string) error),
		}
		return func(month string) error {
			for _, fn := range fns {
				if err := fn(month); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usagerecordDescCount is the schema descriptor for count field.
	usagerecordDescCount := usagerecordFields[3].Descriptor()
	// usagerecord.DefaultCount holds the default value on creation for the count field.
	usagerecord.DefaultCount = usagerecordDescCount.Default.(int)
	// usagerecord.CountValidator is a validator for the "count" field. It is called by the builders before save.
	usagerecord.CountValidator = usagerecordDescCount.Validators[0].(func(int) error)
	// usagerecordDescUpdatedAt is the schema descriptor for updated_at field.
	usagerecordDescUpdatedAt := usagerecordFields[4].Descriptor()
	// usagerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagerecord.DefaultUpdatedAt = usagerecordDescUpdatedAt.Default.(func() time.Time)
	// usagerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagerecord.UpdateDefaultUpdatedAt = usagerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usagerecordDescID is the schema descriptor for id field.
	usagerecordDescID := usagerecordFields[0].Descriptor()
	// usagerecord.DefaultID holds the default value on creation for the id field.
	usagerecord.DefaultID = usagerecordDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPlan is the schema descriptor for plan field.
	userDescPlan := userFields[3].Descriptor()
	// user.DefaultPlan holds the default value on creation for the plan field.
	user.DefaultPlan = userDescPlan.Default.(string)
	// user.PlanValidator is a validator for the "plan" field. It is called by the builders before save.
	user.PlanValidator = userDescPlan.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
