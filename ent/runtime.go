// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/antflydb/litgrade/ent/feedback"
	"github.com/antflydb/litgrade/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescUUID is the schema descriptor for uuid field.
	feedbackDescUUID := feedbackFields[0].Descriptor()
	// feedback.DefaultUUID holds the default value on creation for the uuid field.
	feedback.DefaultUUID = feedbackDescUUID.Default.(func() uuid.UUID)
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[1].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	// feedbackDescMessage is the schema descriptor for message field.
	feedbackDescMessage := feedbackFields[2].Descriptor()
	// feedback.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	feedback.MessageValidator = feedbackDescMessage.Validators[0].(func(string) error)
	// feedbackDescPredictionID is the schema descriptor for prediction_id field.
	feedbackDescPredictionID := feedbackFields[3].Descriptor()
	// feedback.DefaultPredictionID holds the default value on creation for the prediction_id field.
	feedback.DefaultPredictionID = feedbackDescPredictionID.Default.(string)
	// feedbackDescLabel is the schema descriptor for label field.
	feedbackDescLabel := feedbackFields[4].Descriptor()
	// feedback.DefaultLabel holds the default value on creation for the label field.
	feedback.DefaultLabel = feedbackDescLabel.Default.(string)
}
