// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/showroom-hq/showroom/ent/chatmessage"
	"github.com/showroom-hq/showroom/ent/customdemo"
	"github.com/showroom-hq/showroom/ent/demoenvironment"
	"github.com/showroom-hq/showroom/ent/event"
	"github.com/showroom-hq/showroom/ent/schema"
	"github.com/showroom-hq/showroom/ent/timelineevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[6].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	customdemoFields := schema.CustomDemo{}.Fields()
	_ = customdemoFields
	// customdemoDescCreatedAt is the schema descriptor for created_at field.
	customdemoDescCreatedAt := customdemoFields[6].Descriptor()
	// customdemo.DefaultCreatedAt holds the default value on creation for the created_at field.
	customdemo.DefaultCreatedAt = customdemoDescCreatedAt.Default.(func() time.Time)
	// customdemoDescUpdatedAt is the schema descriptor for updated_at field.
	customdemoDescUpdatedAt := customdemoFields[7].Descriptor()
	// customdemo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customdemo.DefaultUpdatedAt = customdemoDescUpdatedAt.Default.(func() time.Time)
	// customdemo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customdemo.UpdateDefaultUpdatedAt = customdemoDescUpdatedAt.UpdateDefault.(func() time.Time)
	demoenvironmentFields := schema.DemoEnvironment{}.Fields()
	_ = demoenvironmentFields
	// demoenvironmentDescCreatedAt is the schema descriptor for created_at field.
	demoenvironmentDescCreatedAt := demoenvironmentFields[4].Descriptor()
	// demoenvironment.DefaultCreatedAt holds the default value on creation for the created_at field.
	demoenvironment.DefaultCreatedAt = demoenvironmentDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	timelineeventFields := schema.TimelineEvent{}.Fields()
	_ = timelineeventFields
	// timelineeventDescCreatedAt is the schema descriptor for created_at field.
	timelineeventDescCreatedAt := timelineeventFields[8].Descriptor()
	// timelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineevent.DefaultCreatedAt = timelineeventDescCreatedAt.Default.(func() time.Time)
}
