// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// CustomDemo is the predicate function for customdemo builders.
type CustomDemo func(*sql.Selector)

// DemoEnvironment is the predicate function for demoenvironment builders.
type DemoEnvironment func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// TimelineEvent is the predicate function for timelineevent builders.
type TimelineEvent func(*sql.Selector)
