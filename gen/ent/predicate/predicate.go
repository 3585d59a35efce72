// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
