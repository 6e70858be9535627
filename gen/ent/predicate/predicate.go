// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Expense is the predicate function for expense builders.
type Expense func(*sql.Selector)

// MileageLog is the predicate function for mileagelog builders.
type MileageLog func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
