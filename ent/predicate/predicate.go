// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryFact is the predicate function for masteryfact builders.
type MasteryFact func(*sql.Selector)

// MistakeRecord is the predicate function for mistakerecord builders.
type MistakeRecord func(*sql.Selector)

// PathEvent is the predicate function for pathevent builders.
type PathEvent func(*sql.Selector)

// PrereqEdge is the predicate function for prereqedge builders.
type PrereqEdge func(*sql.Selector)

// ReviewState is the predicate function for reviewstate builders.
type ReviewState func(*sql.Selector)
