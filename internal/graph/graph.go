package graph

import (
	"time"

	"github.com/google/uuid"
)

// EntityType classifies a node in the spending graph.
type EntityType string

const (
	EntityCommittee EntityType = "committee"
	EntityPerson    EntityType = "person"
	EntityCompany   EntityType = "company"
	EntityCandidate EntityType = "candidate"
)

// RelationType labels an edge. Disbursement aggregation only produces
// spends_to edges; the column exists so other relation kinds can share the
// table later.
type RelationType string

const (
	RelationSpendsTo RelationType = "spends_to"
)

// Entity is a deduplicated node: a committee, payee, or candidate. Name is
// the identity key; an entity is created on the first occurrence of its
// name and never rewritten within a run.
type Entity struct {
	ID    uuid.UUID
	Name  string
	Type  EntityType
	Party *string
	Notes *string
}

// Edge summarizes all disbursements from one entity to another: the cent
// total and the date range over transactions that carried a date.
type Edge struct {
	ID         uuid.UUID
	SourceID   uuid.UUID
	TargetID   uuid.UUID
	Relation   RelationType
	TotalCents int64
	FirstDate  *time.Time
	LastDate   *time.Time
}

// Node is the read-model view of an entity with its aggregate in/out flow,
// used by the graph endpoint.
type Node struct {
	ID            uuid.UUID
	Name          string
	Type          EntityType
	TotalInCents  int64
	TotalOutCents int64
}

// Link is the read-model view of an edge between two returned nodes.
type Link struct {
	ID         uuid.UUID
	SourceID   uuid.UUID
	TargetID   uuid.UUID
	TotalCents int64
}

// EdgeDetail is an edge joined with its endpoint names, for listings.
type EdgeDetail struct {
	ID         uuid.UUID
	SourceName string
	TargetName string
	TotalCents int64
	FirstDate  *time.Time
	LastDate   *time.Time
}
