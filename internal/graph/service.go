package graph

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=graph
type Repository interface {
	BeginBuild(ctx context.Context) (BuildTx, error)

	TopEntities(ctx context.Context, limit int) ([]Node, error)
	LinksAmong(ctx context.Context, ids []uuid.UUID) ([]Link, error)
	SearchEntities(ctx context.Context, query string, limit int) ([]Entity, error)
	ListEntities(ctx context.Context, limit int) ([]Entity, error)
	ListEdges(ctx context.Context, limit int) ([]EdgeDetail, error)
}

// BuildTx is one atomic graph build. Everything a run writes goes through a
// single transaction so an abort leaves no partial graph behind.
type BuildTx interface {
	Reset(ctx context.Context) error
	InsertDisbursement(ctx context.Context, raw disbursement.Raw) error
	UpsertEntity(ctx context.Context, name string, entityType EntityType, party *string) (uuid.UUID, error)
	LookupEntityID(ctx context.Context, name string) (uuid.UUID, bool, error)
	InsertEdge(ctx context.Context, edge *Edge) error
	Commit() error
	Rollback() error
}

// NameToID resolves canonical entity names to their stored ids.
type NameToID map[string]uuid.UUID

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BuildResult reports what one run wrote.
type BuildResult struct {
	Disbursements int
	Entities      int
	Edges         int
}

// Build rebuilds the whole graph from scratch inside one transaction:
// discard prior state, store the raw records for audit, resolve entities,
// then aggregate edges against the resolved name->id map.
func (s *Service) Build(ctx context.Context, raws []disbursement.Raw, records []disbursement.Normalized) (*BuildResult, error) {
	btx, err := s.repo.BeginBuild(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin build: %w", err)
	}
	defer btx.Rollback()

	if err := btx.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset store: %w", err)
	}

	for i := range raws {
		if err := btx.InsertDisbursement(ctx, raws[i]); err != nil {
			return nil, fmt.Errorf("insert disbursement: %w", err)
		}
	}

	ids, err := s.ResolveEntities(ctx, btx, records)
	if err != nil {
		return nil, err
	}

	edges, err := s.BuildEdges(ctx, btx, records, ids)
	if err != nil {
		return nil, err
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit build: %w", err)
	}

	return &BuildResult{
		Disbursements: len(raws),
		Entities:      len(ids),
		Edges:         edges,
	}, nil
}

// ResolveEntities persists every entity the records reference and returns
// the complete name->id map. It must run to completion before BuildEdges;
// edges are only drawn between resolved ids, never against partial state.
func (s *Service) ResolveEntities(ctx context.Context, btx BuildTx, records []disbursement.Normalized) (NameToID, error) {
	params := DeriveEntities(records)
	ids := make(NameToID, len(params))

	for _, p := range params {
		id, err := btx.UpsertEntity(ctx, p.Name, p.Type, p.Party)
		if err != nil {
			return nil, fmt.Errorf("upsert entity %q: %w", p.Name, err)
		}

		// The upsert is first-writer-wins, so a name that already appeared
		// in an earlier pass resolves to the same id.
		ids[p.Name] = id
	}

	return ids, nil
}

// BuildEdges aggregates the records and inserts one edge per resolvable
// (committee, payee) pair. A pair whose endpoints are missing from the map
// is skipped rather than failed; with a complete ResolveEntities pass that
// should never happen.
func (s *Service) BuildEdges(ctx context.Context, btx BuildTx, records []disbursement.Normalized, ids NameToID) (int, error) {
	inserted := 0

	for _, ep := range AggregateEdges(records) {
		sourceID, ok := ids[ep.SourceName]
		if !ok {
			continue
		}

		targetID, ok := ids[ep.TargetName]
		if !ok {
			continue
		}

		edge := &Edge{
			SourceID:   sourceID,
			TargetID:   targetID,
			Relation:   RelationSpendsTo,
			TotalCents: ep.TotalCents,
			FirstDate:  ep.FirstDate,
			LastDate:   ep.LastDate,
		}

		if err := btx.InsertEdge(ctx, edge); err != nil {
			return 0, fmt.Errorf("insert edge %s -> %s: %w", ep.SourceName, ep.TargetName, err)
		}

		inserted++
	}

	return inserted, nil
}

// View is the node/link payload served to the network UI.
type View struct {
	Nodes []Node
	Links []Link
}

// Graph returns the limit highest-flow entities and the links among them.
func (s *Service) Graph(ctx context.Context, limit int) (*View, error) {
	nodes, err := s.repo.TopEntities(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top entities: %w", err)
	}

	if len(nodes) == 0 {
		return &View{}, nil
	}

	ids := make([]uuid.UUID, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}

	links, err := s.repo.LinksAmong(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("links among nodes: %w", err)
	}

	return &View{Nodes: nodes, Links: links}, nil
}

// Search finds entities whose name contains query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]Entity, error) {
	return s.repo.SearchEntities(ctx, query, limit)
}

func (s *Service) Entities(ctx context.Context, limit int) ([]Entity, error) {
	return s.repo.ListEntities(ctx, limit)
}

func (s *Service) Edges(ctx context.Context, limit int) ([]EdgeDetail, error) {
	return s.repo.ListEdges(ctx, limit)
}
