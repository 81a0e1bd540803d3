package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(s scanner) (graph.Entity, error) {
	var e graph.Entity

	var party, notes sql.NullString

	if err := s.Scan(&e.ID, &e.Name, &e.Type, &party, &notes); err != nil {
		return graph.Entity{}, err
	}

	if party.Valid {
		e.Party = &party.String
	}

	if notes.Valid {
		e.Notes = &notes.String
	}

	return e, nil
}

const selectEntityColumns = `id, name, type, party, notes`

// BeginBuild opens the transaction a graph build runs inside. All build
// writes go through the returned BuildTx; nothing is visible to readers
// until Commit.
func (s *Store) BeginBuild(ctx context.Context) (graph.BuildTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning build tx: %w", err)
	}

	return &buildTx{tx: tx}, nil
}

type buildTx struct {
	tx *sql.Tx
}

func (btx *buildTx) Commit() error   { return btx.tx.Commit() }
func (btx *buildTx) Rollback() error { return btx.tx.Rollback() }

// Reset discards every prior row. Each run rebuilds the graph from scratch;
// there is no partial-run resume.
func (btx *buildTx) Reset(ctx context.Context) error {
	query := `TRUNCATE raw_disbursements, edges, entities RESTART IDENTITY CASCADE`

	if _, err := btx.tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}

	return nil
}

func (btx *buildTx) InsertDisbursement(ctx context.Context, raw disbursement.Raw) error {
	query := `
		INSERT INTO raw_disbursements (
			committee_id, committee_name,
			expenditure_amount_cents, expenditure_date,
			payee_first_name, payee_last_name, entity_type,
			candidate_id, candidate_name, candidate_office,
			candidate_office_state, candidate_office_district, candidate_party,
			raw_json
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	amount := sql.NullInt64{Int64: raw.AmountCents, Valid: raw.AmountValid}

	_, err := btx.tx.ExecContext(ctx, query,
		raw.CommitteeID,
		raw.CommitteeName,
		amount,
		raw.Date,
		raw.PayeeFirstName,
		raw.PayeeLastName,
		raw.EntityType,
		raw.CandidateID,
		raw.CandidateName,
		raw.CandidateOffice,
		raw.CandidateOfficeState,
		raw.CandidateOfficeDistrict,
		raw.CandidateParty,
		raw.RawJSON,
	)
	if err != nil {
		return fmt.Errorf("inserting disbursement: %w", err)
	}

	return nil
}

// UpsertEntity inserts the entity unless its name is already taken, and
// returns the id either way. An existing row keeps its type and party; the
// first writer wins.
func (btx *buildTx) UpsertEntity(ctx context.Context, name string, entityType graph.EntityType, party *string) (uuid.UUID, error) {
	query := `
		INSERT INTO entities (name, type, party)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`

	var id uuid.UUID

	err := btx.tx.QueryRowContext(ctx, query, name, entityType, party).Scan(&id)
	if err == nil {
		return id, nil
	}

	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("upserting entity: %w", err)
	}

	// Conflict path: the name exists, fetch its id.
	id, ok, err := btx.LookupEntityID(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}

	if !ok {
		return uuid.Nil, fmt.Errorf("entity %q vanished during upsert", name)
	}

	return id, nil
}

func (btx *buildTx) LookupEntityID(ctx context.Context, name string) (uuid.UUID, bool, error) {
	var id uuid.UUID

	err := btx.tx.QueryRowContext(ctx, `SELECT id FROM entities WHERE name = $1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return uuid.Nil, false, nil
	}

	if err != nil {
		return uuid.Nil, false, fmt.Errorf("looking up entity id: %w", err)
	}

	return id, true, nil
}

func (btx *buildTx) InsertEdge(ctx context.Context, edge *graph.Edge) error {
	query := `
		INSERT INTO edges (
			source_entity_id, target_entity_id,
			relation_type, total_amount_cents, first_date, last_date
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := btx.tx.QueryRowContext(ctx, query,
		edge.SourceID,
		edge.TargetID,
		edge.Relation,
		edge.TotalCents,
		edge.FirstDate,
		edge.LastDate,
	).Scan(&edge.ID)
	if err != nil {
		return fmt.Errorf("inserting edge: %w", err)
	}

	return nil
}

// TopEntities returns the limit entities with the highest combined
// incoming and outgoing flow.
func (s *Store) TopEntities(ctx context.Context, limit int) ([]graph.Node, error) {
	query := `
		SELECT
			e.id, e.name, e.type,
			COALESCE((SELECT SUM(total_amount_cents) FROM edges WHERE target_entity_id = e.id), 0) AS total_in,
			COALESCE((SELECT SUM(total_amount_cents) FROM edges WHERE source_entity_id = e.id), 0) AS total_out
		FROM entities e
		ORDER BY total_in + total_out DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying top entities: %w", err)
	}
	defer rows.Close()

	var nodes []graph.Node

	for rows.Next() {
		var n graph.Node
		if err := rows.Scan(&n.ID, &n.Name, &n.Type, &n.TotalInCents, &n.TotalOutCents); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}

		nodes = append(nodes, n)
	}

	return nodes, rows.Err()
}

// LinksAmong returns edges whose both endpoints are in ids.
func (s *Store) LinksAmong(ctx context.Context, ids []uuid.UUID) ([]graph.Link, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	in := strings.Join(placeholders, ", ")

	query := fmt.Sprintf(`
		SELECT id, source_entity_id, target_entity_id, total_amount_cents
		FROM edges
		WHERE source_entity_id IN (%s) AND target_entity_id IN (%s)
	`, in, in)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	var links []graph.Link

	for rows.Next() {
		var l graph.Link
		if err := rows.Scan(&l.ID, &l.SourceID, &l.TargetID, &l.TotalCents); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}

		links = append(links, l)
	}

	return links, rows.Err()
}

func (s *Store) SearchEntities(ctx context.Context, query string, limit int) ([]graph.Entity, error) {
	q := `SELECT ` + selectEntityColumns + `
		FROM entities
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, q, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching entities: %w", err)
	}
	defer rows.Close()

	return collectEntities(rows)
}

func (s *Store) ListEntities(ctx context.Context, limit int) ([]graph.Entity, error) {
	q := `SELECT ` + selectEntityColumns + `
		FROM entities
		ORDER BY name ASC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	return collectEntities(rows)
}

func collectEntities(rows *sql.Rows) ([]graph.Entity, error) {
	var entities []graph.Entity

	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entity: %w", err)
		}

		entities = append(entities, e)
	}

	return entities, rows.Err()
}

func (s *Store) ListEdges(ctx context.Context, limit int) ([]graph.EdgeDetail, error) {
	query := `
		SELECT ed.id, src.name, tgt.name, ed.total_amount_cents, ed.first_date, ed.last_date
		FROM edges ed
		JOIN entities src ON ed.source_entity_id = src.id
		JOIN entities tgt ON ed.target_entity_id = tgt.id
		ORDER BY ed.total_amount_cents DESC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing edges: %w", err)
	}
	defer rows.Close()

	var edges []graph.EdgeDetail

	for rows.Next() {
		var e graph.EdgeDetail
		if err := rows.Scan(&e.ID, &e.SourceName, &e.TargetName, &e.TotalCents, &e.FirstDate, &e.LastDate); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}

		edges = append(edges, e)
	}

	return edges, rows.Err()
}
