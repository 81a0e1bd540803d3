package graph

import (
	"github.com/google/uuid"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

type nodeResponse struct {
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Type     graph.EntityType `json:"type"`
	TotalIn  int64            `json:"total_in"`
	TotalOut int64            `json:"total_out"`
}

type linkResponse struct {
	ID     uuid.UUID `json:"id"`
	Source uuid.UUID `json:"source"`
	Target uuid.UUID `json:"target"`
	Amount int64     `json:"amount"`
}

type graphResponse struct {
	Nodes []nodeResponse `json:"nodes"`
	Links []linkResponse `json:"links"`
}

type entityResponse struct {
	ID    uuid.UUID        `json:"id"`
	Name  string           `json:"name"`
	Type  graph.EntityType `json:"type"`
	Party *string          `json:"party,omitempty"`
}

func toGraphResponse(view *graph.View) graphResponse {
	resp := graphResponse{
		Nodes: make([]nodeResponse, 0, len(view.Nodes)),
		Links: make([]linkResponse, 0, len(view.Links)),
	}

	for _, n := range view.Nodes {
		resp.Nodes = append(resp.Nodes, nodeResponse{
			ID:       n.ID,
			Name:     n.Name,
			Type:     n.Type,
			TotalIn:  n.TotalInCents,
			TotalOut: n.TotalOutCents,
		})
	}

	for _, l := range view.Links {
		resp.Links = append(resp.Links, linkResponse{
			ID:     l.ID,
			Source: l.SourceID,
			Target: l.TargetID,
			Amount: l.TotalCents,
		})
	}

	return resp
}

func toEntityResponses(entities []graph.Entity) []entityResponse {
	resp := make([]entityResponse, 0, len(entities))
	for _, e := range entities {
		resp = append(resp, entityResponse{
			ID:    e.ID,
			Name:  e.Name,
			Type:  e.Type,
			Party: e.Party,
		})
	}

	return resp
}
