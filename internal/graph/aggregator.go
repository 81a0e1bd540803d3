package graph

import (
	"time"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
)

// EdgeParams is one aggregated (committee, payee) flow, still keyed by name.
// The service resolves names to entity ids before insertion.
type EdgeParams struct {
	SourceName string
	TargetName string
	TotalCents int64
	FirstDate  *time.Time
	LastDate   *time.Time
}

// AggregateEdges collapses the records into one EdgeParams per distinct
// (committee_name, payee_name) pair: amounts summed in cents, first/last
// dates taken over records that have a date. Input order does not change
// the aggregates, only the order of the returned slice.
func AggregateEdges(records []disbursement.Normalized) []EdgeParams {
	type key struct {
		source string
		target string
	}

	var order []key

	groups := make(map[key]*EdgeParams)

	for _, rec := range records {
		k := key{source: rec.CommitteeName, target: rec.PayeeName}

		ep, seen := groups[k]
		if !seen {
			ep = &EdgeParams{SourceName: k.source, TargetName: k.target}
			groups[k] = ep

			order = append(order, k)
		}

		ep.TotalCents += rec.AmountCents

		if rec.Date == nil {
			continue
		}

		if ep.FirstDate == nil || rec.Date.Before(*ep.FirstDate) {
			d := *rec.Date
			ep.FirstDate = &d
		}

		if ep.LastDate == nil || rec.Date.After(*ep.LastDate) {
			d := *rec.Date
			ep.LastDate = &d
		}
	}

	params := make([]EdgeParams, 0, len(order))
	for _, k := range order {
		params = append(params, *groups[k])
	}

	return params
}
