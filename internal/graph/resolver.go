package graph

import (
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
)

// EntityParams describes one entity derivation produced by DeriveEntities.
type EntityParams struct {
	Name  string
	Type  EntityType
	Party *string
}

// DeriveEntities walks the normalized records and returns the entities they
// reference, in upsert order: committees first, then payees, then
// candidates. The upsert is first-writer-wins, so this pass order decides
// the stored type and party when one name plays several roles.
func DeriveEntities(records []disbursement.Normalized) []EntityParams {
	var params []EntityParams

	params = append(params, deriveCommittees(records)...)
	params = append(params, derivePayees(records)...)
	params = append(params, deriveCandidates(records)...)

	return params
}

// deriveCommittees groups by (committee_id, committee_name) and tags each
// committee with the party its disbursements most often mention. Ties go to
// the party seen first in input order.
func deriveCommittees(records []disbursement.Normalized) []EntityParams {
	type key struct {
		id   string
		name string
	}

	var order []key

	parties := make(map[key]*partyTally)

	for _, rec := range records {
		k := key{id: rec.CommitteeID, name: rec.CommitteeName}

		tally, seen := parties[k]
		if !seen {
			tally = newPartyTally()
			parties[k] = tally

			order = append(order, k)
		}

		tally.Add(rec.CandidateParty)
	}

	params := make([]EntityParams, 0, len(order))
	for _, k := range order {
		params = append(params, EntityParams{
			Name:  k.name,
			Type:  EntityCommittee,
			Party: disbursement.NormalizeParty(parties[k].Leader()),
		})
	}

	return params
}

// derivePayees groups by (payee_name, entity_type). ORG payees become
// companies, everyone else a person. Payees carry no party.
func derivePayees(records []disbursement.Normalized) []EntityParams {
	type key struct {
		name       string
		entityType string
	}

	seen := make(map[key]struct{})

	var params []EntityParams

	for _, rec := range records {
		if rec.PayeeName == "" {
			continue
		}

		k := key{name: rec.PayeeName, entityType: rec.EntityType}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}

		entityType := EntityPerson
		if disbursement.IsOrganization(rec.EntityType) {
			entityType = EntityCompany
		}

		params = append(params, EntityParams{Name: rec.PayeeName, Type: entityType})
	}

	return params
}

// deriveCandidates groups by (candidate_id, candidate_name,
// candidate_party); rows without a candidate name contribute nothing.
func deriveCandidates(records []disbursement.Normalized) []EntityParams {
	type key struct {
		id    string
		name  string
		party string
	}

	seen := make(map[key]struct{})

	var params []EntityParams

	for _, rec := range records {
		if rec.CandidateName == "" {
			continue
		}

		k := key{id: rec.CandidateID, name: rec.CandidateName, party: rec.CandidateParty}
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}

		params = append(params, EntityParams{
			Name:  rec.CandidateName,
			Type:  EntityCandidate,
			Party: disbursement.NormalizeParty(rec.CandidateParty),
		})
	}

	return params
}

// partyTally counts non-empty party labels, remembering first-seen order
// for tie-breaking.
type partyTally struct {
	counts map[string]int
	order  []string
}

func newPartyTally() *partyTally {
	return &partyTally{counts: make(map[string]int)}
}

func (t *partyTally) Add(party string) {
	if party == "" {
		return
	}

	if _, ok := t.counts[party]; !ok {
		t.order = append(t.order, party)
	}

	t.counts[party]++
}

// Leader returns the most frequent party, first-seen winning ties, or ""
// when no record carried a party.
func (t *partyTally) Leader() string {
	leader := ""
	best := 0

	for _, party := range t.order {
		if t.counts[party] > best {
			leader = party
			best = t.counts[party]
		}
	}

	return leader
}
