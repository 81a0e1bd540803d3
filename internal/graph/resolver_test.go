package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

func rec(committee, payee, entityType, candidate, party string) disbursement.Normalized {
	return disbursement.Normalized{
		CommitteeID:    "C-" + committee,
		CommitteeName:  committee,
		PayeeName:      payee,
		CandidateName:  candidate,
		CandidateParty: party,
		EntityType:     entityType,
		AmountCents:    100,
	}
}

func TestDeriveEntities_PassOrder(t *testing.T) {
	records := []disbursement.Normalized{
		rec("ABC PAC", "Acme Media", "ORG", "John Smith", "DEM"),
	}

	got := graph.DeriveEntities(records)
	require.Len(t, got, 3)

	// Committees come first, then payees, then candidates. With the
	// first-writer-wins upsert this order decides collisions.
	assert.Equal(t, graph.EntityCommittee, got[0].Type)
	assert.Equal(t, "ABC PAC", got[0].Name)
	assert.Equal(t, graph.EntityCompany, got[1].Type)
	assert.Equal(t, "Acme Media", got[1].Name)
	assert.Equal(t, graph.EntityCandidate, got[2].Type)
	assert.Equal(t, "John Smith", got[2].Name)
}

func TestDeriveEntities_CommitteeParty(t *testing.T) {
	type testCase struct {
		name    string
		parties []string
		want    *string
	}

	strPtr := func(s string) *string { return &s }

	tests := []testCase{
		{
			name:    "MostFrequentWins",
			parties: []string{"GREEN", "DEM", "DEM"},
			want:    strPtr("D"),
		},
		{
			name:    "TieBrokenByFirstEncountered",
			parties: []string{"REP", "DEM"},
			want:    strPtr("R"),
		},
		{
			name:    "NoPartiesMeansNil",
			parties: []string{"", ""},
			want:    nil,
		},
		{
			name:    "ThirdPartyPassesThrough",
			parties: []string{"Green", "Green", "DEM"},
			want:    strPtr("Green"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []disbursement.Normalized
			for _, p := range tt.parties {
				records = append(records, rec("ABC PAC", "Acme", "ORG", "", p))
			}

			got := graph.DeriveEntities(records)
			require.NotEmpty(t, got)
			require.Equal(t, graph.EntityCommittee, got[0].Type)

			if tt.want == nil {
				assert.Nil(t, got[0].Party)
				return
			}

			require.NotNil(t, got[0].Party)
			assert.Equal(t, *tt.want, *got[0].Party)
		})
	}
}

func TestDeriveEntities_PayeeClassification(t *testing.T) {
	records := []disbursement.Normalized{
		rec("ABC PAC", "Acme Media", "ORG", "", ""),
		rec("ABC PAC", "Jane Doe", "IND", "", ""),
		rec("ABC PAC", "Acme Media", "org", "", ""),
	}

	got := graph.DeriveEntities(records)

	var payees []graph.EntityParams
	for _, p := range got {
		if p.Type == graph.EntityCompany || p.Type == graph.EntityPerson {
			payees = append(payees, p)
		}
	}

	// "Acme Media"/ORG and "Acme Media"/org are distinct group keys but the
	// later one is a duplicate upsert; both derive type company.
	require.Len(t, payees, 3)
	assert.Equal(t, graph.EntityCompany, payees[0].Type)
	assert.Equal(t, "Acme Media", payees[0].Name)
	assert.Nil(t, payees[0].Party)
	assert.Equal(t, graph.EntityPerson, payees[1].Type)
	assert.Equal(t, "Jane Doe", payees[1].Name)
	assert.Equal(t, graph.EntityCompany, payees[2].Type)
}

func TestDeriveEntities_Candidates(t *testing.T) {
	records := []disbursement.Normalized{
		rec("ABC PAC", "Acme", "ORG", "John Smith", "Democratic"),
		rec("ABC PAC", "Acme", "ORG", "", "REP"),
		rec("ABC PAC", "Acme", "ORG", "John Smith", "Democratic"),
	}

	got := graph.DeriveEntities(records)

	var candidates []graph.EntityParams
	for _, p := range got {
		if p.Type == graph.EntityCandidate {
			candidates = append(candidates, p)
		}
	}

	// Rows without a candidate name contribute nothing; duplicates of the
	// same (id, name, party) group collapse.
	require.Len(t, candidates, 1)
	assert.Equal(t, "John Smith", candidates[0].Name)
	require.NotNil(t, candidates[0].Party)
	assert.Equal(t, "D", *candidates[0].Party)
}

func TestDeriveEntities_Empty(t *testing.T) {
	assert.Empty(t, graph.DeriveEntities(nil))
}
