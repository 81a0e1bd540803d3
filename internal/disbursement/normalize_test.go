package disbursement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
)

func TestPayeeName(t *testing.T) {
	type args struct {
		first      string
		last       string
		entityType string
	}

	type testCase struct {
		name string
		args args
		want string
	}

	tests := []testCase{
		{
			name: "OrgUsesLastNameOnly",
			args: args{first: "ignored", last: " Acme Media ", entityType: "ORG"},
			want: "Acme Media",
		},
		{
			name: "OrgCaseInsensitive",
			args: args{first: "", last: "Consulting LLC", entityType: "org"},
			want: "Consulting LLC",
		},
		{
			name: "PersonFirstAndLast",
			args: args{first: "Jane", last: "Doe", entityType: "IND"},
			want: "Jane Doe",
		},
		{
			name: "PersonMissingFirstFallsBackToLast",
			args: args{first: "  ", last: "Doe", entityType: "IND"},
			want: "Doe",
		},
		{
			name: "PersonAllEmpty",
			args: args{first: "", last: "", entityType: "IND"},
			want: "",
		},
		{
			name: "WhitespaceTrimmed",
			args: args{first: " Jane ", last: " Doe ", entityType: "CAN"},
			want: "Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := disbursement.PayeeName(tt.args.first, tt.args.last, tt.args.entityType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeParty(t *testing.T) {
	type testCase struct {
		name string
		raw  string
		want *string
	}

	strPtr := func(s string) *string { return &s }

	tests := []testCase{
		{name: "Empty", raw: "", want: nil},
		{name: "Whitespace", raw: "   ", want: nil},
		{name: "Democratic", raw: "Democratic", want: strPtr("D")},
		{name: "DemocraticParty", raw: "DEMOCRATIC PARTY", want: strPtr("D")},
		{name: "SingleD", raw: "d", want: strPtr("D")},
		{name: "Republican", raw: "republican-leaning", want: strPtr("R")},
		{name: "SingleR", raw: "R", want: strPtr("R")},
		{name: "ThirdPartyPassesThrough", raw: "Green", want: strPtr("Green")},
		{name: "UnknownPassesThrough", raw: "NNE", want: strPtr("NNE")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := disbursement.NormalizeParty(tt.raw)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			assert.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNormalize(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	valid := disbursement.Raw{
		CommitteeID:    "C001",
		CommitteeName:  " ABC PAC ",
		AmountCents:    10000,
		AmountValid:    true,
		Date:           &date,
		PayeeFirstName: "Jane",
		PayeeLastName:  "Doe",
		EntityType:     "IND",
		CandidateName:  " John Smith ",
		CandidateParty: " DEM ",
	}

	t.Run("ValidRecord", func(t *testing.T) {
		got, ok := disbursement.Normalize(valid)
		assert.True(t, ok)
		assert.Equal(t, "ABC PAC", got.CommitteeName)
		assert.Equal(t, "Jane Doe", got.PayeeName)
		assert.Equal(t, "John Smith", got.CandidateName)
		assert.Equal(t, "DEM", got.CandidateParty)
		assert.Equal(t, int64(10000), got.AmountCents)
		assert.Equal(t, &date, got.Date)
	})

	t.Run("ZeroAmountRejected", func(t *testing.T) {
		raw := valid
		raw.AmountCents = 0

		_, ok := disbursement.Normalize(raw)
		assert.False(t, ok)
	})

	t.Run("InvalidAmountRejected", func(t *testing.T) {
		raw := valid
		raw.AmountValid = false

		_, ok := disbursement.Normalize(raw)
		assert.False(t, ok)
	})

	t.Run("EmptyCommitteeRejected", func(t *testing.T) {
		raw := valid
		raw.CommitteeName = "   "

		_, ok := disbursement.Normalize(raw)
		assert.False(t, ok)
	})

	t.Run("EmptyPayeeRejected", func(t *testing.T) {
		raw := valid
		raw.PayeeFirstName = ""
		raw.PayeeLastName = ""

		_, ok := disbursement.Normalize(raw)
		assert.False(t, ok)
	})

	t.Run("OrgPayee", func(t *testing.T) {
		raw := valid
		raw.EntityType = "ORG"
		raw.PayeeFirstName = ""
		raw.PayeeLastName = "Acme Media"

		got, ok := disbursement.Normalize(raw)
		assert.True(t, ok)
		assert.Equal(t, "Acme Media", got.PayeeName)
	})
}
