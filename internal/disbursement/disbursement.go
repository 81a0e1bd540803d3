package disbursement

import "time"

// Raw is one disbursement row exactly as it appears in the source file.
// String fields keep their original values; the importer only parses the
// amount and date so downstream code does not re-parse cells.
type Raw struct {
	CommitteeID   string
	CommitteeName string

	// AmountCents is the expenditure amount in cents. AmountValid is false
	// when the source cell was empty or not numeric; such rows are kept for
	// the audit table but never enter the graph.
	AmountCents int64
	AmountValid bool

	Date *time.Time

	PayeeFirstName string
	PayeeLastName  string
	EntityType     string

	CandidateID             string
	CandidateName           string
	CandidateOffice         string
	CandidateOfficeState    string
	CandidateOfficeDistrict string
	CandidateParty          string

	// RawJSON is a serialized snapshot of the full source row, stored
	// verbatim alongside the parsed columns.
	RawJSON string
}

// Normalized is the cleansed form of a Raw record that passed the validity
// filter. All name fields are trimmed and the payee name is derived.
type Normalized struct {
	CommitteeID   string
	CommitteeName string
	PayeeName     string

	CandidateID    string
	CandidateName  string
	CandidateParty string

	EntityType  string
	AmountCents int64
	Date        *time.Time
}
