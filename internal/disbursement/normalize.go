package disbursement

import "strings"

const entityTypeOrg = "ORG"

// IsOrganization reports whether the raw entity_type marks a non-person
// payee. The comparison is case-insensitive.
func IsOrganization(entityType string) bool {
	return strings.EqualFold(strings.TrimSpace(entityType), entityTypeOrg)
}

// PayeeName derives the canonical display name for a payee. Organizations
// are filed under a single "last name" column by convention, so for ORG
// rows the trimmed last name is the whole name. For everyone else the name
// is "first last" trimmed, falling back to the last name alone when the
// concatenation trims to empty.
func PayeeName(firstName, lastName, entityType string) string {
	last := strings.TrimSpace(lastName)
	if IsOrganization(entityType) {
		return last
	}

	first := strings.TrimSpace(firstName)

	full := strings.TrimSpace(first + " " + last)
	if full == "" {
		return last
	}

	return full
}

// NormalizeParty collapses the many spellings of the two major parties to
// single-letter codes. Empty input yields nil; anything unrecognized (third
// parties, junk) passes through unchanged.
func NormalizeParty(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	up := strings.ToUpper(raw)

	switch {
	case strings.Contains(up, "DEM") || up == "D":
		d := "D"
		return &d
	case strings.Contains(up, "REP") || up == "R":
		r := "R"
		return &r
	}

	return &raw
}

// Normalize cleanses one raw record. The second return value is false when
// the record fails the validity filter: missing or zero amount, empty
// committee name, or a payee name that derives to empty. Rejection is a
// data-quality decision, not an error.
func Normalize(raw Raw) (Normalized, bool) {
	if !raw.AmountValid || raw.AmountCents == 0 {
		return Normalized{}, false
	}

	committee := strings.TrimSpace(raw.CommitteeName)
	if committee == "" {
		return Normalized{}, false
	}

	payee := PayeeName(raw.PayeeFirstName, raw.PayeeLastName, raw.EntityType)
	if payee == "" {
		return Normalized{}, false
	}

	return Normalized{
		CommitteeID:    strings.TrimSpace(raw.CommitteeID),
		CommitteeName:  committee,
		PayeeName:      payee,
		CandidateID:    strings.TrimSpace(raw.CandidateID),
		CandidateName:  strings.TrimSpace(raw.CandidateName),
		CandidateParty: strings.TrimSpace(raw.CandidateParty),
		EntityType:     raw.EntityType,
		AmountCents:    raw.AmountCents,
		Date:           raw.Date,
	}, true
}
