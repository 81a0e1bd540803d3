package fec

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
	enc "github.com/Aaditya-Golash/elections-doc-explorer/internal/encoding"
)

// Column names as they appear in FEC schedule-B style exports.
const (
	colCommitteeID      = "committee_id"
	colCommitteeName    = "committee_name"
	colAmount           = "expenditure_amount"
	colDate             = "expenditure_date"
	colPayeeFirstName   = "payee_first_name"
	colPayeeLastName    = "payee_last_name"
	colEntityType       = "entity_type"
	colCandidateID      = "candidate_id"
	colCandidateName    = "candidate_name"
	colCandidateOffice  = "candidate_office"
	colCandidateState   = "candidate_office_state"
	colCandidateDistr   = "candidate_office_district"
	colCandidateParty   = "candidate_party"
)

// ErrMissingAmountColumn is returned when no expenditure_amount column can
// be found in the header. Without amounts nothing downstream is computable,
// so this aborts before any row is processed.
var ErrMissingAmountColumn = errors.New("input has no expenditure_amount column")

// Parser reads FEC-style disbursement CSV exports into raw records.
// It locates the header row by column name, so leading preamble rows and
// unknown extra columns are tolerated.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

func (p *Parser) Parse(r io.Reader) ([]disbursement.Raw, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, ErrMissingAmountColumn
	}

	return parseRows(cols, rows[headerIdx+1:]), nil
}

// findHeader scans for the first row that carries the amount column.
// Returns nil when no row qualifies.
func findHeader(rows [][]string) (colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		if _, ok := cols[colAmount]; ok {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func parseRows(cols colIndex, rows [][]string) []disbursement.Raw {
	var raws []disbursement.Raw

	for _, row := range rows {
		if isEmptyRow(row) {
			continue
		}

		raw := disbursement.Raw{
			CommitteeID:             cell(row, cols, colCommitteeID),
			CommitteeName:           cell(row, cols, colCommitteeName),
			PayeeFirstName:          cell(row, cols, colPayeeFirstName),
			PayeeLastName:           cell(row, cols, colPayeeLastName),
			EntityType:              cell(row, cols, colEntityType),
			CandidateID:             cell(row, cols, colCandidateID),
			CandidateName:           cell(row, cols, colCandidateName),
			CandidateOffice:         cell(row, cols, colCandidateOffice),
			CandidateOfficeState:    cell(row, cols, colCandidateState),
			CandidateOfficeDistrict: cell(row, cols, colCandidateDistr),
			CandidateParty:          cell(row, cols, colCandidateParty),
		}

		if cents, err := parseAmountCents(cell(row, cols, colAmount)); err == nil {
			raw.AmountCents = cents
			raw.AmountValid = true
		}

		raw.Date = parseDate(cell(row, cols, colDate))
		raw.RawJSON = snapshot(cols, row)

		raws = append(raws, raw)
	}

	return raws
}

// parseDate accepts ISO dates with a US-style fallback. Anything else
// (including empty cells) means the row simply has no date.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02", "01/02/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	return nil
}

// snapshot serializes the full row keyed by header name, preserving the
// original cell values for the audit table.
func snapshot(cols colIndex, row []string) string {
	fields := make(map[string]string, len(cols))
	for name, idx := range cols {
		if idx < len(row) {
			fields[name] = row[idx]
		}
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}

	return string(b)
}

// cell safely gets a trimmed cell value by column name.
func cell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
