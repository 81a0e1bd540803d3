package importer

import (
	"io"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
)

type Format string

const (
	FormatFEC Format = "fec"
)

type Importer interface {
	Parse(r io.Reader) ([]disbursement.Raw, error)
}
