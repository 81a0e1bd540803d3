package importer

import (
	"fmt"
	"io"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/importer/fec"
)

type Service struct {
	fecImporter Importer
}

func NewService() *Service {
	return &Service{
		fecImporter: fec.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]disbursement.Raw, error) {
	var importer Importer

	switch format {
	case FormatFEC:
		importer = s.fecImporter
	default:
		return nil, fmt.Errorf("unknown source format: %s", format)
	}

	return importer.Parse(r)
}
