package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/disbursement"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/importer"
)

// Service runs the one-shot ingest: parse the source file, filter and
// normalize its rows, and hand the survivors to the graph build.
type Service struct {
	importSvc *importer.Service
	graphSvc  *graph.Service
}

func NewService(importSvc *importer.Service, graphSvc *graph.Service) *Service {
	return &Service{
		importSvc: importSvc,
		graphSvc:  graphSvc,
	}
}

// Result reports what one run did, including how many rows the validity
// filter dropped.
type Result struct {
	Loaded   int
	Rejected int
	Entities int
	Edges    int
}

// Run executes the whole pipeline against one input. Rejected rows are
// counted, never errors; storage failures abort with nothing committed.
func (s *Service) Run(ctx context.Context, format importer.Format, r io.Reader) (*Result, error) {
	raws, err := s.importSvc.Import(format, r)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}

	// Keep raw and normalized rows paired: only rows that pass the filter
	// enter the audit table and the graph.
	var (
		kept    []disbursement.Raw
		records []disbursement.Normalized
	)

	for _, raw := range raws {
		rec, ok := disbursement.Normalize(raw)
		if !ok {
			continue
		}

		kept = append(kept, raw)
		records = append(records, rec)
	}

	build, err := s.graphSvc.Build(ctx, kept, records)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	return &Result{
		Loaded:   len(raws),
		Rejected: len(raws) - len(kept),
		Entities: build.Entities,
		Edges:    build.Edges,
	}, nil
}
