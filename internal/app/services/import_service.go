package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nkumar/talentpool/internal/ingest"
	"github.com/nkumar/talentpool/internal/pkg/spreadsheet"
)

// ImportService defines the interface for bulk spreadsheet ingestion
type ImportService interface {
	Run(ctx context.Context, dir string, dryRun bool) (*ingest.RunReport, error)
}

// importServiceImpl implements ImportService
type importServiceImpl struct {
	engine *ingest.Engine
	logger zerolog.Logger
}

// NewImportService creates a new ImportService
func NewImportService(engine *ingest.Engine, logger zerolog.Logger) ImportService {
	return &importServiceImpl{
		engine: engine,
		logger: logger,
	}
}

// Run walks dir for tabular files and feeds every data row through the
// ingestion engine. A row failure never aborts the run; an unreadable file
// is counted against its rows and the run moves on. Only an invalid
// directory or a cancelled context ends the run early.
func (s *importServiceImpl) Run(ctx context.Context, dir string, dryRun bool) (*ingest.RunReport, error) {
	files, err := spreadsheet.Discover(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering source files: %w", err)
	}

	report := ingest.NewRunReport()
	s.logger.Info().
		Str("runID", report.RunID.String()).
		Str("dir", dir).
		Int("files", len(files)).
		Bool("dryRun", dryRun).
		Msg("import run started")

	if len(files) == 0 {
		s.logger.Warn().Str("dir", dir).Msg("no tabular files found")
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.processFile(ctx, report, path, dryRun); err != nil {
			return report, err
		}
	}

	sum := report.Summary()
	s.logger.Info().
		Str("runID", report.RunID.String()).
		Int("processed", sum.Processed).
		Int("imported", sum.Imported).
		Int("skipped", sum.Skipped).
		Int("errored", sum.Errored).
		Msg("import run finished")

	return report, nil
}

func (s *importServiceImpl) processFile(ctx context.Context, report *ingest.RunReport, path string, dryRun bool) error {
	sheets, err := spreadsheet.Open(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("skipping unreadable file")
		return nil
	}

	for _, sheet := range sheets {
		if len(sheet.Header) == 0 {
			s.logger.Warn().Str("file", path).Str("sheet", sheet.Name).Msg("sheet has no header row")
			continue
		}
		for i, cells := range sheet.Rows {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := ingest.NewRawRecord(sheet.Header, cells)
			rep := s.engine.ProcessRecord(ctx, rec, dryRun)
			// header occupies row 1; data rows start at 2
			report.Add(path, sheet.Name, i+2, rep)
		}
	}

	return nil
}
