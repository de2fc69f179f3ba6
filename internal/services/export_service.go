package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/practice-quiz/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const (
	resultsSheet = "Results"
	summarySheet = "Summary"
)

type exportService struct {
	repo     repositories.Repository
	logger   *slog.Logger
	opLogger *ServiceLogger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:     repo,
		logger:   logger,
		opLogger: NewServiceLogger(logger, LogConfig{Service: "practice-quiz", Component: "export"}),
	}
}

func (s *exportService) ExportResults(ctx context.Context, testID string) (data []byte, err error) {
	op := s.opLogger.WithOperation(ctx, "export_results")
	defer func() { op.LogResult(testID, "result", err) }()

	list := s.repo.Result().List(ctx, testID)

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the results sheet so it opens first.
	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headers := []interface{}{"Result ID", "Timestamp", "Correct", "Total", "Percentage"}
	if err := f.SetSheetRow(resultsSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write Excel header: %w", err)
	}

	for i, result := range list.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			result.ResultID,
			result.Timestamp,
			result.Correct,
			result.Total,
			result.Percentage,
		}
		if err := f.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write Excel row: %w", err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	summary := [][]interface{}{
		{"Attempts", list.Statistics.Total},
		{"Average", list.Statistics.Average},
		{"Highest", list.Statistics.Highest},
		{"Lowest", list.Statistics.Lowest},
	}
	if test, err := s.repo.Test().GetByID(ctx, testID); err == nil {
		summary = append([][]interface{}{{"Test", test.Title}}, summary...)
	} else if !repositories.IsNotFoundError(err) {
		s.logger.WarnContext(ctx, "Exporting results without test title", "test_id", testID, "error", err)
	}

	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write Excel row: %w", err)
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}
