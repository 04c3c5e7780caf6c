package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

// ExportFormat — формат выгрузки вопросов
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat разбирает ?format=; пустое значение — CSV
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(raw) {
	case "", ExportCSV:
		return ExportCSV, nil
	case ExportXLSX:
		return ExportXLSX, nil
	}
	return "", fmt.Errorf("%w: unsupported export format %q", apperrors.ErrValidation, raw)
}

// ContentType возвращает MIME-тип файла выгрузки
func (f ExportFormat) ContentType() string {
	if f == ExportXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

var exportHeaders = []string{"ID", "Question", "Answer", "Category", "Difficulty"}

// Export выгружает все вопросы (по возрастанию id) в w
func (s *QuestionService) Export(ctx context.Context, w io.Writer, format ExportFormat) error {
	questions, _, err := s.questionRepo.List(ctx, repository.QuestionFilter{}, pagination.All())
	if err != nil {
		return fmt.Errorf("failed to list questions for export: %w", err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories for export: %w", err)
	}
	names := entity.NewCategoryMap(categories)

	switch format {
	case ExportXLSX:
		return exportXLSX(w, questions, names)
	default:
		return exportCSV(w, questions, names)
	}
}

func exportRow(q entity.Question, names entity.CategoryMap) []string {
	category, ok := names[q.Category]
	if !ok {
		category = strconv.FormatUint(uint64(q.Category), 10)
	}
	return []string{
		strconv.FormatUint(uint64(q.ID), 10),
		sanitizeForExcel(q.Question),
		sanitizeForExcel(q.Answer),
		category,
		strconv.Itoa(q.Difficulty),
	}
}

// exportCSV пишет CSV с BOM, чтобы Excel корректно показал UTF-8
func exportCSV(w io.Writer, questions []entity.Question, names entity.CategoryMap) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, q := range questions {
		if err := writer.Write(exportRow(q, names)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// exportXLSX пишет книгу Excel через StreamWriter
func exportXLSX(w io.Writer, questions []entity.Question, names entity.CategoryMap) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, q := range questions {
		row := exportRow(q, names)
		cells := []interface{}{q.ID, row[1], row[2], row[3], q.Difficulty}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
