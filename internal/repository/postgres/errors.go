package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// Коды ошибок Postgres, означающие недопустимые входные данные
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
)

// sqlState извлекает SQLSTATE для pgconn и lib/pq драйверов
func sqlState(err error) string {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// classifyWriteError переводит нарушения ограничений в ошибки приложения
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	switch sqlState(err) {
	case pgNotNullViolation, pgForeignKeyViolation, pgCheckViolation, pgStringTooLong:
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	case pgUniqueViolation:
		return fmt.Errorf("%w: %v", apperrors.ErrConflict, err)
	}
	return err
}
