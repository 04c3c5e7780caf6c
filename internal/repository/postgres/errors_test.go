package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

func TestClassifyWriteError(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		target error
	}{
		{"pgx foreign key", &pgconn.PgError{Code: "23503"}, apperrors.ErrValidation},
		{"pgx check", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514"}), apperrors.ErrValidation},
		{"pgx not null", &pgconn.PgError{Code: "23502"}, apperrors.ErrValidation},
		{"pq foreign key", &pq.Error{Code: "23503"}, apperrors.ErrValidation},
		{"pgx unique", &pgconn.PgError{Code: "23505"}, apperrors.ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, errors.Is(classifyWriteError(tc.err), tc.target))
		})
	}
}

func TestClassifyWriteError_Passthrough(t *testing.T) {
	assert.NoError(t, classifyWriteError(nil))

	plain := errors.New("connection reset")
	got := classifyWriteError(plain)
	assert.Equal(t, plain, got)
	assert.False(t, errors.Is(got, apperrors.ErrValidation))
}
