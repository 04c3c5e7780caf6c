package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

func uintPtr(v uint) *uint { return &v }

func TestQuestionRepo_List_Pages(t *testing.T) {
	// Arrange
	_, repo := NewSeeded()
	ctx := context.Background()

	// Act
	first, total, err := repo.List(ctx, repository.QuestionFilter{}, pagination.New(1, 10))
	require.NoError(t, err)
	second, _, err := repo.List(ctx, repository.QuestionFilter{}, pagination.New(2, 10))
	require.NoError(t, err)
	third, _, err := repo.List(ctx, repository.QuestionFilter{}, pagination.New(3, 10))
	require.NoError(t, err)

	// Assert
	assert.Equal(t, int64(19), total)
	assert.Len(t, first, 10)
	assert.Len(t, second, 9)
	assert.Empty(t, third)

	ids := append(entity.QuestionIDs(first), entity.QuestionIDs(second)...)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i], "вопросы должны идти по возрастанию id")
	}
}

func TestQuestionRepo_List_Search(t *testing.T) {
	_, repo := NewSeeded()

	questions, total, err := repo.List(context.Background(), repository.QuestionFilter{Search: "TiTlE"}, pagination.New(1, 10))

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []uint{5, 6}, entity.QuestionIDs(questions))
}

func TestQuestionRepo_List_CategoryAndExclusion(t *testing.T) {
	_, repo := NewSeeded()
	filter := repository.QuestionFilter{
		CategoryID: uintPtr(1),
		ExcludeIDs: []uint{21, 21, 999},
	}

	questions, total, err := repo.List(context.Background(), filter, pagination.All())

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []uint{20, 22}, entity.QuestionIDs(questions))
}

func TestQuestionRepo_ListIDs(t *testing.T) {
	_, repo := NewSeeded()

	ids, err := repo.ListIDs(context.Background(), repository.QuestionFilter{CategoryID: uintPtr(6)})

	require.NoError(t, err)
	assert.Equal(t, []uint{10, 11}, ids)
}

func TestQuestionRepo_CreateAndDelete(t *testing.T) {
	// Arrange
	_, repo := NewSeeded()
	ctx := context.Background()
	q := &entity.Question{Question: "What color mix gives green?", Answer: "Yellow and blue", Category: 1, Difficulty: 1}

	// Act: создание
	require.NoError(t, repo.Create(ctx, q))

	// Assert
	assert.Equal(t, uint(24), q.ID, "новый id должен быть больше максимального")
	count, _ := repo.Count(ctx)
	assert.Equal(t, int64(20), count)

	// Act: удаление
	require.NoError(t, repo.Delete(ctx, q.ID))

	// Assert
	_, err := repo.GetByID(ctx, q.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	count, _ = repo.Count(ctx)
	assert.Equal(t, int64(19), count)
}

func TestQuestionRepo_Delete_NotFound(t *testing.T) {
	_, repo := NewSeeded()

	err := repo.Delete(context.Background(), 1000)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestQuestionRepo_Create_UnknownCategory(t *testing.T) {
	_, repo := NewSeeded()
	q := &entity.Question{Question: "Q", Answer: "A", Category: 42, Difficulty: 1}

	err := repo.Create(context.Background(), q)

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(19), count)
}

func TestQuestionRepo_CreateBatch_AllOrNothing(t *testing.T) {
	_, repo := NewSeeded()
	batch := []entity.Question{
		{Question: "Q1", Answer: "A1", Category: 1, Difficulty: 1},
		{Question: "Q2", Answer: "A2", Category: 77, Difficulty: 1},
	}

	err := repo.CreateBatch(context.Background(), batch)

	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(19), count, "при ошибке ничего не должно сохраниться")
}

func TestCategoryRepo_ListOrdered(t *testing.T) {
	repo := NewCategoryRepo(entity.Category{ID: 3, Type: "Geography"}, entity.Category{ID: 1, Type: "Science"})

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint(1), categories[0].ID)
	assert.Equal(t, uint(3), categories[1].ID)

	ok, err := repo.Exists(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = repo.Exists(context.Background(), 2)
	assert.False(t, ok)
}
