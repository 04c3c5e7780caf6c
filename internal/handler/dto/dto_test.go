package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

func TestFlexibleUint_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexibleUint
		wantErr bool
	}{
		{"число", `3`, 3, false},
		{"строка", `"5"`, 5, false},
		{"строка с пробелами", `" 6 "`, 6, false},
		{"null", `null`, 0, false},
		{"пустая строка", `""`, 0, false},
		{"отрицательное", `-1`, 0, true},
		{"дробное", `1.5`, 0, true},
		{"текст", `"science"`, 0, true},
		{"bool", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexibleUint
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexibleInt_Unmarshal(t *testing.T) {
	var got FlexibleInt
	require.NoError(t, json.Unmarshal([]byte(`"-2"`), &got))
	assert.Equal(t, FlexibleInt(-2), got)

	assert.Error(t, json.Unmarshal([]byte(`"hard"`), &got))
}

func TestQuestionRequest_IsSearch(t *testing.T) {
	var search QuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"searchTerm":"title"}`), &search))
	assert.True(t, search.IsSearch())

	var empty QuestionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"searchTerm":"","question":"Q","answer":"A","category":"1","difficulty":2}`), &empty))
	assert.False(t, empty.IsSearch(), "пустой searchTerm означает создание")

	in := empty.ToInput()
	assert.Equal(t, uint(1), in.Category)
	assert.Equal(t, 2, in.Difficulty)
}

func TestQuizRequest_Valid(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`, true},
		{`{"previous_questions":null,"quiz_category":{"id":"2","type":"Art"}}`, true},
		{`{"previous_questions":[1]}`, false},
		{`{"quiz_category":{"type":"Art"}}`, false},
	}

	for _, tt := range tests {
		var req QuizRequest
		require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
		assert.Equal(t, tt.want, req.Valid(), tt.body)
	}
}

func TestNewQuestionList_NeverNil(t *testing.T) {
	list := NewQuestionList(nil)

	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	list = NewQuestionList([]entity.Question{{ID: 9, Question: "Q", Answer: "A", Category: 4, Difficulty: 1}})
	assert.Equal(t, QuestionResponse{ID: 9, Question: "Q", Answer: "A", Category: 4, Difficulty: 1}, list[0])
	assert.Nil(t, NewQuestionResponse(nil))
}
