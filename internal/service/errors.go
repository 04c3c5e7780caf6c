package service

import "fmt"

// CreateErrorKind различает причины неудачного создания вопроса
type CreateErrorKind int

const (
	// CreateValidationFailed — входные данные некорректны (пустые поля, нет категории и т.д.)
	CreateValidationFailed CreateErrorKind = iota + 1
	// CreateStoreWriteFailed — хранилище не смогло записать вопрос
	CreateStoreWriteFailed
)

func (k CreateErrorKind) String() string {
	switch k {
	case CreateValidationFailed:
		return "validation failed"
	case CreateStoreWriteFailed:
		return "store write failed"
	default:
		return "unknown"
	}
}

// CreateError — ошибка создания вопроса (одиночного или пакетного)
type CreateError struct {
	Kind CreateErrorKind
	Err  error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("create question: %s: %v", e.Kind, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// DeleteErrorKind различает причины неудачного удаления вопроса
type DeleteErrorKind int

const (
	// DeleteNotFound — вопроса с таким id нет
	DeleteNotFound DeleteErrorKind = iota + 1
	// DeleteStoreFailed — хранилище вернуло ошибку
	DeleteStoreFailed
)

func (k DeleteErrorKind) String() string {
	switch k {
	case DeleteNotFound:
		return "not found"
	case DeleteStoreFailed:
		return "store failed"
	default:
		return "unknown"
	}
}

// DeleteError — ошибка удаления вопроса
type DeleteError struct {
	Kind DeleteErrorKind
	ID   uint
	Err  error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete question %d: %s: %v", e.ID, e.Kind, e.Err)
}

func (e *DeleteError) Unwrap() error {
	return e.Err
}
