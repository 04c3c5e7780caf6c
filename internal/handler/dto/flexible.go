package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleUint принимает неотрицательное число как JSON-числом, так и строкой ("3").
// Фронтенд передает ключи категорий строками, поэтому обе формы допустимы.
type FlexibleUint uint

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleUint) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	if raw == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %s", data)
	}
	*f = FlexibleUint(v)
	return nil
}

// FlexibleInt — то же, что FlexibleUint, но со знаком
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw, err := unquoteNumber(data)
	if err != nil {
		return err
	}
	if raw == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexibleInt(v)
	return nil
}

// unquoteNumber возвращает текст числа; null и "" дают пустую строку
func unquoteNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(data), nil
}
