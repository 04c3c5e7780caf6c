package pagination

import (
	"math"
	"strconv"
)

// DefaultPageSize — количество вопросов на одной странице
const DefaultPageSize = 10

// Page описывает окно выборки: номер страницы (с 1) и её размер
type Page struct {
	Number int
	Size   int
}

// New создает страницу; размер < 1 заменяется на DefaultPageSize
func New(number, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// All возвращает окно, покрывающее всю выборку (без ограничения размера)
func All() Page {
	return Page{}
}

// IsAll сообщает, что окно не ограничено
func (p Page) IsAll() bool {
	return p.Number == 0 && p.Size == 0
}

// Valid сообщает, что номер страницы положительный
func (p Page) Valid() bool {
	return p.Number >= 1 && p.Size >= 1
}

// Offset возвращает количество пропускаемых элементов.
// Если смещение не помещается в int, возвращается math.MaxInt: такая страница всегда пуста.
func (p Page) Offset() int {
	if !p.Valid() {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Limit возвращает максимальный размер страницы
func (p Page) Limit() int {
	return p.Size
}

// Window возвращает границы [start, end) страницы для выборки из total элементов.
// Для страницы за пределами выборки start == end.
func (p Page) Window(total int) (start, end int) {
	if p.IsAll() {
		return 0, total
	}
	if !p.Valid() || total <= 0 {
		return 0, 0
	}
	start = p.Offset()
	if start >= total {
		return total, total
	}
	if p.Size > total-start {
		return start, total
	}
	return start, start + p.Size
}

// Paginate возвращает срез items для страницы p. Входной срез не изменяется:
// результат — новая копия, пустая (не nil) для страницы вне диапазона.
func Paginate[T any](items []T, p Page) []T {
	start, end := p.Window(len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// ParsePage разбирает параметр ?page=. Пустое или нечисловое значение дает 1;
// число < 1 возвращается как есть и дает пустую страницу.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}
