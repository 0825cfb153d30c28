package availability

import "errors"

var (
	// ErrNotFound возвращается, когда записи для venue нет или она истекла
	ErrNotFound = errors.New("availability cache: entry not found")

	// ErrInternal возвращается при ошибках бэкенда кеша
	ErrInternal = errors.New("availability cache: internal error")
)
