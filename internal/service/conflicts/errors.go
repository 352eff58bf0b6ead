package conflicts

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале (end <= start)
	ErrInvalidInterval = errors.New("conflicts: invalid interval")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("conflicts: internal error")
)
