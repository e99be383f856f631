package availability

import "errors"

var (
	// ErrInvalidInput возвращается, когда запрос не содержит обязательных полей своего вида
	ErrInvalidInput = errors.New("invalid input data")
)
