package get_available_slots

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена у вендора
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceMisconfigured возвращается, когда у услуги не задана длительность
	ErrServiceMisconfigured = errors.New("service is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
