package vendorservice

import "errors"

var (
	// ErrVendorNotFound возвращается, когда вендор не найден в каталоге
	ErrVendorNotFound = errors.New("vendorservice client: vendor not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена у вендора
	ErrServiceNotFound = errors.New("vendorservice client: service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vendorservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("vendorservice client: invalid response")
)
