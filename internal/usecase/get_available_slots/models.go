package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	VendorID  string // ID вендора
	ServiceID string // ID услуги
	Date      string // Дата в формате YYYY-MM-DD (в зоне движка)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time         // Дата, на которую запрашивались слоты (полночь в зоне движка)
	VendorID        string            // ID вендора
	ServiceID       string            // ID услуги
	DurationMinutes int               // Длительность услуги
	Status          domain.SlotStatus // open / closed / not_configured
	Message         string            // Пояснение для клиента, пусто при open
	Slots           []string          // Время начала слотов "HH:MM", всегда не nil
}
