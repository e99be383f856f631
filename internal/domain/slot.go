package domain

// SlotStatus состояние расписания вендора на запрошенную дату
type SlotStatus string

const (
	SlotStatusOpen          SlotStatus = "open"
	SlotStatusClosed        SlotStatus = "closed"
	SlotStatusNotConfigured SlotStatus = "not_configured"
)

// Message returns the client-facing explanation, empty when the vendor is open
func (s SlotStatus) Message() string {
	switch s {
	case SlotStatusClosed:
		return MessageClosed
	case SlotStatusNotConfigured:
		return MessageNotConfigured
	default:
		return ""
	}
}

// IsOpen returns true if slots were actually computed
func (s SlotStatus) IsOpen() bool {
	return s == SlotStatusOpen
}
