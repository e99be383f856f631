package availability

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// CapacityAvailable проверяет, что кандидатный интервал можно занять под услугу
// Без требований к ресурсам у услуги одно место: мешает любое пересекающееся бронирование этой услуги.
// Иначе должно выполняться каждое требование к группе ресурсов.
func CapacityAvailable(
	candidate domain.TimeInterval,
	service *domain.Service,
	inventory []domain.ResourceInstance,
	bookings []*domain.Booking,
) bool {
	if service.IsSingleCapacity() {
		return SingleOccupancyFree(candidate, service.ID, bookings)
	}

	for _, req := range service.ResourceRequirements {
		if !RequirementSatisfied(candidate, req, inventory, bookings) {
			return false
		}
	}

	return true
}

// RequirementSatisfied проверяет, что свободных экземпляров группы не меньше требуемого количества
// Экземпляр занят, если пересекающееся занимающее бронирование назначено на него.
// Бронирование без назначенных ресурсов не занимает ни один экземпляр.
func RequirementSatisfied(
	candidate domain.TimeInterval,
	req domain.ResourceRequirement,
	inventory []domain.ResourceInstance,
	bookings []*domain.Booking,
) bool {
	need := max(req.Quantity, 1)

	free := 0
	for _, instance := range inventory {
		if instance.GroupID != req.GroupID {
			continue
		}
		if resourceBusy(candidate, instance.ID, bookings) {
			continue
		}
		free++
		if free >= need {
			return true
		}
	}

	return false
}

// SingleOccupancyFree проверяет, что ни одно занимающее бронирование услуги не пересекает интервал
// Назначенные ресурсы здесь не важны
func SingleOccupancyFree(candidate domain.TimeInterval, serviceID string, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsOccupying() || b.ServiceID != serviceID {
			continue
		}
		if domain.Overlaps(b.Interval, candidate) {
			return false
		}
	}
	return true
}

func resourceBusy(candidate domain.TimeInterval, resourceID string, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsOccupying() || !b.HasResource(resourceID) {
			continue
		}
		if domain.Overlaps(b.Interval, candidate) {
			return true
		}
	}
	return false
}
