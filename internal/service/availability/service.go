// Package availability точка входа движка доступности:
// по виду запроса выбирает расчет слотов услуги или проверку автопарка.
package availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/availability/models"
	checkFleet "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_fleet_availability"
	getSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// Service сервис доступности
// Ошибки use case возвращаются без изменений, обработчики различают их через errors.Is
type Service struct {
	slots  SlotsUseCase
	fleet  FleetUseCase
	logger Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(slots SlotsUseCase, fleet FleetUseCase, logger Logger) *Service {
	return &Service{
		slots:  slots,
		fleet:  fleet,
		logger: logger,
	}
}

// Check отвечает на запрос доступности любого вида
func (s *Service) Check(ctx context.Context, req *models.CheckRequest) (*models.CheckResponse, error) {
	if req.IsFleetCheck() {
		fleet, err := s.CheckFleet(ctx, req.VendorID, req.StartDate, req.EndDate)
		if err != nil {
			return nil, err
		}
		return &models.CheckResponse{Fleet: fleet}, nil
	}

	slots, err := s.GetSlots(ctx, req.VendorID, req.ServiceID, req.Date)
	if err != nil {
		return nil, err
	}
	return &models.CheckResponse{Slots: slots}, nil
}

// GetSlots считает свободные слоты услуги на дату
func (s *Service) GetSlots(ctx context.Context, vendorID, serviceID, date string) (*models.SlotsResponse, error) {
	if err := requireFields("vendorId", vendorID, "serviceId", serviceID, "date", date); err != nil {
		s.logger.Warn("GetSlots: %v", err)
		return nil, err
	}

	resp, err := s.slots.Execute(ctx, &getSlots.Request{
		VendorID:  vendorID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}

	return models.FromSlotsResponse(resp), nil
}

// CheckFleet классифицирует автопарк вендора на диапазон дат
func (s *Service) CheckFleet(ctx context.Context, vendorID, startDate, endDate string) (*models.FleetResponse, error) {
	if err := requireFields("vendorId", vendorID, "startDate", startDate, "endDate", endDate); err != nil {
		s.logger.Warn("CheckFleet: %v", err)
		return nil, err
	}

	resp, err := s.fleet.Execute(ctx, &checkFleet.Request{
		VendorID:  vendorID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}

	return models.FromFleetResponse(resp), nil
}

// requireFields принимает пары имя/значение и возвращает ErrInvalidInput с именами пустых полей
func requireFields(pairs ...string) error {
	missing := make([]string, 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			missing = append(missing, pairs[i])
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
