package check_fleet_availability

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case для проверки занятости автопарка на диапазон дат
type UseCase struct {
	fleetRepo   FleetRepository
	bookingRepo BookingRepository
	engine      Engine
	metrics     MetricsRecorder
	timeout     time.Duration
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	fleetRepo FleetRepository,
	bookingRepo BookingRepository,
	engine Engine,
	metrics MetricsRecorder,
	timeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		fleetRepo:   fleetRepo,
		bookingRepo: bookingRepo,
		engine:      engine,
		metrics:     metrics,
		timeout:     timeout,
		logger:      logger,
	}
}

// Execute выполняет use case проверки автопарка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckFleetAvailability: vendor=%s, start=%s, end=%s", req.VendorID, req.StartDate, req.EndDate)

	// 1. Валидация входных данных
	dateRange, err := validateRequest(req, uc.engine.Location())
	if err != nil {
		uc.logger.Warn("CheckFleetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Параллельно читаем автопарк и аренды, пересекающие диапазон
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	var (
		items    []domain.FleetItem
		bookings []*domain.Booking
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = uc.fleetRepo.ListByVendor(gctx, req.VendorID)
		if err != nil {
			return fmt.Errorf("fleet: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListOccupying(gctx, domain.OccupyingBookingsFilter{
			VendorID: req.VendorID,
			Kind:     domain.KindRental,
			From:     dateRange.Start,
			To:       dateRange.End,
		})
		if err != nil {
			return fmt.Errorf("bookings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("CheckFleetAvailability: failed to load data for vendor id=%s: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to load data: %v", ErrInternal, err)
	}

	// 3. Классифицируем автопарк
	result := uc.engine.CheckFleet(availability.FleetInput{
		Range:    dateRange,
		Items:    items,
		Bookings: bookings,
	})

	uc.metrics.ObserveFleetCheck(len(result.Available), len(result.Unavailable))

	uc.logger.Info("CheckFleetAvailability: vendor=%s, available=%d, unavailable=%d",
		req.VendorID, len(result.Available), len(result.Unavailable))

	return toResponse(req.VendorID, dateRange, result), nil
}

func toResponse(vendorID string, dateRange domain.TimeInterval, result availability.FleetResult) *Response {
	resp := &Response{
		VendorID:    vendorID,
		From:        dateRange.Start,
		To:          dateRange.End,
		Available:   make([]AvailableVehicle, 0, len(result.Available)),
		Unavailable: make([]UnavailableVehicle, 0, len(result.Unavailable)),
	}

	for _, a := range result.Available {
		resp.Available = append(resp.Available, AvailableVehicle{ID: a.ID, Model: a.Model, Price: a.Price})
	}

	for _, u := range result.Unavailable {
		resp.Unavailable = append(resp.Unavailable, UnavailableVehicle{ID: u.ID, Model: u.Model, ConflictInfo: u.ConflictInfo})
	}

	return resp
}
