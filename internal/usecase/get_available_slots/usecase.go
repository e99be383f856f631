package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	vendorClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/vendorservice"
)

// UseCase use case для получения доступных слотов услуги на дату
type UseCase struct {
	catalog      CatalogClient
	resourceRepo ResourceRepository
	bookingRepo  BookingRepository
	engine       Engine
	metrics      MetricsRecorder
	timeProvider TimeProvider
	timeout      time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// timeout ограничивает чтение данных одного запроса; 0 - без ограничения
func NewUseCase(
	catalog CatalogClient,
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	engine Engine,
	metrics MetricsRecorder,
	timeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		resourceRepo: resourceRepo,
		bookingRepo:  bookingRepo,
		engine:       engine,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		timeout:      timeout,
		logger:       logger,
	}
}

// snapshot данные, прочитанные для одного запроса
type snapshot struct {
	service   *domain.Service
	windows   []domain.OpeningWindow
	inventory []domain.ResourceInstance
	bookings  []*domain.Booking
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: vendor=%s, service=%s, date=%s", req.VendorID, req.ServiceID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.engine.Location())
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Параллельно читаем услугу, расписание, ресурсы и бронирования на дату
	snap, err := uc.load(ctx, req, date)
	if err != nil {
		return nil, err
	}

	// 4. Считаем слоты
	result, err := uc.engine.GenerateSlots(availability.SlotInput{
		Date:           date,
		Now:            now,
		OpeningWindows: snap.windows,
		Service:        snap.service,
		Inventory:      snap.inventory,
		Bookings:       snap.bookings,
	})
	if err != nil {
		if errors.Is(err, availability.ErrServiceMisconfigured) {
			uc.logger.Warn("GetAvailableSlots: service id=%s of vendor id=%s is misconfigured", req.ServiceID, req.VendorID)
			return nil, fmt.Errorf("%w: %v", ErrServiceMisconfigured, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	for _, r := range result.SkippedRanges {
		uc.logger.Warn("GetAvailableSlots: vendor id=%s has invalid opening range %s-%s, skipped", req.VendorID, r.From, r.To)
	}

	uc.metrics.ObserveSlotQuery(string(result.Status), len(result.Slots))

	uc.logger.Info("GetAvailableSlots: status=%s, generated %d slots for vendor=%s, service=%s, date=%s",
		result.Status, len(result.Slots), req.VendorID, req.ServiceID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		VendorID:        req.VendorID,
		ServiceID:       req.ServiceID,
		DurationMinutes: snap.service.DurationMinutes,
		Status:          result.Status,
		Message:         result.Status.Message(),
		Slots:           result.Slots,
	}, nil
}

// load читает все данные запроса параллельно; первая ошибка отменяет остальные чтения
func (uc *UseCase) load(ctx context.Context, req *Request, date time.Time) (*snapshot, error) {
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		service, err := uc.catalog.GetService(gctx, req.VendorID, req.ServiceID)
		if err != nil {
			return err
		}
		snap.service = service
		return nil
	})

	g.Go(func() error {
		windows, err := uc.catalog.GetOpeningHours(gctx, req.VendorID)
		if err != nil {
			return err
		}
		snap.windows = windows
		return nil
	})

	g.Go(func() error {
		inventory, err := uc.resourceRepo.ListByVendor(gctx, req.VendorID)
		if err != nil {
			return fmt.Errorf("resources: %w", err)
		}
		snap.inventory = inventory
		return nil
	})

	g.Go(func() error {
		bookings, err := uc.bookingRepo.ListOccupying(gctx, domain.OccupyingBookingsFilter{
			VendorID: req.VendorID,
			Kind:     domain.KindService,
			From:     date,
			To:       date.AddDate(0, 0, 1),
		})
		if err != nil {
			return fmt.Errorf("bookings: %w", err)
		}
		snap.bookings = bookings
		return nil
	})

	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, vendorClient.ErrVendorNotFound):
			uc.logger.Warn("GetAvailableSlots: vendor id=%s not found", req.VendorID)
			return nil, ErrVendorNotFound
		case errors.Is(err, vendorClient.ErrServiceNotFound):
			uc.logger.Warn("GetAvailableSlots: service id=%s not found for vendor id=%s", req.ServiceID, req.VendorID)
			return nil, ErrServiceNotFound
		default:
			uc.logger.Error("GetAvailableSlots: failed to load data for vendor id=%s: %v", req.VendorID, err)
			return nil, fmt.Errorf("%w: failed to load data: %v", ErrInternal, err)
		}
	}

	if snap.service == nil {
		return nil, ErrServiceNotFound
	}

	// Услуга другого вендора для этого вендора не существует
	if snap.service.VendorID != "" && snap.service.VendorID != req.VendorID {
		uc.logger.Warn("GetAvailableSlots: service id=%s belongs to vendor id=%s, not %s",
			req.ServiceID, snap.service.VendorID, req.VendorID)
		return nil, ErrServiceNotFound
	}

	return snap, nil
}
