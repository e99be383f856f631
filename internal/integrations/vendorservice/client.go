package vendorservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Client клиент для чтения каталога VendorService (услуги и расписание)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента VendorService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает услугу вендора
func (c *Client) GetService(ctx context.Context, vendorID, serviceID string) (*domain.Service, error) {
	endpoint := fmt.Sprintf("%s/internal/vendors/%s/services/%s",
		c.baseURL, url.PathEscape(vendorID), url.PathEscape(serviceID))

	var service Service
	if err := c.get(ctx, endpoint, ErrServiceNotFound, &service); err != nil {
		return nil, err
	}

	return service.ToDomain(), nil
}

// GetOpeningHours получает расписание вендора по дням недели
// Пустой слайс означает, что вендор существует, но расписание не настроено
func (c *Client) GetOpeningHours(ctx context.Context, vendorID string) ([]domain.OpeningWindow, error) {
	endpoint := fmt.Sprintf("%s/internal/vendors/%s/opening-hours", c.baseURL, url.PathEscape(vendorID))

	var hours OpeningHoursResponse
	if err := c.get(ctx, endpoint, ErrVendorNotFound, &hours); err != nil {
		return nil, err
	}

	windows := hours.ToDomain()
	if len(windows) != len(hours.OpeningHours) {
		c.log.Warn("GetOpeningHours: vendor %s has %d days with invalid day_of_week", vendorID, len(hours.OpeningHours)-len(windows))
	}

	return windows, nil
}

// get выполняет GET запрос и декодирует JSON ответ в out
// На 404 возвращает notFound
func (c *Client) get(ctx context.Context, endpoint string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
