package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

type fakeSource struct {
	service      *domain.Service
	windows      []domain.OpeningWindow
	err          error
	serviceCalls int
	hoursCalls   int
}

func (f *fakeSource) GetService(context.Context, string, string) (*domain.Service, error) {
	f.serviceCalls++
	return f.service, f.err
}

func (f *fakeSource) GetOpeningHours(context.Context, string) ([]domain.OpeningWindow, error) {
	f.hoursCalls++
	return f.windows, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCache_GetService_ReadThrough(t *testing.T) {
	rdb := newFakeRedis()
	source := &fakeSource{service: &domain.Service{
		ID:                   "svc-1",
		VendorID:             "v-1",
		Name:                 "Taglio",
		DurationMinutes:      30,
		ResourceRequirements: []domain.ResourceRequirement{{GroupID: "chair", Quantity: 1}},
	}}
	cache := New(source, rdb, 5*time.Minute, nopLogger{})

	first, err := cache.GetService(context.Background(), "v-1", "svc-1")
	require.NoError(t, err)
	second, err := cache.GetService(context.Background(), "v-1", "svc-1")
	require.NoError(t, err)

	assert.Equal(t, 1, source.serviceCalls)
	assert.Equal(t, first, second)
	assert.Equal(t, 5*time.Minute, rdb.ttls["availability:catalog:service:v-1:svc-1"])
}

func TestCache_GetOpeningHours_KeepsRawRanges(t *testing.T) {
	rdb := newFakeRedis()
	windows := []domain.OpeningWindow{{
		DayOfWeek: time.Friday,
		IsOpen:    true,
		TimeRanges: []domain.TimeRange{
			{From: types.TimeString("09:00"), To: types.TimeString("13:00")},
			{From: types.TimeString("bad"), To: types.TimeString("19:00")},
		},
	}}
	source := &fakeSource{windows: windows}
	cache := New(source, rdb, time.Minute, nopLogger{})

	_, err := cache.GetOpeningHours(context.Background(), "v-1")
	require.NoError(t, err)
	cached, err := cache.GetOpeningHours(context.Background(), "v-1")
	require.NoError(t, err)

	assert.Equal(t, 1, source.hoursCalls)
	assert.Equal(t, windows, cached)
}

func TestCache_EmptyScheduleIsCached(t *testing.T) {
	rdb := newFakeRedis()
	source := &fakeSource{windows: []domain.OpeningWindow{}}
	cache := New(source, rdb, time.Minute, nopLogger{})

	_, err := cache.GetOpeningHours(context.Background(), "v-1")
	require.NoError(t, err)
	windows, err := cache.GetOpeningHours(context.Background(), "v-1")
	require.NoError(t, err)

	assert.Equal(t, 1, source.hoursCalls)
	assert.Empty(t, windows)
}

func TestCache_SourceErrorsNotCached(t *testing.T) {
	rdb := newFakeRedis()
	source := &fakeSource{err: errors.New("vendor not found")}
	cache := New(source, rdb, time.Minute, nopLogger{})

	_, err := cache.GetService(context.Background(), "v-1", "svc-1")
	require.Error(t, err)
	_, err = cache.GetService(context.Background(), "v-1", "svc-1")
	require.Error(t, err)

	assert.Equal(t, 2, source.serviceCalls)
	assert.Empty(t, rdb.data)
}

func TestCache_RedisFailureDegradesToSource(t *testing.T) {
	rdb := newFakeRedis()
	rdb.getErr = errors.New("connection refused")
	rdb.setErr = errors.New("connection refused")
	source := &fakeSource{service: &domain.Service{ID: "svc-1", DurationMinutes: 45}}
	cache := New(source, rdb, time.Minute, nopLogger{})

	service, err := cache.GetService(context.Background(), "v-1", "svc-1")

	require.NoError(t, err)
	assert.Equal(t, 45, service.DurationMinutes)
	assert.Equal(t, 1, source.serviceCalls)
}

func TestCache_CorruptedEntryIsIgnored(t *testing.T) {
	rdb := newFakeRedis()
	rdb.data["availability:catalog:hours:v-1"] = "{broken"
	source := &fakeSource{windows: []domain.OpeningWindow{{DayOfWeek: time.Monday, IsOpen: false}}}
	cache := New(source, rdb, time.Minute, nopLogger{})

	windows, err := cache.GetOpeningHours(context.Background(), "v-1")

	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 1, source.hoursCalls)
}

func TestCache_NilServiceNotCached(t *testing.T) {
	rdb := newFakeRedis()
	source := &fakeSource{}
	cache := New(source, rdb, time.Minute, nopLogger{})

	service, err := cache.GetService(context.Background(), "v-1", "svc-1")

	require.NoError(t, err)
	assert.Nil(t, service)
	assert.Empty(t, rdb.data)
}
