package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// countingClient считает обращения к нижележащему клиенту каталога
type countingClient struct {
	salonCalls   int
	masterCalls  int
	serviceCalls int
	listCalls    int
	offeringCall int
}

func (c *countingClient) GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error) {
	c.salonCalls++
	return &salonservice.Salon{ID: salonID, Name: "Салон"}, nil
}

func (c *countingClient) GetMaster(ctx context.Context, masterID int64) (*salonservice.Master, error) {
	c.masterCalls++
	return &salonservice.Master{ID: masterID, Name: "Мастер"}, nil
}

func (c *countingClient) GetService(ctx context.Context, serviceID int64) (*salonservice.Service, error) {
	c.serviceCalls++
	return &salonservice.Service{ID: serviceID, Name: "Стрижка"}, nil
}

func (c *countingClient) ListMasters(ctx context.Context, salonID int64) ([]salonservice.Master, error) {
	c.listCalls++
	return []salonservice.Master{{ID: 1}, {ID: 2}}, nil
}

func (c *countingClient) ListMastersOfferingService(ctx context.Context, salonID, serviceID int64, branchID *int64) ([]salonservice.Master, error) {
	c.offeringCall++
	return []salonservice.Master{{ID: 1}}, nil
}

func newTestCache(t *testing.T) (*CatalogCache, *countingClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	client := &countingClient{}

	return NewCatalogCache(client, rdb, time.Minute, nopLogger{}), client, mr
}

func TestCatalogCache_GetSalon(t *testing.T) {
	ctx := context.Background()
	cache, client, _ := newTestCache(t)

	first, err := cache.GetSalon(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.ID)
	assert.Equal(t, 1, client.salonCalls)

	// Повторный запрос обслуживается из кэша
	second, err := cache.GetSalon(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 1, client.salonCalls)

	// Другой салон - отдельный ключ
	_, err = cache.GetSalon(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, client.salonCalls)
}

func TestCatalogCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cache, client, mr := newTestCache(t)

	_, err := cache.GetMaster(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, client.masterCalls)

	// После истечения TTL кэш пуст - снова идём в сервис
	mr.FastForward(2 * time.Minute)

	_, err = cache.GetMaster(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, client.masterCalls)
}

func TestCatalogCache_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	cache, client, mr := newTestCache(t)

	mr.Close()

	// Недоступность Redis не фатальна: каждый запрос идёт напрямую в сервис
	_, err := cache.GetService(ctx, 10)
	require.NoError(t, err)
	_, err = cache.GetService(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, client.serviceCalls)
}

func TestCatalogCache_ListMasters(t *testing.T) {
	ctx := context.Background()
	cache, client, _ := newTestCache(t)

	masters, err := cache.ListMasters(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, masters, 2)

	_, err = cache.ListMasters(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, client.listCalls)
}
