package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SchedulingService/internal/integrations/salonservice"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CatalogClient интерфейс клиента каталога, который оборачивает кэш
type CatalogClient interface {
	GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error)
	GetMaster(ctx context.Context, masterID int64) (*salonservice.Master, error)
	GetService(ctx context.Context, serviceID int64) (*salonservice.Service, error)
	ListMasters(ctx context.Context, salonID int64) ([]salonservice.Master, error)
	ListMastersOfferingService(ctx context.Context, salonID, serviceID int64, branchID *int64) ([]salonservice.Master, error)
}

// CatalogCache кэширующая обёртка над клиентом SalonService.
// Каталожные данные (салоны, мастера, услуги) меняются редко, а читаются
// на каждый запрос слотов - кэшируем их в Redis с коротким TTL.
// Ошибки Redis не фатальны: при недоступности кэша идём напрямую в сервис.
type CatalogCache struct {
	client CatalogClient
	rdb    *redis.Client
	ttl    time.Duration
	log    Logger
}

// NewCatalogCache создает кэширующую обёртку над клиентом каталога
func NewCatalogCache(client CatalogClient, rdb *redis.Client, ttl time.Duration, log Logger) *CatalogCache {
	return &CatalogCache{
		client: client,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// GetSalon получает салон из кэша или из SalonService
func (c *CatalogCache) GetSalon(ctx context.Context, salonID int64) (*salonservice.Salon, error) {
	key := fmt.Sprintf("catalog:salon:%d", salonID)

	var salon salonservice.Salon
	if c.getCached(ctx, key, &salon) {
		return &salon, nil
	}

	fresh, err := c.client.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	c.putCached(ctx, key, fresh)
	return fresh, nil
}

// GetMaster получает мастера из кэша или из SalonService
func (c *CatalogCache) GetMaster(ctx context.Context, masterID int64) (*salonservice.Master, error) {
	key := fmt.Sprintf("catalog:master:%d", masterID)

	var master salonservice.Master
	if c.getCached(ctx, key, &master) {
		return &master, nil
	}

	fresh, err := c.client.GetMaster(ctx, masterID)
	if err != nil {
		return nil, err
	}

	c.putCached(ctx, key, fresh)
	return fresh, nil
}

// GetService получает услугу из кэша или из SalonService
func (c *CatalogCache) GetService(ctx context.Context, serviceID int64) (*salonservice.Service, error) {
	key := fmt.Sprintf("catalog:service:%d", serviceID)

	var service salonservice.Service
	if c.getCached(ctx, key, &service) {
		return &service, nil
	}

	fresh, err := c.client.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	c.putCached(ctx, key, fresh)
	return fresh, nil
}

// ListMasters получает всех мастеров салона из кэша или из SalonService
func (c *CatalogCache) ListMasters(ctx context.Context, salonID int64) ([]salonservice.Master, error) {
	key := fmt.Sprintf("catalog:salon:%d:masters", salonID)

	var masters []salonservice.Master
	if c.getCached(ctx, key, &masters) {
		return masters, nil
	}

	fresh, err := c.client.ListMasters(ctx, salonID)
	if err != nil {
		return nil, err
	}

	c.putCached(ctx, key, fresh)
	return fresh, nil
}

// ListMastersOfferingService получает мастеров салона по услуге из кэша или из SalonService
func (c *CatalogCache) ListMastersOfferingService(ctx context.Context, salonID, serviceID int64, branchID *int64) ([]salonservice.Master, error) {
	branchPart := "all"
	if branchID != nil {
		branchPart = fmt.Sprintf("%d", *branchID)
	}
	key := fmt.Sprintf("catalog:salon:%d:service:%d:branch:%s:masters", salonID, serviceID, branchPart)

	var masters []salonservice.Master
	if c.getCached(ctx, key, &masters) {
		return masters, nil
	}

	fresh, err := c.client.ListMastersOfferingService(ctx, salonID, serviceID, branchID)
	if err != nil {
		return nil, err
	}

	c.putCached(ctx, key, fresh)
	return fresh, nil
}

// getCached пытается прочитать значение из Redis. Возвращает false при промахе
// или любой ошибке - кэш не должен ломать основной путь.
func (c *CatalogCache) getCached(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("CatalogCache: redis get failed for key=%s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("CatalogCache: failed to unmarshal cached value for key=%s: %v", key, err)
		return false
	}

	return true
}

func (c *CatalogCache) putCached(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("CatalogCache: failed to marshal value for key=%s: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("CatalogCache: redis set failed for key=%s: %v", key, err)
	}
}
