package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// SelfServeGate интерфейс проверки доступности самостоятельных туров
type SelfServeGate interface {
	IsSelfServeAllowed(ctx context.Context, propertyID string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// entry закэшированное значение флага с временем записи
type entry struct {
	allowed  bool
	cachedAt time.Time
}

// PropertyInfoCache LRU-кэш с TTL поверх клиента property-information сервиса.
// Кэшируются только успешные ответы: сбой шлюза должен оставаться сбоем,
// а не замороженным отказом.
type PropertyInfoCache struct {
	gate  SelfServeGate
	cache *lru.Cache[string, entry]
	ttl   time.Duration
	log   Logger
}

// NewPropertyInfoCache создает кэширующую обертку над шлюзом доступности
func NewPropertyInfoCache(gate SelfServeGate, size int, ttl time.Duration, log Logger) (*PropertyInfoCache, error) {
	c, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}

	return &PropertyInfoCache{
		gate:  gate,
		cache: c,
		ttl:   ttl,
		log:   log,
	}, nil
}

// IsSelfServeAllowed возвращает закэшированный флаг или спрашивает шлюз
func (p *PropertyInfoCache) IsSelfServeAllowed(ctx context.Context, propertyID string) (bool, error) {
	if e, ok := p.cache.Get(propertyID); ok {
		if time.Since(e.cachedAt) < p.ttl {
			return e.allowed, nil
		}
		p.cache.Remove(propertyID)
	}

	allowed, err := p.gate.IsSelfServeAllowed(ctx, propertyID)
	if err != nil {
		return false, err
	}

	p.cache.Add(propertyID, entry{allowed: allowed, cachedAt: time.Now()})
	p.log.Info("PropertyInfoCache: cached visit policy for property_id=%s, allowed=%v", propertyID, allowed)

	return allowed, nil
}
