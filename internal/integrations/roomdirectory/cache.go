package roomdirectory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	roomKeyPrefix = "roomdir:room:"
	listKey       = "roomdir:rooms"
)

// CachedClient read-through кэш поверх клиента Room Directory.
// Кэшируются только метаданные помещений (они меняются редко и только
// административно); занятость слотов через этот кэш никогда не проходит.
type CachedClient struct {
	inner *Client
	rdb   *redis.Client
	ttl   time.Duration
	log   Logger
}

// NewCachedClient оборачивает клиент справочника в Redis-кэш с TTL
func NewCachedClient(inner *Client, rdb *redis.Client, ttl time.Duration, log Logger) *CachedClient {
	return &CachedClient{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log,
	}
}

// GetRoom получает помещение из кэша, при промахе идет в справочник.
// Любая ошибка Redis деградирует до прямого запроса.
func (c *CachedClient) GetRoom(ctx context.Context, roomID string) (*Room, error) {
	key := roomKeyPrefix + roomID

	cached, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var room Room
		if err := json.Unmarshal(cached, &room); err == nil {
			return &room, nil
		}
		// Битая запись в кэше - перечитываем из справочника
		c.log.Warn("roomdirectory cache: corrupted entry for key=%s, refetching", key)
	} else if err != redis.Nil {
		c.log.Warn("roomdirectory cache: redis get failed for key=%s: %v", key, err)
	}

	room, err := c.inner.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, room)
	return room, nil
}

// ListRooms получает список помещений из кэша, при промахе идет в справочник
func (c *CachedClient) ListRooms(ctx context.Context) ([]*Room, error) {
	cached, err := c.rdb.Get(ctx, listKey).Bytes()
	if err == nil {
		var rooms []*Room
		if err := json.Unmarshal(cached, &rooms); err == nil {
			return rooms, nil
		}
		c.log.Warn("roomdirectory cache: corrupted entry for key=%s, refetching", listKey)
	} else if err != redis.Nil {
		c.log.Warn("roomdirectory cache: redis get failed for key=%s: %v", listKey, err)
	}

	rooms, err := c.inner.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	c.store(ctx, listKey, rooms)
	return rooms, nil
}

func (c *CachedClient) store(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("roomdirectory cache: marshal failed for key=%s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("roomdirectory cache: redis set failed for key=%s: %v", key, err)
	}
}

// NewRedisClient создает Redis-клиент и проверяет соединение.
// Возвращает ошибку, если сервер недоступен: вызывающая сторона решает,
// работать ли без кэша.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("roomdirectory cache: redis ping: %w", err)
	}

	return client, nil
}
