package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

const (
	keyPrefix     = "reservations:reserved:"
	versionPrefix = "reservations:version:"

	// versionTTL время жизни счётчика версии даты, продлевается каждой инвалидацией
	versionTTL = 24 * time.Hour
)

// Key ключ кэша занятых слотов на дату
func Key(date time.Time) string {
	return keyPrefix + date.Format(domain.DateFormat)
}

// VersionKey ключ счётчика инвалидаций даты
func VersionKey(date time.Time) string {
	return versionPrefix + date.Format(domain.DateFormat)
}

// RedisCache кэш занятых (не отменённых) слотов по дате
// Источник истины всегда БД: запись в кэш делает только чтение, любая мутация инвалидирует ключ.
// Каждая инвалидация увеличивает версию даты; запись снимка, прочитанного до инвалидации, отбрасывается
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создает кэш поверх готового клиента
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetReserved возвращает закэшированный список; found == false при промахе
func (c *RedisCache) GetReserved(ctx context.Context, date time.Time) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, Key(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: GetReserved - get %s: %v", ErrCacheRead, Key(date), err)
	}

	var reserved []string
	if err := json.Unmarshal(raw, &reserved); err != nil {
		return nil, false, fmt.Errorf("%w: GetReserved - %s: %v", ErrDecode, Key(date), err)
	}

	return reserved, true, nil
}

// Version текущая версия даты; 0, если инвалидаций ещё не было
// Читать нужно до запроса в БД, снимок которого потом пойдёт в SetReserved
func (c *RedisCache) Version(ctx context.Context, date time.Time) (int64, error) {
	version, err := readVersion(ctx, c.client, date)
	if err != nil {
		return 0, fmt.Errorf("%w: Version - get %s: %v", ErrCacheRead, VersionKey(date), err)
	}
	return version, nil
}

// SetReserved сохраняет список занятых слотов на ttl, если версия даты всё ещё равна version
// stored == false: дату успели инвалидировать, снимок устарел и не записан
func (c *RedisCache) SetReserved(ctx context.Context, date time.Time, version int64, reserved []string) (bool, error) {
	if reserved == nil {
		reserved = []string{}
	}

	raw, err := json.Marshal(reserved)
	if err != nil {
		return false, fmt.Errorf("%w: SetReserved - marshal: %v", ErrCacheWrite, err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readVersion(ctx, tx, date)
		if err != nil {
			return err
		}
		if current != version {
			return errVersionMoved
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(date), raw, c.ttl)
			return nil
		})
		return err
	}, VersionKey(date))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errVersionMoved), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, fmt.Errorf("%w: SetReserved - set %s: %v", ErrCacheWrite, Key(date), err)
	}
}

// Invalidate удаляет ключ даты и увеличивает её версию одной транзакцией
func (c *RedisCache) Invalidate(ctx context.Context, date time.Time) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, VersionKey(date))
		pipe.Expire(ctx, VersionKey(date), versionTTL)
		pipe.Del(ctx, Key(date))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Invalidate - %s: %v", ErrCacheWrite, Key(date), err)
	}
	return nil
}

// getter общий для *redis.Client и *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readVersion(ctx context.Context, r getter, date time.Time) (int64, error) {
	version, err := r.Get(ctx, VersionKey(date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// Close закрывает соединение с Redis
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Noop кэш-заглушка, когда Redis выключен: всегда промах
type Noop struct{}

func (Noop) GetReserved(context.Context, time.Time) ([]string, bool, error) {
	return nil, false, nil
}

func (Noop) Version(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// SetReserved ничего не хранит, но и устаревшим снимок не считает
func (Noop) SetReserved(context.Context, time.Time, int64, []string) (bool, error) {
	return true, nil
}

func (Noop) Invalidate(context.Context, time.Time) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
