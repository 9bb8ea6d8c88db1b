package bookeddates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

const (
	keyPrefix     = "booked_dates:"
	versionSuffix = ":version"
)

// setIfVersion пишет месяц, только если с момента чтения версии не было Invalidate
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2])
if (current or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// invalidateMonth увеличивает версию и удаляет месяц атомарно
var invalidateMonth = redis.NewScript(`
redis.call('INCR', KEYS[2])
return redis.call('DEL', KEYS[1])
`)

type entry struct {
	Date   string `json:"date"`
	Space  string `json:"space"`
	Status string `json:"status"`
}

// Cache кеш занятых дат по месяцам (cache-aside).
// Хранит только обезличенные кортежи (дата, площадка, статус).
// У каждого месяца есть версия: Invalidate её увеличивает, а SetMonth пишет,
// только если версия не изменилась с момента чтения, поэтому выборка из БД,
// начатая до записи брони, не перезапишет сброс.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кеш поверх redis клиента
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key ключ месяца, к которому относится дата
func Key(date time.Time) string {
	return keyPrefix + date.Format(domain.MonthKey)
}

// VersionKey ключ версии месяца
func VersionKey(date time.Time) string {
	return Key(date) + versionSuffix
}

// GetMonth возвращает занятые даты месяца; ok=false при промахе
func (c *Cache) GetMonth(ctx context.Context, month time.Time) ([]domain.BookedDate, bool, error) {
	raw, err := c.client.Get(ctx, Key(month)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}

	var entries []entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorruptedEntry, err)
	}

	result := make([]domain.BookedDate, 0, len(entries))
	for _, e := range entries {
		date, err := domain.ParseDate(e.Date)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrCorruptedEntry, err)
		}
		result = append(result, domain.BookedDate{
			Date:   date,
			Space:  domain.SpaceID(e.Space),
			Status: domain.BookingStatus(e.Status),
		})
	}

	return result, true, nil
}

// Version текущая версия месяца; читать до выборки из БД
func (c *Cache) Version(ctx context.Context, month time.Time) (int64, error) {
	v, err := c.client.Get(ctx, VersionKey(month)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}
	return v, nil
}

// SetMonth сохраняет занятые даты месяца, прочитанные при версии version.
// stored=false, если месяц успели сбросить.
func (c *Cache) SetMonth(ctx context.Context, month time.Time, version int64, dates []domain.BookedDate) (bool, error) {
	entries := make([]entry, 0, len(dates))
	for _, d := range dates {
		entries = append(entries, entry{
			Date:   d.Date.Format(domain.DateFormat),
			Space:  string(d.Space),
			Status: string(d.Status),
		})
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return false, fmt.Errorf("%w: marshal: %v", ErrCacheWrite, err)
	}

	stored, err := setIfVersion.Run(ctx, c.client,
		[]string{Key(month), VersionKey(month)},
		strconv.FormatInt(version, 10),
		string(payload),
		strconv.FormatInt(c.ttl.Milliseconds(), 10),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}

	return stored == 1, nil
}

// Invalidate сбрасывает месяц, к которому относится дата
func (c *Cache) Invalidate(ctx context.Context, date time.Time) error {
	if err := invalidateMonth.Run(ctx, c.client, []string{Key(date), VersionKey(date)}).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}
