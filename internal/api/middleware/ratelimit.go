package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
)

const msgTooManyRequests = "Too many booking requests. Please try again in %d seconds."

// RateLimiter ограничивает число запросов с одного IP скользящим окном:
// в любом интервале длины window принимается не больше requests запросов.
// Дополнительно может действовать общий лимит на все IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string][]time.Time // время принятых запросов, по возрастанию
	requests int
	window   time.Duration
	global   *rate.Limiter
	trusted  []*net.IPNet
	now      func() time.Time
	logger   Logger
}

// Option настройка RateLimiter
type Option func(*RateLimiter)

// WithGlobalLimit общий token bucket поверх лимита на IP. rps <= 0 отключает.
func WithGlobalLimit(rps float64, burst int) Option {
	return func(rl *RateLimiter) {
		if rps <= 0 || burst <= 0 {
			return
		}
		rl.global = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithTrustedProxies сети прокси, которым доверяем X-Forwarded-For и X-Real-IP
func WithTrustedProxies(nets []*net.IPNet) Option {
	return func(rl *RateLimiter) {
		rl.trusted = nets
	}
}

// NewRateLimiter допускает requests запросов за window с одного IP
func NewRateLimiter(requests int, window time.Duration, logger Logger, opts ...Option) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string][]time.Time),
		requests: requests,
		window:   window,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// ParseTrustedProxies разбирает CIDR и одиночные адреса
func ParseTrustedProxies(values []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if !strings.Contains(v, "/") {
			ip := net.ParseIP(v)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", v)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(v)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", v, err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

// Middleware mux middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if ok, retryAfter := rl.allow(ip); !ok {
			rl.logger.Warn("%s %s - Rate limit exceeded: ip=%s, retry_after=%ds", r.Method, r.URL.Path, ip, retryAfter)
			handlers.RespondTooManyRequests(w, fmt.Sprintf(msgTooManyRequests, retryAfter), retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allow возвращает false и число секунд до освобождения слота
func (rl *RateLimiter) allow(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	hits := rl.prune(rl.visitors[ip], now)

	if len(hits) >= rl.requests {
		rl.visitors[ip] = hits
		return false, ceilSeconds(hits[0].Add(rl.window).Sub(now))
	}

	if rl.global != nil {
		res := rl.global.ReserveN(now, 1)
		if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
			res.CancelAt(now)
			rl.store(ip, hits)
			return false, ceilSeconds(delay)
		}
	}

	rl.visitors[ip] = append(hits, now)
	return true, 0
}

func (rl *RateLimiter) store(ip string, hits []time.Time) {
	if len(hits) == 0 {
		delete(rl.visitors, ip)
		return
	}
	rl.visitors[ip] = hits
}

// prune отбрасывает запросы, вышедшие из окна
func (rl *RateLimiter) prune(hits []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	return hits[i:]
}

// Cleanup удаляет клиентов без запросов в текущем окне
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, hits := range rl.visitors {
		rl.store(ip, rl.prune(hits, now))
	}
}

// Run периодически чистит неактивных клиентов до закрытия stopCh
func (rl *RateLimiter) Run(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-stopCh:
			return
		}
	}
}

// clientIP адрес клиента. Заголовкам верим только если соединение пришло от доверенного прокси;
// X-Forwarded-For читаем справа налево, пропуская доверенные хопы.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !rl.isTrusted(peer) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if net.ParseIP(hop) == nil {
				break
			}
			if !rl.isTrusted(hop) {
				return hop
			}
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(realIP) != nil {
		return realIP
	}

	return peer
}

func (rl *RateLimiter) isTrusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range rl.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func ceilSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
