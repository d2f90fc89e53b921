package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles each client IP with a token bucket and blocks an IP
// for blockTime once it runs out of tokens.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	rps       rate.Limit
	burst     int
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(rps, burst int, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		rps:       rate.Limit(rps),
		burst:     burst,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, blockedUntil)
				return
			}
			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(r.rps, r.burst)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.Allow() {
			r.mu.Lock()
			blockedUntil := r.now().Add(r.blockTime)
			r.blocked[ip] = blockedUntil
			r.mu.Unlock()

			r.reject(w, blockedUntil)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, blockedUntil time.Time) {
	retryAfter := int(blockedUntil.Sub(r.now()).Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequest(nil))
}

// NewAuthRateLimiter builds the limiter guarding the nonce and login endpoints.
func (m *Middlewares) NewAuthRateLimiter(blockTime time.Duration) *RateLimiter {
	return NewRateLimiter(
		m.InternalConfig.App.AuthRequestsPerSecond,
		m.InternalConfig.App.AuthRequestsBurst,
		blockTime,
		m.Log,
	)
}
