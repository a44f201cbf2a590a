package middleware

import (
	"net/http"
	"sync"
	"time"
)

// visitor tracks the remaining token budget for one client.
type visitor struct {
	remaining float64
	seenAt    time.Time
}

// IPLimiter is a token-bucket rate limiter keyed by client IP. Each client
// starts with a full burst, tokens refill continuously at rps, and clients
// idle longer than idleTTL are forgotten.
type IPLimiter struct {
	rps     float64
	burst   float64
	idleTTL time.Duration

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewIPLimiter creates a limiter allowing rps requests per second with the
// given burst per client.
func NewIPLimiter(rps float64, burst int, idleTTL time.Duration) *IPLimiter {
	l := &IPLimiter{
		rps:      rps,
		burst:    float64(burst),
		idleTTL:  idleTTL,
		visitors: make(map[string]*visitor),
	}
	go l.sweep()
	return l
}

// Allow reports whether a request from ip fits its budget and spends one
// token when it does.
func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, ok := l.visitors[ip]
	if !ok {
		l.visitors[ip] = &visitor{remaining: l.burst - 1, seenAt: now}
		return true
	}

	v.remaining = min(l.burst, v.remaining+now.Sub(v.seenAt).Seconds()*l.rps)
	v.seenAt = now
	if v.remaining < 1 {
		return false
	}
	v.remaining--
	return true
}

// sweep drops visitors that have been idle longer than idleTTL so the map
// does not grow without bound.
func (l *IPLimiter) sweep() {
	ticker := time.NewTicker(l.idleTTL)
	defer ticker.Stop()
	for range ticker.C {
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.seenAt) > l.idleTTL {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit returns middleware that refuses requests beyond rps with the
// given burst per client IP, responding 429 Too Many Requests.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := NewIPLimiter(rps, burst, 10*time.Minute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers the address resolved by chi's RealIP middleware.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
