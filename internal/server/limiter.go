package server

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client address
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter allows r requests per second with bursts of b per client
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

// Allow reports whether the client at addr may make a request now
func (i *IPRateLimiter) Allow(addr string) bool {
	return i.getLimiter(clientIP(addr)).Allow()
}

// LimitMiddleware answers 429 once a client exceeds its budget
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.Allow(r.RemoteAddr) {
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "too many requests, try again later", Kind: "rate"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port so every connection of a client shares a bucket
func clientIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
