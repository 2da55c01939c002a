package guard

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Verdict is the rate limiter's decision for one incoming message.
type Verdict int

const (
	// Allow lets the message through.
	Allow Verdict = iota
	// Cooldown means the user just exceeded the limit; the caller should
	// tell them once and then stay silent.
	Cooldown
	// Drop means the user is inside an active cooldown; the message is
	// discarded without any reply.
	Drop
)

type userLimit struct {
	limiter       *rate.Limiter
	cooldownUntil time.Time
}

// RateLimiter tracks a sliding per-user message budget. Exceeding it puts the
// user into a timed cooldown during which messages are silently dropped.
type RateLimiter struct {
	mu       sync.Mutex
	users    map[int64]*userLimit
	limit    rate.Limit
	burst    int
	cooldown time.Duration
	now      func() time.Time
}

// NewRateLimiter allows messages msgs per window for each user, with cooldown
// applied on violation.
func NewRateLimiter(msgs int, window, cooldown time.Duration) *RateLimiter {
	if msgs < 1 {
		msgs = 1
	}

	return &RateLimiter{
		users:    make(map[int64]*userLimit),
		limit:    rate.Every(window / time.Duration(msgs)),
		burst:    msgs,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Check records one message from userID and returns the verdict.
func (rl *RateLimiter) Check(userID int64) Verdict {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	u, ok := rl.users[userID]
	if !ok {
		u = &userLimit{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.users[userID] = u
	}

	now := rl.now()

	if now.Before(u.cooldownUntil) {
		return Drop
	}

	if u.limiter.AllowN(now, 1) {
		return Allow
	}

	u.cooldownUntil = now.Add(rl.cooldown)

	return Cooldown
}
