// Package ratelimiter は、キーごとのトークンバケットで操作の頻度を制限します。
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepThreshold を超えたら使われていないキーを掃除する
const sweepThreshold = 1024

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter は、キー（クライアントIPなど）ごとに interval あたり limit 回までを許可します。
// バーストは limit 回で、トークンは interval/limit ごとに1つ回復します。
type Limiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位で回復するか
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock はテスト用に時刻の取得元を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// NewLimiter は新しいLimiterのインスタンスを生成します。
// limit が0以下の場合は nil を返し、nil の Limiter は常に許可します。
func NewLimiter(limit int, interval time.Duration, opts ...Option) *Limiter {
	if limit <= 0 || interval <= 0 {
		return nil
	}
	l := &Limiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		entries:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow は key の呼び出しを1回数え、上限内かどうかを返します。
// 拒否した場合は、次に許可されるまでの待ち時間も返します。
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) > sweepThreshold {
		l.sweep(now)
	}

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Every(l.interval/time.Duration(l.limit)), l.limit)}
		l.entries[key] = e
	}
	e.lastSeen = now

	r := e.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		// 拒否した分のトークンは返す
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// sweep は interval 以上使われていないキーを消す。その間にバケットは満杯に戻っている
func (l *Limiter) sweep(now time.Time) {
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) >= l.interval {
			delete(l.entries, k)
		}
	}
}
