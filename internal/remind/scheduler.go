package remind

import (
	"errors"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realClock struct{}

type realTimer struct{ t *time.Timer }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

func (t realTimer) Stop() bool { return t.t.Stop() }

var ErrBadDuration = errors.New("invalid duration token")

var durationPattern = regexp.MustCompile(`^(\d+)(s|m|h|d)$`)

// ParseDuration accepts tokens of the shape <integer>(s|m|h|d). Anything else
// is rejected; a zero amount is accepted.
func ParseDuration(token string) (time.Duration, error) {
	match := durationPattern.FindStringSubmatch(token)
	if match == nil {
		return 0, ErrBadDuration
	}
	amount, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, ErrBadDuration
	}
	switch match[2] {
	case "s":
		return time.Duration(amount) * time.Second, nil
	case "m":
		return time.Duration(amount) * time.Minute, nil
	case "h":
		return time.Duration(amount) * time.Hour, nil
	default:
		return time.Duration(amount) * 24 * time.Hour, nil
	}
}

// Delivery pushes a reminder to its target. Failures are the implementation's
// problem; the scheduler never retries.
type Delivery func(userID, message string)

// Scheduler fires one-shot reminders. Pending reminders live only in memory
// and are lost on restart.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	deliver Delivery
	pending map[string]Timer
}

func NewScheduler(deliver Delivery) *Scheduler {
	return &Scheduler{
		clock:   realClock{},
		deliver: deliver,
		pending: make(map[string]Timer),
	}
}

// Schedule queues a reminder and returns a handle that can cancel it before
// it fires.
func (s *Scheduler) Schedule(userID string, delay time.Duration, message string) string {
	handle := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[handle] = s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		_, live := s.pending[handle]
		delete(s.pending, handle)
		s.mu.Unlock()
		if !live {
			return
		}
		s.deliver(userID, message)
	})
	return handle
}

func (s *Scheduler) Cancel(handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.pending[handle]
	if !ok {
		return false
	}
	delete(s.pending, handle)
	timer.Stop()
	return true
}

func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
