// Package notify provides the transient notices shown after mutating operations
package notify

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Level distinguishes success toasts from error toasts.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is one transient notification.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center keeps a bounded ring of recent notices, newest first. When the ring
// is full the oldest notice is dropped.
type Center struct {
	mu      sync.RWMutex
	notices []Notice
	limit   int
}

// NewCenter creates a center holding at most limit notices.
func NewCenter(limit int) *Center {
	if limit < 1 {
		limit = 100
	}
	return &Center{limit: limit}
}

// Success records a success notice and returns it.
func (c *Center) Success(message string) Notice {
	return c.push(LevelSuccess, message)
}

// Error records an error notice and returns it.
func (c *Center) Error(message string) Notice {
	return c.push(LevelError, message)
}

func (c *Center) push(level Level, message string) Notice {
	notice := Notice{
		ID:        ulid.Make().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append([]Notice{notice}, c.notices...)
	if len(c.notices) > c.limit {
		c.notices = c.notices[:c.limit]
	}
	return notice
}

// Recent returns up to n notices, newest first. n <= 0 returns all retained
// notices.
func (c *Center) Recent(n int) []Notice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n <= 0 || n > len(c.notices) {
		n = len(c.notices)
	}
	out := make([]Notice, n)
	copy(out, c.notices[:n])
	return out
}
