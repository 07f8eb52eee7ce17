// File: timer.go
// Title: Performance Timer
// Description: Measures an operation and logs its duration on Stop.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop stops the timer and logs the elapsed time at debug level. Calling
// Stop more than once returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := time.Since(t.startTime)

	entry := t.logger.newEntry(LevelDebug, t.operation+" completed", nil, t.fields)
	if entry != nil {
		entry.Duration = elapsed
		t.logger.write(entry)
	}
	return elapsed
}
