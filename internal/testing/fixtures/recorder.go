package fixtures

import (
	"fmt"
	"sync"

	"github.com/vvka-141/baseline/pkg/baseline"
)

// RecordingT is a baseline.TestingT that records failures instead of stopping
// the goroutine, so tests can observe both the failure and the return value.
type RecordingT struct {
	mu     sync.Mutex
	fatals []string
	errors []string
}

func (r *RecordingT) Helper() {}

func (r *RecordingT) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *RecordingT) Fatalf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

// Fatals returns the messages passed to Fatalf.
func (r *RecordingT) Fatals() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.fatals...)
}

// Errors returns the messages passed to Errorf.
func (r *RecordingT) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

// Failed reports whether any failure was recorded.
func (r *RecordingT) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fatals)+len(r.errors) > 0
}

var _ baseline.TestingT = (*RecordingT)(nil)
