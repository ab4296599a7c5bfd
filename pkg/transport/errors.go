package transport

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownBackendError is returned when an explicitly requested backend name
// is not registered.
type UnknownBackendError struct {
	Name string
}

func (e *UnknownBackendError) Error() string {
	return fmt.Sprintf("unknown HID transport backend %q", e.Name)
}

// ProbeFailedError is returned when the single explicitly requested backend
// failed its probe or its construction. No fallback is attempted in that
// case; the cause is wrapped.
type ProbeFailedError struct {
	Backend Backend
	Err     error
}

func (e *ProbeFailedError) Error() string {
	return fmt.Sprintf("probe failed on HID backend %q: %v", e.Backend, e.Err)
}

func (e *ProbeFailedError) Unwrap() error {
	return e.Err
}

// NoBackendError is returned when auto-probing exhausted every real backend.
// Errs holds the individual failure cause of each candidate so operators can
// tell a missing native library from a permission problem per backend.
type NoBackendError struct {
	Errs map[Backend]error
}

func (e *NoBackendError) Error() string {
	var sb strings.Builder
	sb.WriteString("no functional HID transport backend found")
	for _, b := range e.backends() {
		fmt.Fprintf(&sb, "; %s: %v", b, e.Errs[b])
	}
	return sb.String()
}

func (e *NoBackendError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errs))
	for _, b := range e.backends() {
		errs = append(errs, e.Errs[b])
	}
	return errs
}

func (e *NoBackendError) backends() []Backend {
	backends := make([]Backend, 0, len(e.Errs))
	for b := range e.Errs {
		backends = append(backends, b)
	}
	sort.Slice(backends, func(i, j int) bool { return backends[i] < backends[j] })
	return backends
}
