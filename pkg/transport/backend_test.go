package transport

import (
	"errors"
	"strings"
	"testing"
)

func okEntry(b Backend, probed *bool) entry {
	return entry{
		backend: b,
		probe: func() error {
			if probed != nil {
				*probed = true
			}
			return nil
		},
		open: func() (Transport, error) { return NewDummy(), nil },
	}
}

func failingEntry(b Backend, cause error) entry {
	return entry{
		backend: b,
		probe:   func() error { return cause },
		open:    func() (Transport, error) { return NewDummy(), nil },
	}
}

func TestSelectUnknownBackend(t *testing.T) {
	_, err := Select("no-such-backend")
	var unknown *UnknownBackendError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownBackendError, got %v", err)
	}
	if unknown.Name != "no-such-backend" {
		t.Fatalf("wrong backend name in error: %q", unknown.Name)
	}
}

func TestSelectDummyExplicit(t *testing.T) {
	tr, err := Select("dummy")
	if err != nil {
		t.Fatalf("explicit dummy selection failed: %v", err)
	}
	if _, ok := tr.(*Dummy); !ok {
		t.Fatalf("expected a *Dummy transport, got %T", tr)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestExplicitSelectionNoFallback(t *testing.T) {
	cause := errors.New("library missing")
	otherProbed := false
	reg := []entry{
		failingEntry(BackendHIDAPI, cause),
		okEntry(BackendUSBHID, &otherProbed),
	}

	_, err := selectExplicit(reg, BackendHIDAPI)
	var probe *ProbeFailedError
	if !errors.As(err, &probe) {
		t.Fatalf("expected ProbeFailedError, got %v", err)
	}
	if probe.Backend != BackendHIDAPI {
		t.Fatalf("error names backend %v, want %v", probe.Backend, BackendHIDAPI)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not wrapped: %v", err)
	}
	if otherProbed {
		t.Fatal("explicit selection fell back to another backend")
	}
}

func TestAutoProbeFirstSuccessWins(t *testing.T) {
	laterProbed := false
	reg := []entry{
		okEntry(BackendHIDAPI, nil),
		okEntry(BackendKaralabeHID, &laterProbed),
	}

	tr, err := autoProbe(reg)
	if err != nil {
		t.Fatalf("auto-probe failed: %v", err)
	}
	if tr == nil {
		t.Fatal("no transport returned")
	}
	if laterProbed {
		t.Fatal("auto-probe kept scanning after the first success")
	}
}

func TestAutoProbeSkipsDummy(t *testing.T) {
	reg := []entry{
		{
			backend: BackendDummy,
			probe: func() error {
				t.Fatal("dummy backend was probed")
				return nil
			},
			open: func() (Transport, error) { return NewDummy(), nil },
		},
		failingEntry(BackendHIDAPI, errors.New("nope")),
	}

	_, err := autoProbe(reg)
	var none *NoBackendError
	if !errors.As(err, &none) {
		t.Fatalf("expected NoBackendError, got %v", err)
	}
	if _, ok := none.Errs[BackendDummy]; ok {
		t.Fatal("dummy backend appears in the failure map")
	}
}

func TestAutoProbeAggregatesFailures(t *testing.T) {
	probeErr := errors.New("probe: library not loadable")
	openErr := errors.New("open: permission denied")
	reg := []entry{
		failingEntry(BackendHIDAPI, probeErr),
		{
			backend: BackendKaralabeUSB,
			probe:   func() error { return nil },
			open:    func() (Transport, error) { return nil, openErr },
		},
	}

	_, err := autoProbe(reg)
	var none *NoBackendError
	if !errors.As(err, &none) {
		t.Fatalf("expected NoBackendError, got %v", err)
	}
	if len(none.Errs) != 2 {
		t.Fatalf("failure map has %d entries, want 2", len(none.Errs))
	}
	for b, cause := range none.Errs {
		if cause == nil {
			t.Fatalf("backend %v recorded a nil cause", b)
		}
	}
	if !errors.Is(err, probeErr) || !errors.Is(err, openErr) {
		t.Fatalf("individual causes not reachable from %v", err)
	}
}

func TestAutoProbeContinuesPastConstructionFailure(t *testing.T) {
	reg := []entry{
		{
			backend: BackendHIDAPI,
			probe:   func() error { return nil },
			open:    func() (Transport, error) { return nil, errors.New("context init failed") },
		},
		okEntry(BackendUSBHID, nil),
	}

	tr, err := autoProbe(reg)
	if err != nil {
		t.Fatalf("auto-probe failed: %v", err)
	}
	if tr == nil {
		t.Fatal("no transport returned")
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name string
		want Backend
		ok   bool
	}{
		{"dummy", BackendDummy, true},
		{"hidapi", BackendHIDAPI, true},
		{"karalabe-hid", BackendKaralabeHID, true},
		{"karalabe-usb", BackendKaralabeUSB, true},
		{"usbhid", BackendUSBHID, true},
		{"", 0, false},
		{"libusb", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseBackend(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseBackend(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNoBackendErrorMessage(t *testing.T) {
	err := &NoBackendError{Errs: map[Backend]error{
		BackendHIDAPI: errors.New("cause A"),
		BackendUSBHID: errors.New("cause B"),
	}}
	msg := err.Error()
	for _, want := range []string{"hidapi", "usbhid", "cause A", "cause B"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
