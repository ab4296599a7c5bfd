package transport

import "log/slog"

// Backend identifies one of the HID transport implementations. The set is
// closed; there is no runtime registration.
type Backend int

const (
	// BackendDummy is the in-memory stub transport. It can be selected
	// explicitly but never takes part in auto-probing.
	BackendDummy Backend = iota
	// BackendHIDAPI uses the hidapi C library via sstallion/go-hid.
	BackendHIDAPI
	// BackendKaralabeHID uses the bundled hidapi from karalabe/hid.
	BackendKaralabeHID
	// BackendKaralabeUSB uses the bundled libusb from karalabe/usb.
	BackendKaralabeUSB
	// BackendUSBHID uses the pure Go rafaelmartins.com/p/usbhid library.
	BackendUSBHID
)

func (b Backend) String() string {
	switch b {
	case BackendDummy:
		return "dummy"
	case BackendHIDAPI:
		return "hidapi"
	case BackendKaralabeHID:
		return "karalabe-hid"
	case BackendKaralabeUSB:
		return "karalabe-usb"
	case BackendUSBHID:
		return "usbhid"
	}
	return "unknown"
}

// ParseBackend maps a backend name to its tag.
func ParseBackend(name string) (Backend, bool) {
	for _, e := range registry {
		if e.backend.String() == name {
			return e.backend, true
		}
	}
	return 0, false
}

// Backends returns the names of all selectable backends, in probe order.
func Backends() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.backend.String())
	}
	return names
}

type entry struct {
	backend Backend
	// probe checks whether the backend can work on this host without
	// touching any device. It must be side-effect free on failure.
	probe func() error
	// open constructs the transport. It may acquire native resources and
	// must release them itself if it fails.
	open func() (Transport, error)
}

func (e entry) attempt() (Transport, error) {
	if err := e.probe(); err != nil {
		return nil, err
	}
	return e.open()
}

// registry holds every known backend in a fixed order. Auto-probing walks
// this slice top to bottom and returns the first backend that works, so the
// order here is part of the selection contract.
var registry = []entry{
	{BackendDummy, probeDummy, openDummy},
	{BackendHIDAPI, probeHIDAPI, openHIDAPI},
	{BackendKaralabeHID, probeKaralabeHID, openKaralabeHID},
	{BackendKaralabeUSB, probeKaralabeUSB, openKaralabeUSB},
	{BackendUSBHID, probeUSBHID, openUSBHID},
}

// Select returns a working transport. A non-empty name requests that exact
// backend and fails without fallback if it cannot be used. An empty name
// auto-probes every real backend in registry order and returns the first
// one whose probe and construction both succeed.
func Select(name string) (Transport, error) {
	if name != "" {
		b, ok := ParseBackend(name)
		if !ok {
			return nil, &UnknownBackendError{Name: name}
		}
		return selectExplicit(registry, b)
	}
	return autoProbe(registry)
}

func selectExplicit(reg []entry, b Backend) (Transport, error) {
	for _, e := range reg {
		if e.backend != b {
			continue
		}
		t, err := e.attempt()
		if err != nil {
			return nil, &ProbeFailedError{Backend: b, Err: err}
		}
		return t, nil
	}
	return nil, &UnknownBackendError{Name: b.String()}
}

func autoProbe(reg []entry) (Transport, error) {
	errs := make(map[Backend]error, len(reg))
	for _, e := range reg {
		if e.backend == BackendDummy {
			continue
		}
		t, err := e.attempt()
		if err != nil {
			slog.Debug("HID backend probe failed", slog.String("backend", e.backend.String()), slog.Any("error", err))
			errs[e.backend] = err
			continue
		}
		slog.Debug("HID backend selected", slog.String("backend", e.backend.String()))
		return t, nil
	}
	return nil, &NoBackendError{Errs: errs}
}
