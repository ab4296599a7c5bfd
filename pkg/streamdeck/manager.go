// Package streamdeck discovers attached Elgato Stream Deck devices and
// returns a typed handle per device. Transport backend selection is
// delegated to pkg/transport.
package streamdeck

import (
	"log/slog"

	"github.com/seagrayinc/streamdeck/pkg/transport"
)

// DeviceManager enumerates attached deck devices over a single HID
// transport chosen at construction time. The manager owns the transport for
// its whole lifetime.
type DeviceManager struct {
	transport transport.Transport
}

// NewDeviceManager selects a HID transport and returns a manager bound to
// it. A non-empty backend name requests that exact backend; an empty name
// auto-probes. Selection failures are reported as the transport package's
// typed errors.
func NewDeviceManager(backend string) (*DeviceManager, error) {
	t, err := transport.Select(backend)
	if err != nil {
		return nil, err
	}
	return &DeviceManager{transport: t}, nil
}

// Transport returns the transport the manager was bound to.
func (m *DeviceManager) Transport() transport.Transport {
	return m.transport
}

// Close releases the underlying transport.
func (m *DeviceManager) Close() error {
	return m.transport.Close()
}

// Enumerate performs a live bus scan for every supported product signature
// and returns one fresh Deck per attached device. Results are grouped in
// signature table order; within a signature the transport's order is kept.
// An empty bus yields an empty slice and no error. A transport fault aborts
// the whole scan and is returned as-is, without partial results.
func (m *DeviceManager) Enumerate() ([]*Deck, error) {
	var decks []*Deck
	for _, p := range products {
		devices, err := m.transport.Enumerate(p.vendorID, p.productID)
		if err != nil {
			return nil, err
		}
		for _, device := range devices {
			decks = append(decks, newDeck(p.model, device))
		}
	}
	slog.Debug("deck enumeration finished", slog.Int("decks", len(decks)))
	return decks, nil
}
