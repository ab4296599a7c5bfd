package streamdeck

import (
	"io"

	"github.com/seagrayinc/streamdeck/pkg/transport"
)

// Deck represents one physically attached deck device. It owns the raw
// device descriptor handed over by the transport; higher-level report I/O
// happens on the stream returned by Open.
type Deck struct {
	model  Model
	spec   modelSpec
	device transport.Device

	stream io.ReadWriteCloser
}

func newDeck(model Model, device transport.Device) *Deck {
	return &Deck{
		model:  model,
		spec:   modelSpecs[model],
		device: device,
	}
}

// Model returns the variant tag of the deck.
func (d *Deck) Model() Model {
	return d.model
}

// Name returns the human readable model name.
func (d *Deck) Name() string {
	return d.spec.name
}

// ID returns the platform-specific device path, usable to tell two decks of
// the same model apart.
func (d *Deck) ID() string {
	return d.device.Info().Path
}

// Info returns the descriptor metadata reported by the transport.
func (d *Deck) Info() transport.DeviceInfo {
	return d.device.Info()
}

// Connected reports whether the physical device this deck wraps is still
// attached to the host.
func (d *Deck) Connected() bool {
	return d.device.Connected()
}

// KeyCount returns the number of physical buttons.
func (d *Deck) KeyCount() int {
	return d.spec.rows * d.spec.cols
}

// KeyLayout returns the physical button grid as rows and columns.
func (d *Deck) KeyLayout() (rows, cols int) {
	return d.spec.rows, d.spec.cols
}

// KeyImageFormat describes the image encoding this variant expects for its
// buttons.
func (d *Deck) KeyImageFormat() ImageFormat {
	return d.spec.image
}

// Open opens the device for report I/O. It is a no-op if the deck is
// already open.
func (d *Deck) Open() error {
	if d.stream != nil {
		return nil
	}
	stream, err := d.device.Open()
	if err != nil {
		return err
	}
	d.stream = stream
	return nil
}

// Stream returns the raw report stream, or nil if the deck is not open.
func (d *Deck) Stream() io.ReadWriteCloser {
	return d.stream
}

// Close releases the report stream if one is open.
func (d *Deck) Close() error {
	if d.stream == nil {
		return nil
	}
	err := d.stream.Close()
	d.stream = nil
	return err
}
