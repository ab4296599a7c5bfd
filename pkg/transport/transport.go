// Package transport provides the low-level HID transports used to discover
// deck devices. A transport scans the USB bus for a given vendor/product
// pair and hands back raw device descriptors; report framing and report
// semantics belong to the backing HID library and the layers above.
package transport

import "io"

// DeviceInfo describes a HID device descriptor as reported by a bus scan.
type DeviceInfo struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
	Serial       string
}

// Device represents one physically attached HID device reported by a
// transport. A Device is a descriptor, not an open handle; Open yields the
// raw report stream. Ownership of a Device passes to whoever wraps it.
type Device interface {
	// Info returns the descriptor metadata for the device.
	Info() DeviceInfo
	// Connected reports whether the device is still present, checked with
	// a live bus scan.
	Connected() bool
	// Open opens the device for report I/O.
	Open() (io.ReadWriteCloser, error)
}

// Transport enumerates HID devices on the bus.
type Transport interface {
	// Enumerate performs a live bus scan scoped to the given vendor and
	// product identifiers. It returns an empty slice, not an error, when
	// nothing matches.
	Enumerate(vendorID, productID uint16) ([]Device, error)
	// Close releases any resources held by the transport.
	Close() error
}
