package transport

import (
	"errors"
	"io"

	"github.com/karalabe/hid"
)

func probeKaralabeHID() error {
	if !hid.Supported() {
		return errors.New("hidapi not supported on this platform")
	}
	return nil
}

func openKaralabeHID() (Transport, error) {
	return &karalabeHIDTransport{}, nil
}

// karalabeHIDTransport scans the bus through karalabe/hid, which bundles
// its own hidapi build.
type karalabeHIDTransport struct{}

func (t *karalabeHIDTransport) Enumerate(vendorID, productID uint16) ([]Device, error) {
	infos, err := hid.Enumerate(vendorID, productID)
	if err != nil {
		return nil, err
	}
	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, &karalabeHIDDevice{info: info})
	}
	return devices, nil
}

func (t *karalabeHIDTransport) Close() error {
	return nil
}

type karalabeHIDDevice struct {
	info hid.DeviceInfo
}

func (d *karalabeHIDDevice) Info() DeviceInfo {
	return DeviceInfo{
		Path:         d.info.Path,
		VendorID:     d.info.VendorID,
		ProductID:    d.info.ProductID,
		Product:      d.info.Product,
		Manufacturer: d.info.Manufacturer,
		Serial:       d.info.Serial,
	}
}

func (d *karalabeHIDDevice) Connected() bool {
	infos, err := hid.Enumerate(d.info.VendorID, d.info.ProductID)
	if err != nil {
		return false
	}
	for _, info := range infos {
		if info.Path == d.info.Path {
			return true
		}
	}
	return false
}

func (d *karalabeHIDDevice) Open() (io.ReadWriteCloser, error) {
	return d.info.Open()
}
