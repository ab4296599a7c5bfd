package transport

import (
	"errors"
	"io"

	"github.com/karalabe/usb"
)

func probeKaralabeUSB() error {
	if !usb.Supported() {
		return errors.New("libusb not supported on this platform")
	}
	return nil
}

func openKaralabeUSB() (Transport, error) {
	return &karalabeUSBTransport{}, nil
}

// karalabeUSBTransport scans the bus through karalabe/usb, which bundles
// libusb and hidapi together.
type karalabeUSBTransport struct{}

func (t *karalabeUSBTransport) Enumerate(vendorID, productID uint16) ([]Device, error) {
	infos, err := usb.Enumerate(vendorID, productID)
	if err != nil {
		return nil, err
	}
	devices := make([]Device, 0, len(infos))
	for _, info := range infos {
		devices = append(devices, &karalabeUSBDevice{info: info})
	}
	return devices, nil
}

func (t *karalabeUSBTransport) Close() error {
	return nil
}

type karalabeUSBDevice struct {
	info usb.DeviceInfo
}

func (d *karalabeUSBDevice) Info() DeviceInfo {
	return DeviceInfo{
		Path:         d.info.Path,
		VendorID:     d.info.VendorID,
		ProductID:    d.info.ProductID,
		Product:      d.info.Product,
		Manufacturer: d.info.Manufacturer,
		Serial:       d.info.Serial,
	}
}

func (d *karalabeUSBDevice) Connected() bool {
	infos, err := usb.Enumerate(d.info.VendorID, d.info.ProductID)
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

func (d *karalabeUSBDevice) Open() (io.ReadWriteCloser, error) {
	return d.info.Open()
}
