package transport

import (
	"io"

	usbhid "rafaelmartins.com/p/usbhid"
)

func probeUSBHID() error {
	_, err := usbhid.Enumerate(nil)
	return err
}

func openUSBHID() (Transport, error) {
	return &usbhidTransport{}, nil
}

// usbhidTransport scans the bus through the pure Go usbhid library.
type usbhidTransport struct{}

func (t *usbhidTransport) Enumerate(vendorID, productID uint16) ([]Device, error) {
	devs, err := usbhid.Enumerate(func(d *usbhid.Device) bool {
		return d.VendorId() == vendorID && d.ProductId() == productID
	})
	if err != nil {
		return nil, err
	}
	devices := make([]Device, 0, len(devs))
	for _, dev := range devs {
		devices = append(devices, &usbhidDevice{dev: dev})
	}
	return devices, nil
}

func (t *usbhidTransport) Close() error {
	return nil
}

type usbhidDevice struct {
	dev *usbhid.Device
}

func (d *usbhidDevice) Info() DeviceInfo {
	return DeviceInfo{
		Path:         d.dev.Path(),
		VendorID:     d.dev.VendorId(),
		ProductID:    d.dev.ProductId(),
		Product:      d.dev.Product(),
		Manufacturer: d.dev.Manufacturer(),
		Serial:       d.dev.SerialNumber(),
	}
}

func (d *usbhidDevice) Connected() bool {
	path := d.dev.Path()
	devs, err := usbhid.Enumerate(func(dd *usbhid.Device) bool {
		return dd.Path() == path
	})
	return err == nil && len(devs) > 0
}

func (d *usbhidDevice) Open() (io.ReadWriteCloser, error) {
	path := d.dev.Path()
	dev, err := usbhid.Get(func(dd *usbhid.Device) bool {
		return dd.Path() == path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbhidStream{dev: dev}, nil
}

// usbhidStream adapts the library's report-level calls to the byte stream
// the Device contract expects. The first byte of every write is the report
// ID, matching the hidapi convention used by the other backends.
type usbhidStream struct {
	dev *usbhid.Device
}

func (s *usbhidStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.dev.SetOutputReport(p[0], p[1:]); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *usbhidStream) Read(p []byte) (int, error) {
	_, buf, err := s.dev.GetInputReport()
	if err != nil {
		return 0, err
	}
	return copy(p, buf), nil
}

func (s *usbhidStream) Close() error {
	return s.dev.Close()
}
