package transport

import (
	"io"

	"github.com/sstallion/go-hid"
)

func probeHIDAPI() error {
	return hid.Init()
}

func openHIDAPI() (Transport, error) {
	return &hidapiTransport{}, nil
}

// hidapiTransport scans the bus through the hidapi C library.
type hidapiTransport struct{}

func (t *hidapiTransport) Enumerate(vendorID, productID uint16) ([]Device, error) {
	var devices []Device
	err := hid.Enumerate(vendorID, productID, func(info *hid.DeviceInfo) error {
		devices = append(devices, &hidapiDevice{info: DeviceInfo{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Product:      info.ProductStr,
			Manufacturer: info.MfrStr,
			Serial:       info.SerialNbr,
		}})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return devices, nil
}

func (t *hidapiTransport) Close() error {
	return hid.Exit()
}

type hidapiDevice struct {
	info DeviceInfo
}

func (d *hidapiDevice) Info() DeviceInfo {
	return d.info
}

func (d *hidapiDevice) Connected() bool {
	found := false
	err := hid.Enumerate(d.info.VendorID, d.info.ProductID, func(info *hid.DeviceInfo) error {
		if info.Path == d.info.Path {
			found = true
		}
		return nil
	})
	return err == nil && found
}

func (d *hidapiDevice) Open() (io.ReadWriteCloser, error) {
	return hid.OpenPath(d.info.Path)
}
