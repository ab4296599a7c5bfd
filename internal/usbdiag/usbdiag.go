// Package usbdiag dumps raw USB descriptor information for deck hardware.
// It talks to libusb directly through gousb, bypassing the HID transports,
// which makes it useful to check whether a deck is visible on the bus at
// all when discovery comes up empty.
package usbdiag

import (
	"fmt"

	"github.com/google/gousb"
)

// Entry describes one matching USB device found on the bus.
type Entry struct {
	Bus          int
	Address      int
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
	Serial       string
}

// List scans the bus for devices with the given vendor id and reads their
// string descriptors.
func List(vendorID uint16) ([]Entry, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devices, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return uint16(desc.Vendor) == vendorID
	})
	for _, dev := range devices {
		defer dev.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("usb scan: %w", err)
	}

	entries := make([]Entry, 0, len(devices))
	for _, dev := range devices {
		e := Entry{
			Bus:       dev.Desc.Bus,
			Address:   dev.Desc.Address,
			VendorID:  uint16(dev.Desc.Vendor),
			ProductID: uint16(dev.Desc.Product),
		}
		// String descriptor reads need extra control transfers and can be
		// refused by the OS; report what we got.
		if s, err := dev.Manufacturer(); err == nil {
			e.Manufacturer = s
		}
		if s, err := dev.Product(); err == nil {
			e.Product = s
		}
		if s, err := dev.SerialNumber(); err == nil {
			e.Serial = s
		}
		entries = append(entries, e)
	}
	return entries, nil
}
