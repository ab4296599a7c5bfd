package transport

import (
	"errors"
	"io"
	"testing"
)

func TestDummySeedAndEnumerate(t *testing.T) {
	d := NewDummy()
	d.Seed(0x0fd9, 0x0060,
		NewDummyDevice(DeviceInfo{Path: "fake-0", VendorID: 0x0fd9, ProductID: 0x0060}),
		NewDummyDevice(DeviceInfo{Path: "fake-1", VendorID: 0x0fd9, ProductID: 0x0060}),
	)

	devices, err := d.Enumerate(0x0fd9, 0x0060)
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("got %d devices, want 2", len(devices))
	}
	if devices[0].Info().Path != "fake-0" || devices[1].Info().Path != "fake-1" {
		t.Fatalf("seed order not preserved: %v, %v", devices[0].Info().Path, devices[1].Info().Path)
	}

	devices, err = d.Enumerate(0x0fd9, 0x9999)
	if err != nil {
		t.Fatalf("enumerate of unseeded pair failed: %v", err)
	}
	if len(devices) != 0 {
		t.Fatalf("unseeded pair reported %d devices", len(devices))
	}
}

func TestDummyFaultInjection(t *testing.T) {
	d := NewDummy()
	fault := errors.New("bus gone")
	d.Fail(0x0fd9, 0x0063, fault)

	if _, err := d.Enumerate(0x0fd9, 0x0063); !errors.Is(err, fault) {
		t.Fatalf("expected injected fault, got %v", err)
	}
	if _, err := d.Enumerate(0x0fd9, 0x0060); err != nil {
		t.Fatalf("fault leaked to another pair: %v", err)
	}
}

func TestDummyDeviceConnected(t *testing.T) {
	d := NewDummy()
	dev := NewDummyDevice(DeviceInfo{Path: "fake-0", VendorID: 0x0fd9, ProductID: 0x0063})

	if !dev.Connected() {
		t.Fatal("unseeded device reports disconnected")
	}

	d.Seed(0x0fd9, 0x0063, dev)
	if !dev.Connected() {
		t.Fatal("seeded device reports disconnected")
	}

	d.Unseed(0x0fd9, 0x0063)
	if dev.Connected() {
		t.Fatal("device still connected after unplugging")
	}
	if devices, err := d.Enumerate(0x0fd9, 0x0063); err != nil || len(devices) != 0 {
		t.Fatalf("unplugged pair still enumerates: %d, %v", len(devices), err)
	}
}

func TestDummyDeviceStream(t *testing.T) {
	dev := NewDummyDevice(DeviceInfo{Path: "fake"})
	stream, err := dev.Open()
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	n, err := stream.Write([]byte{0x02, 0x01})
	if err != nil || n != 2 {
		t.Fatalf("write = %d, %v", n, err)
	}
	if _, err := stream.Read(make([]byte, 8)); err != io.EOF {
		t.Fatalf("read = %v, want io.EOF", err)
	}
	if err := stream.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
