package transport

import "io"

func probeDummy() error {
	return nil
}

func openDummy() (Transport, error) {
	return NewDummy(), nil
}

// Dummy is a transport with no backing hardware. It reports whatever devices
// it was seeded with, which makes it useful in tests and on machines without
// any deck attached. It is excluded from auto-probing.
type Dummy struct {
	devices map[[2]uint16][]Device
	faults  map[[2]uint16]error
}

// NewDummy returns an empty dummy transport.
func NewDummy() *Dummy {
	return &Dummy{
		devices: make(map[[2]uint16][]Device),
		faults:  make(map[[2]uint16]error),
	}
}

// Seed registers fake devices to be reported for a vendor/product pair.
// Seeded dummy devices report Connected as long as they stay seeded.
func (t *Dummy) Seed(vendorID, productID uint16, devices ...Device) {
	key := [2]uint16{vendorID, productID}
	for _, dev := range devices {
		if dd, ok := dev.(*dummyDevice); ok {
			dd.owner = t
			dd.key = key
		}
	}
	t.devices[key] = append(t.devices[key], devices...)
}

// Unseed removes every seeded device for a vendor/product pair, simulating
// the hardware being unplugged.
func (t *Dummy) Unseed(vendorID, productID uint16) {
	delete(t.devices, [2]uint16{vendorID, productID})
}

// Fail makes every Enumerate call for the given pair return err, simulating
// a bus fault.
func (t *Dummy) Fail(vendorID, productID uint16, err error) {
	t.faults[[2]uint16{vendorID, productID}] = err
}

func (t *Dummy) Enumerate(vendorID, productID uint16) ([]Device, error) {
	key := [2]uint16{vendorID, productID}
	if err := t.faults[key]; err != nil {
		return nil, err
	}
	return append([]Device(nil), t.devices[key]...), nil
}

func (t *Dummy) Close() error {
	return nil
}

// NewDummyDevice returns an in-memory device descriptor whose stream
// discards writes and reports EOF on reads.
func NewDummyDevice(info DeviceInfo) Device {
	return &dummyDevice{info: info}
}

type dummyDevice struct {
	info  DeviceInfo
	owner *Dummy
	key   [2]uint16
}

func (d *dummyDevice) Info() DeviceInfo {
	return d.info
}

func (d *dummyDevice) Connected() bool {
	if d.owner == nil {
		return true
	}
	for _, dev := range d.owner.devices[d.key] {
		if dev == Device(d) {
			return true
		}
	}
	return false
}

func (d *dummyDevice) Open() (io.ReadWriteCloser, error) {
	return &dummyStream{}, nil
}

type dummyStream struct{}

func (s *dummyStream) Write(p []byte) (int, error) {
	return len(p), nil
}

func (s *dummyStream) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func (s *dummyStream) Close() error {
	return nil
}
