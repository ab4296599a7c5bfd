package streamdeck

import "fmt"

// USB identifiers of the supported deck devices.
const (
	VendorElgato uint16 = 0x0fd9

	ProductOriginal   uint16 = 0x0060
	ProductOriginalV2 uint16 = 0x006d
	ProductMini       uint16 = 0x0063
	ProductXL         uint16 = 0x006c
)

// Model identifies one deck device variant. The set is closed.
type Model int

const (
	ModelOriginal Model = iota
	ModelOriginalV2
	ModelMini
	ModelXL
)

func (m Model) String() string {
	return modelSpecs[m].name
}

// ImageCodec names the on-wire image encoding a deck variant expects.
type ImageCodec int

const (
	CodecBMP ImageCodec = iota
	CodecJPEG
)

func (c ImageCodec) String() string {
	if c == CodecJPEG {
		return "JPEG"
	}
	return "BMP"
}

// ImageFormat describes how key images must be prepared for a deck variant.
// Pixels is the edge length of the square key image; FlipX/FlipY and
// Rotation describe the transform the hardware applies.
type ImageFormat struct {
	Pixels   int
	Codec    ImageCodec
	FlipX    bool
	FlipY    bool
	Rotation int
}

// modelSpec holds the fixed characteristics of one deck variant.
type modelSpec struct {
	name  string
	rows  int
	cols  int
	image ImageFormat
}

var modelSpecs = map[Model]modelSpec{
	ModelOriginal: {
		name:  "Stream Deck Original",
		rows:  3,
		cols:  5,
		image: ImageFormat{Pixels: 72, Codec: CodecBMP, FlipX: true, FlipY: true},
	},
	ModelOriginalV2: {
		name:  "Stream Deck Original (V2)",
		rows:  3,
		cols:  5,
		image: ImageFormat{Pixels: 72, Codec: CodecJPEG, FlipX: true, FlipY: true},
	},
	ModelMini: {
		name:  "Stream Deck Mini",
		rows:  2,
		cols:  3,
		image: ImageFormat{Pixels: 80, Codec: CodecBMP, FlipY: true, Rotation: 90},
	},
	ModelXL: {
		name:  "Stream Deck XL",
		rows:  4,
		cols:  8,
		image: ImageFormat{Pixels: 96, Codec: CodecJPEG, FlipX: true, FlipY: true},
	},
}

// productSignature binds one USB vendor/product pair to a deck model.
type productSignature struct {
	vendorID  uint16
	productID uint16
	model     Model
}

// products is the fixed discovery table. The order is significant: device
// enumeration reports matches grouped in this order.
var products = []productSignature{
	{VendorElgato, ProductOriginal, ModelOriginal},
	{VendorElgato, ProductOriginalV2, ModelOriginalV2},
	{VendorElgato, ProductMini, ModelMini},
	{VendorElgato, ProductXL, ModelXL},
}

// Signatures must be pairwise disjoint; a duplicate pair would make model
// classification ambiguous.
func init() {
	seen := make(map[[2]uint16]Model, len(products))
	for _, p := range products {
		key := [2]uint16{p.vendorID, p.productID}
		if prev, ok := seen[key]; ok {
			panic(fmt.Sprintf("streamdeck: product %04x:%04x registered for both %v and %v",
				p.vendorID, p.productID, prev, p.model))
		}
		seen[key] = p.model
	}
}
