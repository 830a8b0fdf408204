// Package registry provides shape-dispatch over a mixed stream of VRT
// packets: callers register a fingerprint-matched constructor per shape,
// then hand Decode raw buffers and get back the right concrete packet
// type. Grounded on protocol.DecodePacket's type-switch dispatch, but
// generalized into a registered table since vrt's packet set is open
// (generator/user code can register shapes the core doesn't know about),
// unlike PTP's closed MessageType enum.
package registry

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/geontech/vrtgo/vrt"
	"github.com/geontech/vrtgo/vrt/vrterr"
)

// Shape fingerprints the leading bytes a registered packet type matches
// against: packet type, class-ID-enable, and (if declared) the exact
// OUI/packet-class-code pair from the Class Identifier word.
type Shape struct {
	PacketType vrt.PacketType
	HasClassID bool
	OUI        vrt.OUI
	ClassCode  uint16
}

func (s Shape) fingerprint() uint64 {
	var key [12]byte
	key[0] = byte(s.PacketType)
	if s.HasClassID {
		key[1] = 1
		key[2] = byte(s.OUI >> 16)
		key[3] = byte(s.OUI >> 8)
		key[4] = byte(s.OUI)
		key[5] = byte(s.ClassCode >> 8)
		key[6] = byte(s.ClassCode)
	}
	return xxhash.Sum64(key[:])
}

// Decoder unpacks a buffer into a concrete vrt.Packet once its shape has
// been matched.
type Decoder func(buf []byte) (vrt.Packet, error)

// Registry maps declared Shapes to Decoders by an xxhash fingerprint of
// their leading-bytes matcher, giving Decode O(1) average-case dispatch on
// streams carrying many distinct class IDs rather than a linear matches()
// scan across every registered shape.
type Registry struct {
	decoders map[uint64]Decoder
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{decoders: make(map[uint64]Decoder)}
}

// Register associates shape with decode. A later call for the same shape
// replaces the earlier decoder.
func (r *Registry) Register(shape Shape, decode Decoder) {
	r.decoders[shape.fingerprint()] = decode
}

// shapeOf derives the Shape fingerprint key directly from a buffer's
// leading bytes, without fully unpacking the packet.
func shapeOf(buf []byte) (Shape, error) {
	h, err := vrt.UnpackHeaderFrom(buf)
	if err != nil {
		return Shape{}, err
	}
	s := Shape{PacketType: h.PacketType(), HasClassID: h.ClassIDEnable()}
	if s.HasClassID {
		prologueOff := 4
		if h.PacketType().HasStreamID() {
			prologueOff += 4
		}
		if len(buf) < prologueOff+8 {
			return Shape{}, vrterr.New(vrterr.KindBufferTooShort, "registry.shapeOf", nil)
		}
		cid := vrt.UnpackClassIdentifierFrom(buf[prologueOff:])
		s.OUI = cid.OUI()
		s.ClassCode = cid.PacketClassCode()
	}
	return s, nil
}

// Decode fingerprints buf's leading bytes, looks up the matching
// registered Decoder, and invokes it. It returns vrterr.KindClassIDMismatch
// if no registered shape matches.
func (r *Registry) Decode(buf []byte) (vrt.Packet, error) {
	shape, err := shapeOf(buf)
	if err != nil {
		return nil, err
	}
	decode, ok := r.decoders[shape.fingerprint()]
	if !ok {
		return nil, vrterr.New(vrterr.KindClassIDMismatch, "registry.Decode",
			fmt.Errorf("no registered shape for packet-type %s", shape.PacketType))
	}
	return decode(buf)
}
