package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geontech/vrtgo/vrt"
)

func TestRegistryDispatchesByPacketType(t *testing.T) {
	r := New()
	r.Register(Shape{PacketType: vrt.PacketTypeContext}, func(buf []byte) (vrt.Packet, error) {
		p, err := vrt.UnpackContextPacketFrom(buf)
		return p, err
	})
	r.Register(Shape{PacketType: vrt.PacketTypeCommand}, func(buf []byte) (vrt.Packet, error) {
		p, err := vrt.UnpackCommandPacketFrom(buf)
		return p, err
	})

	ctx := vrt.ContextPacket{StreamID: vrt.StreamID(1)}
	b := make([]byte, ctx.Size())
	_, err := ctx.PackInto(b)
	require.NoError(t, err)

	decoded, err := r.Decode(b)
	require.NoError(t, err)
	got, ok := decoded.(vrt.ContextPacket)
	require.True(t, ok)
	require.Equal(t, ctx.StreamID, got.StreamID)
}

func TestRegistryDispatchesByClassID(t *testing.T) {
	r := New()
	r.Register(Shape{PacketType: vrt.PacketTypeContext, HasClassID: true, OUI: vrt.OUI(0x001122), ClassCode: 0xABCD},
		func(buf []byte) (vrt.Packet, error) {
			return vrt.UnpackContextPacketFrom(buf)
		})

	var cid vrt.ClassIdentifier
	cid.SetOUI(vrt.OUI(0x001122))
	cid.SetPacketClassCode(0xABCD)
	ctx := vrt.ContextPacket{StreamID: vrt.StreamID(1), ClassID: vrt.Some(cid)}
	b := make([]byte, ctx.Size())
	_, err := ctx.PackInto(b)
	require.NoError(t, err)

	_, err = r.Decode(b)
	require.NoError(t, err)
}

func TestRegistryDecodeReturnsErrorForUnregisteredShape(t *testing.T) {
	r := New()
	ctx := vrt.ContextPacket{StreamID: vrt.StreamID(1)}
	b := make([]byte, ctx.Size())
	_, err := ctx.PackInto(b)
	require.NoError(t, err)

	_, err = r.Decode(b)
	require.Error(t, err)
}

func TestRegistryLaterRegisterReplacesDecoder(t *testing.T) {
	r := New()
	called := ""
	r.Register(Shape{PacketType: vrt.PacketTypeContext}, func(buf []byte) (vrt.Packet, error) {
		called = "first"
		return vrt.UnpackContextPacketFrom(buf)
	})
	r.Register(Shape{PacketType: vrt.PacketTypeContext}, func(buf []byte) (vrt.Packet, error) {
		called = "second"
		return vrt.UnpackContextPacketFrom(buf)
	})

	ctx := vrt.ContextPacket{StreamID: vrt.StreamID(1)}
	b := make([]byte, ctx.Size())
	_, err := ctx.PackInto(b)
	require.NoError(t, err)

	_, err = r.Decode(b)
	require.NoError(t, err)
	require.Equal(t, "second", called)
}
