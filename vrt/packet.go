package vrt

// Packet is the contract every VRT packet shape implements, per spec.md
// 4.10: a pure value that knows its own wire size, can write itself into a
// caller-supplied buffer, and can check whether a buffer's leading bytes
// are consistent with its shape. Grounded on the teacher's
// Announce.MarshalBinaryTo / UnmarshalBinary pair, generalized to a shared
// interface across all six packet shapes.
type Packet interface {
	// Size returns the number of bytes this packet occupies on the wire,
	// always a multiple of 4.
	Size() int

	// PackInto writes the packet into b, which must have length >= Size().
	// It returns the number of bytes written and an error (KindBufferTooShort)
	// if b is too small to hold the packet.
	PackInto(b []byte) (int, error)
}

// Matcher is implemented by packet shapes whose leading bytes can be
// checked against a declared shape signature without fully unpacking,
// per spec.md 4.10's matches operation. vrt/registry does not call it; it
// derives its own fingerprint from the header and class ID.
type Matcher interface {
	// Matches reports whether the leading bytes of buf are consistent with
	// this shape. The shapes in this package compare the packet-type code
	// only; indicator bits and the class ID are not checked.
	Matches(buf []byte) (bool, error)
}
