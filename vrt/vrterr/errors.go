// Package vrterr defines the typed error kinds raised by the vrt codec, per
// spec.md 7. Errors are surfaced synchronously; there is no retry or
// fallback layer here, matching the teacher's own unwrapped fmt.Errorf
// style in protocol/protocol.go's checkPacketLength / tlvs.go's
// checkTLVLength.
package vrterr

import "fmt"

// Kind enumerates the error kinds from spec.md 7.
type Kind string

// Error kinds, one per row of spec.md 7's table.
const (
	KindBufferTooShort     Kind = "buffer-too-short"
	KindPacketTypeMismatch Kind = "packet-type-mismatch"
	KindClassIDMismatch    Kind = "class-id-mismatch"
	KindInvalidEnum        Kind = "invalid-enum"
	KindValueOutOfRange    Kind = "value-out-of-range"
	KindASCIIDecode        Kind = "ascii-decode"
)

// Error is the concrete error type every fallible vrt codec operation
// returns; vrt.ParseUUID is the exception and returns a plain fmt error.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "UnpackHeaderFrom"
	Err  error  // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vrt: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("vrt: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is allows errors.Is(err, vrterr.ErrBufferTooShort) style comparisons by
// kind rather than by pointer identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error for the given kind and operation, optionally
// wrapping a lower-level cause.
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Sentinel values for errors.Is comparisons; only Kind is compared.
var (
	ErrBufferTooShort     = &Error{Kind: KindBufferTooShort}
	ErrPacketTypeMismatch = &Error{Kind: KindPacketTypeMismatch}
	ErrClassIDMismatch    = &Error{Kind: KindClassIDMismatch}
	ErrInvalidEnum        = &Error{Kind: KindInvalidEnum}
	ErrValueOutOfRange    = &Error{Kind: KindValueOutOfRange}
	ErrASCIIDecode        = &Error{Kind: KindASCIIDecode}
)
