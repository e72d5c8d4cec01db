// Package secs2 implements the SECS-II data item type system: the
// self-describing binary format used to carry structured values between
// semiconductor equipment and host systems.
//
// Each data item consists of a one-byte header (format code plus the number
// of length bytes), one to three big-endian length bytes, and the payload.
// The payload of a list counts child items; every other payload counts bytes.
// The format code table is fixed by the SEMI E5 standard and must round-trip
// byte exact.
//
// Items are created per message, never shared between messages, and are safe
// for concurrent reads once built. Numeric constructors reject values outside
// the representable range of the declared byte width with a ValueRangeError;
// Decode rejects malformed bytes with a FormatError.
//
// Usage:
//
//	item := secs2.L(
//	    secs2.U1(1),
//	    secs2.A("text"),
//	)
//	data := item.ToBytes()
//
//	decoded, n, err := secs2.Decode(data)
package secs2
