package sf

import "github.com/semifab/secsmsg/secs2"

// Shortcut constructors for scalar schemas, named after the SML type names.

// A creates an ASCII string schema.
func A(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.ASCIIType, size) }

// B creates a binary schema.
func B(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.BinaryType, size) }

// Boolean creates a boolean schema.
func Boolean(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.BooleanType, size) }

// I1 creates a 1-byte signed integer schema.
func I1(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Int8Type, size) }

// I2 creates a 2-byte signed integer schema.
func I2(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Int16Type, size) }

// I4 creates a 4-byte signed integer schema.
func I4(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Int32Type, size) }

// I8 creates an 8-byte signed integer schema.
func I8(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Int64Type, size) }

// U1 creates a 1-byte unsigned integer schema.
func U1(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Uint8Type, size) }

// U2 creates a 2-byte unsigned integer schema.
func U2(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Uint16Type, size) }

// U4 creates a 4-byte unsigned integer schema.
func U4(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Uint32Type, size) }

// U8 creates an 8-byte unsigned integer schema.
func U8(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Uint64Type, size) }

// F4 creates a 4-byte float schema.
func F4(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Float32Type, size) }

// F8 creates an 8-byte float schema.
func F8(size SizeConstraint) *ScalarSchema { return NewScalarSchema(secs2.Float64Type, size) }
