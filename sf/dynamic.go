package sf

import (
	"errors"
	"fmt"
	"math"

	"github.com/semifab/secsmsg/secs2"
)

// DynamicSchema constrains an item position whose legal type varies at
// runtime, such as the SVID and ECV data items. The whitelist holds the
// permitted item type names; an empty whitelist permits every non-empty
// item type.
//
// Build maps untyped Go values to the narrowest permitted numeric width
// that represents them. Callers that need a specific wider width pass a
// ready-made secs2.Item, which bypasses width selection and is checked
// against the whitelist only.
type DynamicSchema struct {
	allowed []string
}

// Dyn creates a dynamic schema permitting the given item type names. It
// panics on a type name that is not a scalar item type; schemas are built
// at startup and a bad type name is a programming error.
func Dyn(types ...string) *DynamicSchema {
	for _, t := range types {
		switch t {
		case secs2.ASCIIType, secs2.BinaryType, secs2.BooleanType,
			secs2.Int8Type, secs2.Int16Type, secs2.Int32Type, secs2.Int64Type,
			secs2.Uint8Type, secs2.Uint16Type, secs2.Uint32Type, secs2.Uint64Type,
			secs2.Float32Type, secs2.Float64Type:
		default:
			panic(fmt.Sprintf("sf: unrecognized dynamic item type %q", t))
		}
	}

	return &DynamicSchema{allowed: types}
}

// AnyItem creates a dynamic schema with an empty whitelist, permitting any
// non-empty item type. It covers fully untyped positions such as SV, ECV
// and ATTRDATA.
func AnyItem() *DynamicSchema {
	return &DynamicSchema{}
}

// Allowed returns the permitted item type names; empty means any.
func (s *DynamicSchema) Allowed() []string {
	return s.allowed
}

func (s *DynamicSchema) permits(itemType string) bool {
	if itemType == secs2.EmptyType {
		return false
	}
	if len(s.allowed) == 0 {
		return true
	}
	for _, t := range s.allowed {
		if t == itemType {
			return true
		}
	}

	return false
}

// Build assembles an item from value, choosing the item type from the
// whitelist. Integer values take the narrowest permitted width that fits;
// unsigned types are preferred over signed at equal width when the value
// is non-negative.
func (s *DynamicSchema) Build(value any) (secs2.Item, error) { //nolint:cyclop
	if item, ok := value.(secs2.Item); ok {
		if err := s.Validate(item); err != nil {
			return nil, err
		}

		return item, nil
	}

	switch v := value.(type) {
	case string:
		return s.buildTyped(secs2.ASCIIType, v)
	case bool, []bool:
		return s.buildTyped(secs2.BooleanType, v)
	case []byte:
		return s.buildTyped(secs2.BinaryType, v)

	case int:
		return s.buildInt(intBounds(int64(v)))(value)
	case int8:
		return s.buildInt(intBounds(int64(v)))(value)
	case int16:
		return s.buildInt(intBounds(int64(v)))(value)
	case int32:
		return s.buildInt(intBounds(int64(v)))(value)
	case int64:
		return s.buildInt(intBounds(v))(value)
	case uint8:
		return s.buildInt(0, uint64(v))(value)
	case uint16:
		return s.buildInt(0, uint64(v))(value)
	case uint32:
		return s.buildInt(0, uint64(v))(value)
	case uint:
		return s.buildInt(0, uint64(v))(value)
	case uint64:
		return s.buildInt(0, v)(value)
	case []int:
		values := make([]int64, len(v))
		for i, n := range v {
			values[i] = int64(n)
		}

		return s.buildInt(intBounds(values...))(value)
	case []int64:
		return s.buildInt(intBounds(v...))(value)
	case []uint64:
		return s.buildInt(0, maxUint(v))(value)

	case float32:
		return s.buildFloat(true, true, value)
	case float64:
		return s.buildFloat(exactFloat32(v), fitsFloat32(v), value)
	case []float64:
		exact32, fits32 := true, true
		for _, f := range v {
			exact32 = exact32 && exactFloat32(f)
			fits32 = fits32 && fitsFloat32(f)
		}

		return s.buildFloat(exact32, fits32, value)

	default:
		return nil, newStructureError("unsupported value type %T for dynamic item", value)
	}
}

// Validate checks a decoded item's type against the whitelist.
func (s *DynamicSchema) Validate(item secs2.Item) error {
	if itemErr := item.Error(); itemErr != nil {
		return itemErr
	}
	if !s.permits(item.Type()) {
		return &UnsupportedTypeError{Got: item.Type(), Allowed: s.allowed}
	}

	return nil
}

func (s *DynamicSchema) maxBytes() int {
	return -1
}

func (s *DynamicSchema) buildTyped(itemType string, value any) (secs2.Item, error) {
	if !s.permits(itemType) {
		return nil, &UnsupportedTypeError{Got: itemType, Allowed: s.allowed}
	}

	switch itemType {
	case secs2.ASCIIType:
		return s.finish(secs2.NewASCIIItem(value.(string))) //nolint:forcetypeassert
	case secs2.BooleanType:
		return s.finish(secs2.NewBooleanItem(value))
	case secs2.BinaryType:
		return s.finish(secs2.NewBinaryItem(value))
	}

	return nil, newStructureError("unrecognized item type %s", itemType)
}

// buildInt returns a builder for integer values spanning [minV, maxU]. It
// scans widths in ascending order so the narrowest permitted type wins.
func (s *DynamicSchema) buildInt(minV int64, maxU uint64) func(value any) (secs2.Item, error) {
	return func(value any) (secs2.Item, error) {
		for _, width := range []int{1, 2, 4, 8} {
			if minV >= 0 && s.permits(uintTypeName(width)) && fitsUint(maxU, width) {
				return s.finish(secs2.NewUintItem(width, value))
			}
			if s.permits(intTypeName(width)) && fitsInt(minV, maxU, width) {
				return s.finish(secs2.NewIntItem(width, value))
			}
		}

		return nil, &UnsupportedTypeError{Got: naturalIntTypeName(minV, maxU), Allowed: s.allowed}
	}
}

// buildFloat picks f4 when the value is exactly representable at four
// bytes, otherwise f8, falling back to a narrowing f4 conversion only when
// f8 is not permitted and the magnitude still fits.
func (s *DynamicSchema) buildFloat(exact32 bool, fits32 bool, value any) (secs2.Item, error) {
	if exact32 && s.permits(secs2.Float32Type) {
		return s.finish(secs2.NewFloatItem(4, value))
	}
	if s.permits(secs2.Float64Type) {
		return s.finish(secs2.NewFloatItem(8, value))
	}
	if fits32 && s.permits(secs2.Float32Type) {
		return s.finish(secs2.NewFloatItem(4, value))
	}

	got := secs2.Float64Type
	if exact32 {
		got = secs2.Float32Type
	}

	return nil, &UnsupportedTypeError{Got: got, Allowed: s.allowed}
}

func (s *DynamicSchema) finish(item secs2.Item) (secs2.Item, error) {
	if itemErr := item.Error(); itemErr != nil {
		var rangeErr *secs2.ValueRangeError
		if errors.As(itemErr, &rangeErr) {
			return nil, rangeErr
		}

		return nil, newStructureError("%v", itemErr)
	}

	return item, nil
}

func intBounds(values ...int64) (int64, uint64) {
	var minV int64
	var maxU uint64
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > 0 && uint64(v) > maxU {
			maxU = uint64(v)
		}
	}

	return minV, maxU
}

func maxUint(values []uint64) uint64 {
	var maxU uint64
	for _, v := range values {
		if v > maxU {
			maxU = v
		}
	}

	return maxU
}

func fitsUint(maxU uint64, width int) bool {
	if width == 8 {
		return true
	}

	return maxU <= (uint64(1)<<(8*width))-1
}

func fitsInt(minV int64, maxU uint64, width int) bool {
	if width == 8 {
		return maxU <= math.MaxInt64
	}
	limit := int64(1) << (8*width - 1)

	return minV >= -limit && maxU <= uint64(limit)-1
}

func fitsFloat32(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) <= math.MaxFloat32
}

// exactFloat32 reports whether v survives a round trip through float32
// without losing precision.
func exactFloat32(v float64) bool {
	return math.IsNaN(v) || float64(float32(v)) == v
}

// naturalIntTypeName names the narrowest type that represents the value
// bounds, whitelist aside, for error reporting.
func naturalIntTypeName(minV int64, maxU uint64) string {
	for _, width := range []int{1, 2, 4, 8} {
		if minV >= 0 && fitsUint(maxU, width) {
			return uintTypeName(width)
		}
		if fitsInt(minV, maxU, width) {
			return intTypeName(width)
		}
	}

	return secs2.Uint64Type
}

func uintTypeName(width int) string {
	switch width {
	case 1:
		return secs2.Uint8Type
	case 2:
		return secs2.Uint16Type
	case 4:
		return secs2.Uint32Type
	default:
		return secs2.Uint64Type
	}
}

func intTypeName(width int) string {
	switch width {
	case 1:
		return secs2.Int8Type
	case 2:
		return secs2.Int16Type
	case 4:
		return secs2.Int32Type
	default:
		return secs2.Int64Type
	}
}
