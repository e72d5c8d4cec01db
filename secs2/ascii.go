package secs2

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var asciiQuote = '"'

// UseASCIISingleQuote sets the quoting character for ASCII items in SML to a single quote (').
func UseASCIISingleQuote() {
	asciiQuote = '\''
}

// UseASCIIDoubleQuote sets the quoting character for ASCII items in SML to a double quote (").
func UseASCIIDoubleQuote() {
	asciiQuote = '"'
}

// ASCIIQuote returns the quote rune used for ASCII items in SML.
func ASCIIQuote() rune {
	return asciiQuote
}

// ASCIIStrictness selects where printable-character enforcement happens for
// ASCII items. Comparable implementations disagree on whether control
// characters are legal in ASCII items, so the rule is configurable.
//
// Characters above 0x7F are always rejected at construction regardless of
// the strictness level.
type ASCIIStrictness int

const (
	// OffStrictness performs no printable-character check; any 7-bit byte
	// sequence is accepted and encoded as-is.
	OffStrictness ASCIIStrictness = iota
	// BuildStrictness rejects non-printable characters (below 0x20 or 0x7F)
	// when the item is constructed.
	BuildStrictness
	// EncodeStrictness accepts non-printable characters at construction but
	// rejects them when the item is serialized with ToBytes.
	EncodeStrictness
)

var asciiStrictness = OffStrictness

// SetASCIIStrictness sets the printable-character enforcement level for
// ASCII items. The default is OffStrictness.
//
// It is intended to be called once at startup, before any items are created.
func SetASCIIStrictness(level ASCIIStrictness) {
	asciiStrictness = level
}

// GetASCIIStrictness returns the current printable-character enforcement level.
func GetASCIIStrictness() ASCIIStrictness {
	return asciiStrictness
}

// ASCIIItem represents an ASCII string in a SECS-II message.
//
// Its size equals the length of the string; an ASCIIItem stores exactly one
// string value.
type ASCIIItem struct {
	baseItem
	value string
}

// NewASCIIItem creates a new ASCIIItem containing the given string.
//
// The input must consist solely of ASCII characters (code points 0-127).
// With BuildStrictness enabled, non-printable characters are rejected here
// as well. A failed check records the error on the returned item.
func NewASCIIItem(value string) Item {
	item := &ASCIIItem{}

	if len(value) > MaxByteSize {
		item.setErrorMsg("string length limit exceeded")
		return item
	}

	for _, ch := range value {
		if ch > unicode.MaxASCII {
			item.setErrorMsg("encountered non-ASCII character")
			return item
		}
	}

	if asciiStrictness == BuildStrictness {
		if ch, ok := firstNonPrintable(value); ok {
			item.setError(fmt.Errorf("non-printable character 0x%02X in ASCII item", ch))
			return item
		}
	}

	item.value = value

	return item
}

// Get implements Item.Get().
//
// It does not accept any index arguments as ASCIIItem represents a single
// item, not a list.
func (item *ASCIIItem) Get(indices ...int) (Item, error) {
	if len(indices) != 0 {
		err := NewItemError(fmt.Errorf("item is not a list, item is %s, indices is %v", item.ToSML(), indices))
		item.setError(err)
		return nil, err
	}

	return item, nil
}

// ToASCII retrieves the ASCII string stored within the item.
func (item *ASCIIItem) ToASCII() (string, error) {
	return item.value, nil
}

// Values returns the ASCII string; the result can be type-asserted to string.
func (item *ASCIIItem) Values() any {
	return item.value
}

// Size implements Item.Size(); it returns the string length.
func (item *ASCIIItem) Size() int {
	return len(item.value)
}

// ToBytes serializes the ASCIIItem into its SECS-II byte representation.
//
// With EncodeStrictness enabled, non-printable characters fail the
// serialization; the error is recorded on the item and an empty slice is
// returned.
func (item *ASCIIItem) ToBytes() []byte {
	if asciiStrictness == EncodeStrictness {
		if ch, ok := firstNonPrintable(item.value); ok {
			item.setError(fmt.Errorf("non-printable character 0x%02X in ASCII item", ch))
			return []byte{}
		}
	}

	result, err := getHeaderBytes(ASCIIType, item.Size(), len(item.value))
	if err != nil {
		item.setError(err)
		return []byte{}
	}

	return append(result, item.value...)
}

// ToSML converts the ASCIIItem into its SML representation.
//
// Printable runs are quoted; non-printable control characters are rendered
// in 0xNN hexadecimal form, e.g. `<A[6] "text" 0x0D 0x0A>`.
func (item *ASCIIItem) ToSML() string {
	if item.value == "" {
		return "<A[0]>"
	}

	var sb strings.Builder

	sizeStr := strconv.FormatInt(int64(item.Size()), 10)
	sb.Grow(len(item.value) + len(sizeStr) + 8)

	sb.WriteString("<A[")
	sb.WriteString(sizeStr)
	sb.WriteRune(']')

	inPrintableRun := false

	for _, ch := range item.value {
		isPrintable := ch >= 0x20 && ch != 0x7f

		if isPrintable && !inPrintableRun {
			sb.WriteRune(' ')
			sb.WriteRune(asciiQuote)
			inPrintableRun = true
		} else if !isPrintable && inPrintableRun {
			sb.WriteRune(asciiQuote)
			inPrintableRun = false
		}

		if isPrintable {
			if ch == asciiQuote {
				sb.WriteRune('\\')
			}
			sb.WriteRune(ch)
		} else {
			fmt.Fprintf(&sb, " 0x%02X", ch)
		}
	}

	if inPrintableRun {
		sb.WriteRune(asciiQuote)
	}

	sb.WriteRune('>')

	return sb.String()
}

// Clone creates a deep copy of the ASCIIItem.
func (item *ASCIIItem) Clone() Item {
	return &ASCIIItem{value: item.value}
}

// Type returns "ascii".
func (item *ASCIIItem) Type() string { return ASCIIType }

// IsASCII returns true, indicating that ASCIIItem is an ASCII data item.
func (item *ASCIIItem) IsASCII() bool { return true }

// firstNonPrintable reports the first character outside the printable range
// (0x20 to 0x7E).
func firstNonPrintable(s string) (rune, bool) {
	for _, ch := range s {
		if ch < 0x20 || ch == 0x7f {
			return ch, true
		}
	}

	return 0, false
}
