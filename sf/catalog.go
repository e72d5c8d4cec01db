package sf

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/semifab/secsmsg/logger"
	"github.com/semifab/secsmsg/secs2"
)

// Catalog is a registry of message types keyed by stream and function
// codes. All methods are safe for concurrent use; registration and lookup
// may interleave freely.
type Catalog struct {
	types  *xsync.MapOf[uint16, *MessageType]
	logger logger.Logger
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types:  xsync.NewMapOf[uint16, *MessageType](),
		logger: logger.GetLogger(),
	}
}

// SetLogger overrides the catalog's logger. A nil logger is ignored.
func (c *Catalog) SetLogger(l logger.Logger) {
	if l != nil {
		c.logger = l
	}
}

func sfKey(stream byte, function byte) uint16 {
	return uint16(stream)<<8 | uint16(function)
}

// Register adds a message type to the catalog. It fails with
// ErrDuplicateRegistration if the stream/function pair is already
// registered, and with a validation error if the entry's flags are
// inconsistent.
func (c *Catalog) Register(mt *MessageType) error {
	if err := mt.validate(); err != nil {
		return fmt.Errorf("%s: %w", mt.SFCode(), err)
	}

	if _, loaded := c.types.LoadOrStore(sfKey(mt.Stream, mt.Function), mt); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, mt.SFCode())
	}

	c.logger.Debug("registered message type", "sf", mt.SFCode(), "name", mt.Name)

	return nil
}

// MustRegister registers a message type and panics on failure. Catalogs
// are assembled at startup, where a conflicting entry is a programming
// error.
func (c *Catalog) MustRegister(mt *MessageType) {
	if err := c.Register(mt); err != nil {
		panic(err)
	}
}

// Lookup returns the message type registered for the stream/function pair.
// An unregistered pair returns ok=false, never an error; probing unknown
// codes is an expected use.
func (c *Catalog) Lookup(stream byte, function byte) (*MessageType, bool) {
	return c.types.Load(sfKey(stream, function))
}

// Size returns the number of registered message types.
func (c *Catalog) Size() int {
	return c.types.Size()
}

// Range calls fn for each registered message type until fn returns false.
func (c *Catalog) Range(fn func(mt *MessageType) bool) {
	c.types.Range(func(_ uint16, mt *MessageType) bool {
		return fn(mt)
	})
}

// EncodeMessage looks up the message type for the stream/function pair,
// assembles the data item from value per the type's descriptor, and
// serializes the full message: 10-byte header plus encoded body.
func (c *Catalog) EncodeMessage(stream byte, function byte, replyRequested bool, transactionID uint32, value any) ([]byte, error) {
	mt, ok := c.Lookup(stream, function)
	if !ok {
		return nil, fmt.Errorf("%w: S%dF%d", ErrUnknownMessage, stream, function)
	}

	item, err := mt.Descriptor.Build(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mt.SFCode(), err)
	}

	msg, err := NewDataMessage(stream, function, replyRequested, transactionID, item)
	if err != nil {
		return nil, err
	}

	return msg.ToBytes()
}

// DecodeMessage decodes a message body, the bytes following the 10-byte
// header, and validates the item tree against the descriptor registered
// for the stream/function pair.
func (c *Catalog) DecodeMessage(data []byte, stream byte, function byte) (secs2.Item, error) {
	mt, ok := c.Lookup(stream, function)
	if !ok {
		return nil, fmt.Errorf("%w: S%dF%d", ErrUnknownMessage, stream, function)
	}

	item, err := mt.Descriptor.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mt.SFCode(), err)
	}

	return item, nil
}
