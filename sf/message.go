package sf

import (
	"encoding/binary"
	"fmt"

	"github.com/semifab/secsmsg/secs2"
)

const (
	// HeaderSize is the size of a data message header in bytes.
	HeaderSize = 10

	// MaxBlockDataSize is the data bytes a single SECS-I block can carry:
	// the 254-byte block maximum less the 10-byte header.
	MaxBlockDataSize = 244
)

// MessageType is one catalog entry: a stream/function pair, the format
// descriptor for its data item, and the static properties of the message.
type MessageType struct {
	Stream   byte
	Function byte

	// Name is the human-readable message name, e.g. "are you online - request".
	Name string

	// Descriptor constrains the data item. Nil for header-only messages.
	Descriptor *FormatDescriptor

	// ToHost and ToEquipment state the legal flow directions.
	ToHost      bool
	ToEquipment bool

	// HasReply states that a reply message type exists; ReplyRequired states
	// that the sender must request one.
	HasReply      bool
	ReplyRequired bool

	// MultiBlock states that the message may exceed a single SECS-I block.
	MultiBlock bool
}

// SFCode returns the stream/function code in "SxFy" notation.
func (mt *MessageType) SFCode() string {
	return fmt.Sprintf("S%dF%d", mt.Stream, mt.Function)
}

// IsPrimary reports whether the message type initiates a transaction.
// Primary messages carry odd function codes.
func (mt *MessageType) IsPrimary() bool {
	return mt.Function%2 == 1
}

// SingleBlockOverflowPossible reports whether some conforming data item can
// exceed blockSize bytes when encoded, which would force a multi-block
// transfer on a block-oriented transport.
func (mt *MessageType) SingleBlockOverflowPossible(blockSize int) bool {
	maxSize := mt.Descriptor.MaxEncodedBytes()

	return maxSize < 0 || maxSize > blockSize
}

func (mt *MessageType) validate() error {
	if mt.Stream > 127 {
		return ErrInvalidStreamCode
	}
	if !mt.ToHost && !mt.ToEquipment {
		return ErrInvalidDirection
	}
	if mt.ReplyRequired && !mt.HasReply {
		return ErrInvalidReplyFlags
	}

	return nil
}

// DataMessage is one concrete SECS-II message: a stream/function header
// with W-bit and transaction id, plus a data item body.
type DataMessage struct {
	item          secs2.Item
	transactionID uint32
	stream        byte
	function      byte
	waitBit       bool
}

// NewDataMessage creates a data message. The reply request is rejected on
// secondary messages, whose even function codes never open a transaction.
// A nil item is treated as the empty item.
func NewDataMessage(stream byte, function byte, replyExpected bool, transactionID uint32, item secs2.Item) (*DataMessage, error) {
	if stream > 127 {
		return nil, ErrInvalidStreamCode
	}
	if replyExpected && function%2 == 0 {
		return nil, ErrUnexpectedReplyRequest
	}
	if item == nil {
		item = secs2.NewEmptyItem()
	}

	return &DataMessage{
		item:          item,
		transactionID: transactionID,
		stream:        stream,
		function:      function,
		waitBit:       replyExpected,
	}, nil
}

// StreamCode returns the stream code of the message.
func (msg *DataMessage) StreamCode() byte {
	return msg.stream
}

// FunctionCode returns the function code of the message.
func (msg *DataMessage) FunctionCode() byte {
	return msg.function
}

// WaitBit reports whether the sender requests a reply.
func (msg *DataMessage) WaitBit() bool {
	return msg.waitBit
}

// TransactionID returns the transaction id correlating a reply with its
// primary message.
func (msg *DataMessage) TransactionID() uint32 {
	return msg.transactionID
}

// Item returns the data item the message carries.
func (msg *DataMessage) Item() secs2.Item {
	return msg.item
}

// SFCode returns the stream/function code in "SxFy" notation.
func (msg *DataMessage) SFCode() string {
	return fmt.Sprintf("S%dF%d", msg.stream, msg.function)
}

// Header returns the 10-byte message header. The leading session bytes are
// zero; a transport session layer fills them before sending.
func (msg *DataMessage) Header() []byte {
	header := make([]byte, HeaderSize)
	header[2] = msg.stream
	if msg.waitBit {
		header[2] |= 0x80
	}
	header[3] = msg.function
	binary.BigEndian.PutUint32(header[6:], msg.transactionID)

	return header
}

// ToBytes serializes the message into header plus encoded data item.
func (msg *DataMessage) ToBytes() ([]byte, error) {
	body := msg.item.ToBytes()
	if itemErr := msg.item.Error(); itemErr != nil {
		return nil, itemErr
	}

	return append(msg.Header(), body...), nil
}

// ToSML renders the message as SML text for diagnostics.
func (msg *DataMessage) ToSML() string {
	waitBitStr := ""
	if msg.waitBit {
		waitBitStr = " W"
	}

	if msg.item.IsEmpty() {
		return fmt.Sprintf("%s%s .", msg.SFCode(), waitBitStr)
	}

	return fmt.Sprintf("%s%s\n%s\n.", msg.SFCode(), waitBitStr, msg.item.ToSML())
}
