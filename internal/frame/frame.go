// Package frame encodes and decodes KV operations as self-delimiting byte
// strings. A frame is the payload of a log record; the log store never
// interprets it.
package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/ehrlich-b/logstore"
)

// Tag bytes identifying the operation variant on the wire.
//
//	0x00 → Get     (total 1 byte)
//	0x01 → Delete  followed by key_len:u32, key
//	0x02 → Set     followed by key_len:u32, key, value_len:u32, value
//
// Lengths are big-endian. TagGet is reserved: it is decodable but never
// produced by the cache write path and never persisted.
const (
	TagGet    byte = 0x00
	TagDelete byte = 0x01
	TagSet    byte = 0x02
)

const lenWidth = 4

// Op is a decoded KV operation: Get, Delete, or Set.
type Op interface {
	// Encode returns the wire form of the operation.
	Encode() []byte

	isOp()
}

// Get carries no payload. It exists as a client-side marker only.
type Get struct{}

// Delete removes a key.
type Delete struct {
	Key []byte
}

// Set assigns a value to a key.
type Set struct {
	Key   []byte
	Value []byte
}

func (Get) isOp()    {}
func (Delete) isOp() {}
func (Set) isOp()    {}

// Encode implements Op
func (Get) Encode() []byte {
	return []byte{TagGet}
}

// Encode implements Op
func (d Delete) Encode() []byte {
	buf := make([]byte, 0, 1+lenWidth+len(d.Key))
	buf = append(buf, TagDelete)
	buf = appendBytes(buf, d.Key)
	return buf
}

// Encode implements Op
func (s Set) Encode() []byte {
	buf := make([]byte, 0, 1+2*lenWidth+len(s.Key)+len(s.Value))
	buf = append(buf, TagSet)
	buf = appendBytes(buf, s.Key)
	buf = appendBytes(buf, s.Value)
	return buf
}

// appendBytes appends a big-endian u32 length prefix followed by b
func appendBytes(buf, b []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

// Decode parses a frame. It is strict: the buffer must contain exactly one
// frame with no trailing bytes.
func Decode(buf []byte) (Op, error) {
	if len(buf) == 0 {
		return nil, logstore.ParseError("DECODE", "not enough bytes for operation")
	}

	switch tag := buf[0]; tag {
	case TagGet:
		if len(buf) > 1 {
			return nil, logstore.ParseError("DECODE", "too many bytes for get operation")
		}
		return Get{}, nil

	case TagDelete:
		key, rest, err := readBytes(buf[1:], "key")
		if err != nil {
			return nil, err
		}
		if len(rest) > 0 {
			return nil, logstore.ParseError("DECODE", "too many bytes for delete operation")
		}
		return Delete{Key: key}, nil

	case TagSet:
		key, rest, err := readBytes(buf[1:], "key")
		if err != nil {
			return nil, err
		}
		value, rest, err := readBytes(rest, "value")
		if err != nil {
			return nil, err
		}
		if len(rest) > 0 {
			return nil, logstore.ParseError("DECODE", "too many bytes for set operation")
		}
		return Set{Key: key, Value: value}, nil

	default:
		return nil, logstore.ParseError("DECODE", fmt.Sprintf("unknown operation tag: %#02x", tag))
	}
}

// readBytes consumes one length-prefixed field and returns it with the
// remaining buffer
func readBytes(buf []byte, field string) ([]byte, []byte, error) {
	if len(buf) < lenWidth {
		return nil, nil, logstore.ParseError("DECODE", fmt.Sprintf("not enough bytes for %s length", field))
	}
	n := binary.BigEndian.Uint32(buf[:lenWidth])
	rest := buf[lenWidth:]
	if uint64(n) > uint64(len(rest)) {
		return nil, nil, logstore.ParseError("DECODE", fmt.Sprintf("not enough bytes for %s", field))
	}
	return rest[:n:n], rest[n:], nil
}
