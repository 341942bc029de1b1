package encoder

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/golang/snappy"
)

var _ NetworkEncoding = GobEncoder{}

// MaxChunkSize allowed for decoding messages.
const MaxChunkSize = uint64(1 << 20) // 1Mb

// GobEncoder serializes p2p messages with encoding/gob, optionally
// snappy-compressing the result. The gossip and req/resp wire types in
// this tree are plain Go structs with no generated SSZ or protobuf
// codec, so gob is what's left in the dependency closet that can
// round-trip them without a code-generation step.
type GobEncoder struct {
	UseSnappyCompression bool
}

func (e GobEncoder) doEncode(msg interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(msg); err != nil {
		return nil, err
	}
	b := buf.Bytes()
	if e.UseSnappyCompression {
		b = snappy.Encode(nil, b)
	}
	return b, nil
}

// Encode msg to w.
func (e GobEncoder) Encode(w io.Writer, msg interface{}) (int, error) {
	if msg == nil {
		return 0, nil
	}
	b, err := e.doEncode(msg)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// EncodeWithLength prefixes the encoded message with its length as an
// unsigned varint, matching the req/resp chunk framing.
func (e GobEncoder) EncodeWithLength(w io.Writer, msg interface{}) (int, error) {
	if msg == nil {
		return 0, nil
	}
	b, err := e.doEncode(msg)
	if err != nil {
		return 0, err
	}
	prefix := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(prefix, uint64(len(b)))
	b = append(prefix[:n], b...)
	return w.Write(b)
}

// EncodeWithMaxLength is EncodeWithLength with an upper bound on the
// encoded payload size.
func (e GobEncoder) EncodeWithMaxLength(w io.Writer, msg interface{}, maxSize uint64) (int, error) {
	if msg == nil {
		return 0, nil
	}
	b, err := e.doEncode(msg)
	if err != nil {
		return 0, err
	}
	if uint64(len(b)) > maxSize {
		return 0, fmt.Errorf("size of encoded message is %d which is larger than the provided max limit of %d", len(b), maxSize)
	}
	prefix := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(prefix, uint64(len(b)))
	b = append(prefix[:n], b...)
	return w.Write(b)
}

// Decode b into to.
func (e GobEncoder) Decode(b []byte, to interface{}) error {
	if e.UseSnappyCompression {
		var err error
		b, err = snappy.Decode(nil, b)
		if err != nil {
			return err
		}
	}
	return gob.NewDecoder(bytes.NewReader(b)).Decode(to)
}

// DecodeWithLength reads a varint-prefixed message from r into to,
// bounded by MaxChunkSize.
func (e GobEncoder) DecodeWithLength(r io.Reader, to interface{}) error {
	return e.DecodeWithMaxLength(r, to, MaxChunkSize)
}

// DecodeWithMaxLength reads a varint-prefixed message from r into to,
// bounded by maxSize.
func (e GobEncoder) DecodeWithMaxLength(r io.Reader, to interface{}, maxSize uint64) error {
	if maxSize > MaxChunkSize {
		return fmt.Errorf("maxSize %d exceeds max chunk size %d", maxSize, MaxChunkSize)
	}
	msgLen, err := binary.ReadUvarint(&byteReader{r})
	if err != nil {
		return err
	}
	if msgLen > maxSize {
		return fmt.Errorf("size of decoded message is %d which is larger than the provided max limit of %d", msgLen, maxSize)
	}
	b := make([]byte, msgLen)
	if _, err := io.ReadFull(r, b); err != nil {
		return err
	}
	return e.Decode(b, to)
}

// ProtocolSuffix identifies the encoding in a libp2p protocol ID.
func (e GobEncoder) ProtocolSuffix() string {
	if e.UseSnappyCompression {
		return "/gob_snappy"
	}
	return "/gob"
}

// byteReader adapts an io.Reader to io.ByteReader one byte at a time,
// which is all binary.ReadUvarint needs.
type byteReader struct {
	io.Reader
}

func (b *byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(b, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
