package encoder

import "io"

// Encoding selects which NetworkEncoding a Config builds.
const (
	Gob       = "gob"
	GobSnappy = "gob_snappy"
)

// NetworkEncoding is the wire encoding used for both gossip payloads and
// req/resp stream messages.
type NetworkEncoding interface {
	Encode(w io.Writer, msg interface{}) (int, error)
	EncodeWithLength(w io.Writer, msg interface{}) (int, error)
	EncodeWithMaxLength(w io.Writer, msg interface{}, maxSize uint64) (int, error)
	Decode(b []byte, to interface{}) error
	DecodeWithLength(r io.Reader, to interface{}) error
	DecodeWithMaxLength(r io.Reader, to interface{}, maxSize uint64) error
	ProtocolSuffix() string
}
