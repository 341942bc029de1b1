package kv

import (
	"bytes"
	"encoding/gob"

	"github.com/golang/snappy"
)

// encode gob-serializes v and snappy-compresses the result before it is
// written to a bucket. These wire types are plain SSZ structs with no
// protobuf codec, so encoding/gob fills the marshal role here; snappy
// still does the compression.
func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return snappy.Encode(nil, buf.Bytes()), nil
}

func decode(data []byte, dst interface{}) error {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return err
	}
	return gob.NewDecoder(bytes.NewReader(raw)).Decode(dst)
}
