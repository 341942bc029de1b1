package kv

import "encoding/binary"

// slotKey big-endian encodes a slot so bbolt's byte-lexicographic cursor
// order matches numeric slot order. shared/bytesutil encodes
// little-endian (the SSZ wire format), which would sort wrong here.
func slotKey(slot uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, slot)
	return buf
}

func slotFromKey(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}
