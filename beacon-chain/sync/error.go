package sync

import (
	"bytes"
	"errors"
	"io"

	"github.com/driftchain/beacon-node/beacon-chain/p2p/encoder"
)

var errWrongForkVersion = errors.New("wrong fork version")
var errInvalidEpoch = errors.New("invalid epoch")
var errInvalidFinalizedRoot = errors.New("invalid finalized root")
var errGeneric = errors.New("internal service error")

const (
	responseCodeSuccess        = byte(0x00)
	responseCodeInvalidRequest = byte(0x01)
	responseCodeServerError    = byte(0x02)
)

// errorResponse is the payload that follows a non-success response code in
// the chunked RPC framing described by response_chunk in the wire protocol.
type errorResponse struct {
	Message string
}

func (s *Service) generateErrorResponse(code byte, reason string) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{code})
	resp := &errorResponse{Message: reason}
	if _, err := s.p2p.Encoding().EncodeWithLength(buf, resp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readStatusCode reads the leading result byte of a response_chunk and, if
// it signals anything other than success, decodes and returns the error
// message that follows it.
func readStatusCode(stream io.Reader, encoding encoder.NetworkEncoding) (byte, string, error) {
	b := make([]byte, 1)
	if _, err := io.ReadFull(stream, b); err != nil {
		return 0, "", err
	}
	if b[0] == responseCodeSuccess {
		return 0, "", nil
	}
	msg := &errorResponse{}
	if err := encoding.DecodeWithLength(stream, msg); err != nil {
		return 0, "", err
	}
	return b[0], msg.Message, nil
}
