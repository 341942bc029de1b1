package sync

import (
	"context"
	"errors"
	"time"

	"github.com/libp2p/go-libp2p-core/network"
	"github.com/libp2p/go-libp2p-core/peer"

	"github.com/driftchain/beacon-node/beacon-chain/p2p"
	p2ptypes "github.com/driftchain/beacon-node/beacon-chain/p2p/types"
)

// maintainPeerStatuses re-sends the status request to every connected peer
// on an interval, so peers whose chain state we haven't heard about
// recently get re-checked. A peer whose fork digest no longer matches ours
// is disconnected; a peer that fails to answer is only logged.
func (s *Service) maintainPeerStatuses() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			for _, pid := range s.p2p.Peers().Connected() {
				go s.reValidatePeer(pid)
			}
		}
	}
}

func (s *Service) reValidatePeer(pid peer.ID) {
	if updated, err := s.p2p.Peers().ChainStateLastUpdated(pid); err == nil && time.Since(updated) < 30*time.Second {
		return
	}
	if err := s.sendStatusRequest(s.ctx, pid); err != nil {
		log.WithError(err).WithField("peer", pid.Pretty()).Debug("Could not send status request")
	}
}

// myStatus builds the status message advertising our own chain state.
func (s *Service) myStatus() (*p2ptypes.Status, error) {
	digest, err := s.p2p.ForkDigest()
	if err != nil {
		return nil, err
	}
	finalized := s.chain.FinalizedCheckpt()
	return &p2ptypes.Status{
		ForkDigest:     digest,
		FinalizedRoot:  finalized.Root,
		FinalizedEpoch: finalized.Epoch,
		HeadRoot:       s.chain.HeadRoot(),
		HeadSlot:       s.chain.HeadSlot(),
	}, nil
}

// sendStatusRequest opens a status stream to pid, reads back its status and
// records it, disconnecting the peer if its fork digest doesn't match ours.
func (s *Service) sendStatusRequest(ctx context.Context, pid peer.ID) error {
	req, err := s.myStatus()
	if err != nil {
		return err
	}
	stream, err := s.p2p.Send(ctx, req, p2p.RPCStatusTopic, pid)
	if err != nil {
		return err
	}
	defer stream.Close()

	code, errMsg, err := readStatusCode(stream, s.p2p.Encoding())
	if err != nil {
		return err
	}
	if code != responseCodeSuccess {
		return errors.New(errMsg)
	}
	resp := &p2ptypes.Status{}
	if err := s.p2p.Encoding().DecodeWithLength(stream, resp); err != nil {
		return err
	}
	return s.validateAndSaveStatusMessage(pid, resp)
}

func (s *Service) validateAndSaveStatusMessage(pid peer.ID, msg *p2ptypes.Status) error {
	ourDigest, err := s.p2p.ForkDigest()
	if err != nil {
		return err
	}
	if msg.ForkDigest != ourDigest {
		s.p2p.Peers().IncrementBadResponses(pid)
		badResponsesCounter.Inc()
		_ = s.sendGoodByeAndDisconnect(s.ctx, codeWrongNetwork, pid)
		return p2ptypes.ErrWrongForkDigestVersion
	}
	s.p2p.Peers().SetChainState(pid, msg)
	return nil
}

// statusRPCHandler answers an inbound status request: it validates the
// peer's advertised fork digest, records the peer's reported chain state,
// and writes back our own status.
func (s *Service) statusRPCHandler(ctx context.Context, message interface{}, stream network.Stream) error {
	req, ok := message.(*p2ptypes.Status)
	if !ok {
		return errGeneric
	}
	if err := s.validateAndSaveStatusMessage(stream.Conn().RemotePeer(), req); err != nil {
		resp, genErr := s.generateErrorResponse(responseCodeInvalidRequest, err.Error())
		if genErr == nil {
			_, _ = stream.Write(resp)
		}
		return err
	}
	resp, err := s.myStatus()
	if err != nil {
		return err
	}
	if _, err := stream.Write([]byte{responseCodeSuccess}); err != nil {
		return err
	}
	_, err = s.p2p.Encoding().EncodeWithLength(stream, resp)
	return err
}
