// Package event implements a one-to-many publish/subscribe primitive used
// to fan incoming gossip (attestations, exits, processed blocks) out to
// every service that registered an interest, without the publisher needing
// to know its subscribers up front.
package event

import (
	"errors"
	"reflect"
	"sync"
)

var errBadChannel = errors.New("event: Subscribe argument does not have sendable channel type")

// Feed implements one-to-many subscription, where the carried type is
// determined by the first Send or Subscribe call. A zero Feed is ready to
// use.
type Feed struct {
	once      sync.Once
	sendLock  chan struct{}
	removeSub chan interface{}
	sendCases caseList

	mu    sync.Mutex
	typ   reflect.Type
	inbox caseList
}

// This is the index of the first actual subscription channel in sendCases.
// sendCases[0] is a SelectRecv case for the removeSub channel.
const firstSubSendCase = 1

func (f *Feed) init() {
	f.sendLock = make(chan struct{}, 1)
	f.sendLock <- struct{}{}
	f.removeSub = make(chan interface{})
	f.sendCases = caseList{{Chan: reflect.ValueOf(f.removeSub), Dir: reflect.SelectRecv}}
}

// Subscribe adds a channel to the feed. Future sends will be delivered on
// the channel until the subscription is canceled.
func (f *Feed) Subscribe(channel interface{}) Subscription {
	f.once.Do(f.init)

	chanval := reflect.ValueOf(channel)
	chantyp := chanval.Type()
	if chantyp.Kind() != reflect.Chan || chantyp.ChanDir()&reflect.SendDir == 0 {
		panic(errBadChannel)
	}
	sub := &feedSub{feed: f, channel: chanval, err: make(chan error, 1)}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.typ.IsValid() {
		f.typ = chantyp.Elem()
	}
	if f.typ != chantyp.Elem() {
		panic(errBadChannel)
	}
	cas := reflect.SelectCase{Dir: reflect.SelectSend, Chan: chanval}
	f.inbox = append(f.inbox, cas)
	return sub
}

type feedSub struct {
	feed    *Feed
	channel reflect.Value
	errOnce sync.Once
	err     chan error
}

func (sub *feedSub) Unsubscribe() {
	sub.errOnce.Do(func() {
		sub.feed.remove(sub)
		close(sub.err)
	})
}

func (sub *feedSub) Err() <-chan error {
	return sub.err
}

// Send delivers to all subscribed channels simultaneously. It returns the
// number of subscribers that the value was sent to.
func (f *Feed) Send(value interface{}) int {
	rvalue := reflect.ValueOf(value)

	f.once.Do(f.init)
	<-f.sendLock

	f.mu.Lock()
	f.sendCases = append(f.sendCases, f.inbox...)
	f.inbox = nil
	f.mu.Unlock()

	if rvalue.Type() != f.typ {
		f.sendLock <- struct{}{}
		panic(errBadChannel)
	}

	cases := f.sendCases
	for i := firstSubSendCase; i < len(cases); i++ {
		cases[i].Send = rvalue
	}

	sent := 0
	for {
		for i := firstSubSendCase; i < len(cases); i++ {
			if cases[i].Chan.TrySend(rvalue) {
				sent++
				cases = cases.deactivate(i)
				i--
			}
		}
		if len(cases) == firstSubSendCase {
			break
		}
		chosen, recv, _ := reflect.Select(cases)
		if chosen == 0 {
			index := f.removeSubCase(recv)
			cases = cases.deactivate(index)
		} else {
			cases = cases.deactivate(chosen)
			sent++
		}
	}

	for i := firstSubSendCase; i < len(f.sendCases); i++ {
		f.sendCases[i].Send = reflect.Value{}
	}
	f.sendLock <- struct{}{}
	return sent
}

func (f *Feed) remove(sub *feedSub) {
	ch := sub.channel.Interface()
	f.mu.Lock()
	index := f.inbox.find(ch)
	if index != -1 {
		f.inbox = f.inbox.delete(index)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	select {
	case f.removeSub <- ch:
	case <-f.sendLock:
		index := f.sendCases.find(ch)
		if index != -1 {
			f.sendCases = f.sendCases.delete(index)
		}
		f.sendLock <- struct{}{}
	}
}

func (f *Feed) removeSubCase(recv reflect.Value) int {
	ch := recv.Interface()
	index := f.sendCases.find(ch)
	return index
}

type caseList []reflect.SelectCase

func (cs caseList) find(channel interface{}) int {
	for i, cas := range cs {
		if cas.Chan.Interface() == channel {
			return i
		}
	}
	return -1
}

func (cs caseList) delete(index int) caseList {
	return append(cs[:index], cs[index+1:]...)
}

func (cs caseList) deactivate(index int) caseList {
	last := len(cs) - 1
	cs[index], cs[last] = cs[last], cs[index]
	return cs[:last]
}
