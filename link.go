// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"context"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Link is a named in-process rendezvous point.
// It pairs exactly one sender with exactly one receiver per match and
// never buffers payload. Waiting units are kept on two stacks: the most
// recently queued waiter is matched first.
type Link struct {
	id     string
	serial Serial

	mu        sync.Mutex
	receivers []*waiter
	senders   []*waiter

	matches atomix.Uint64
}

// NewLink creates an unregistered link named id.
func NewLink(id string) *Link {
	return &Link{id: id, serial: nextSerial()}
}

// ID returns the link identifier.
func (l *Link) ID() string {
	return l.id
}

// Serial returns the serial assigned when the link was created.
func (l *Link) Serial() Serial {
	return l.serial
}

// Matches returns the number of rendezvous completed on the link.
func (l *Link) Matches() uint64 {
	return l.matches.Load()
}

// Waiting returns a snapshot of the queued receivers and senders.
func (l *Link) Waiting() (receivers, senders int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.receivers), len(l.senders)
}

func (l *Link) token() Token {
	return Token{link: l.id}
}

// match is the single matching core shared by every operation.
// Under the link mutex it pops the top of peer if non-empty and returns
// it. Otherwise it pushes w onto own (when w is non-nil) and returns nil.
// The popped entry has left its queue and must be delivered to by the
// caller exactly once.
func (l *Link) match(own, peer *[]*waiter, w *waiter) *waiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n := len(*peer); n > 0 {
		top := (*peer)[n-1]
		(*peer)[n-1] = nil
		*peer = (*peer)[:n-1]
		l.matches.Add(1)
		return top
	}
	if w != nil {
		*own = append(*own, w)
	}
	return nil
}

// withdraw removes w from q if it is still queued.
// It reports false when a match already popped w.
func (l *Link) withdraw(q *[]*waiter, pred func(*waiter) bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := *q
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			*q = s[:len(s)-1]
			return true
		}
	}
	return false
}

// RegisterAsync offers r as a receiver without blocking.
//
// If a sender is waiting, the most recently queued one is woken and r
// receives a token before RegisterAsync returns; r is not queued.
// Otherwise r is queued and will be delivered to by a future Send,
// unless CancelAsync withdraws it first.
func (l *Link) RegisterAsync(r Receiver) {
	if r == nil {
		panic("link: nil receiver")
	}
	if s := l.match(&l.receivers, &l.senders, asyncWaiter(r)); s != nil {
		t := l.token()
		s.deliver(t)
		r.Deliver(t)
	}
}

// CancelAsync withdraws r from the receiver queue.
//
// It returns true if r was queued and is now removed: no token will be
// delivered for that registration. It returns false if r was not queued,
// either because it never registered or because a match already took
// it, in which case delivery is guaranteed to happen. A nil r is never
// registered, so CancelAsync(nil) always returns false.
func (l *Link) CancelAsync(r Receiver) bool {
	if r == nil {
		return false
	}
	return l.withdraw(&l.receivers, func(w *waiter) bool { return w.rcv == r })
}

// Receive blocks until a sender rendezvouses on the link.
//
// A nil error means the receive matched. If ctx ends while the receiver
// is still queued, it is withdrawn and the wrapped context error is
// returned. A match that wins the race against ctx is always reported.
func (l *Link) Receive(ctx context.Context) (Token, error) {
	if err := ctx.Err(); err != nil {
		return Token{}, interrupted(l.id, err)
	}
	w := newWaiter()
	if s := l.match(&l.receivers, &l.senders, w); s != nil {
		t := l.token()
		s.deliver(t)
		return t, nil
	}
	return l.await(ctx, &l.receivers, w)
}

// Send blocks until a receiver rendezvouses on the link.
//
// The matched receiver is woken if it is blocked in Receive, or
// delivered to if it was registered with RegisterAsync. Cancellation
// follows the same rules as Receive.
func (l *Link) Send(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return interrupted(l.id, err)
	}
	w := newWaiter()
	if r := l.match(&l.senders, &l.receivers, w); r != nil {
		r.deliver(l.token())
		return nil
	}
	_, err := l.await(ctx, &l.senders, w)
	return err
}

// TryReceive matches a waiting sender if there is one.
// It never queues; it returns iox.ErrWouldBlock when no sender waits.
func (l *Link) TryReceive() (Token, error) {
	s := l.match(&l.receivers, &l.senders, nil)
	if s == nil {
		return Token{}, iox.ErrWouldBlock
	}
	t := l.token()
	s.deliver(t)
	return t, nil
}

// TrySend matches a waiting receiver if there is one.
// It never queues; it returns iox.ErrWouldBlock when no receiver waits.
func (l *Link) TrySend() error {
	r := l.match(&l.senders, &l.receivers, nil)
	if r == nil {
		return iox.ErrWouldBlock
	}
	r.deliver(l.token())
	return nil
}

// await parks on w until a match delivers to it or ctx ends.
func (l *Link) await(ctx context.Context, q *[]*waiter, w *waiter) (Token, error) {
	select {
	case t := <-w.wake:
		return t, nil
	case <-ctx.Done():
	}
	if l.withdraw(q, func(e *waiter) bool { return e == w }) {
		return Token{}, interrupted(l.id, ctx.Err())
	}
	// Popped by a matcher before we could withdraw; its token is in flight.
	return <-w.wake, nil
}
