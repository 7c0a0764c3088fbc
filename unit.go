// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

// Receiver is an execution unit that accepts a rendezvous asynchronously.
// Deliver is called at most once per registration, on the goroutine of
// the matching sender (or of RegisterAsync itself when a sender was
// already waiting). Deliver must not block and must not call back into
// the delivering link's blocking operations.
//
// CancelAsync finds a registration by comparing receivers with ==, so
// implementations should be pointers or other comparable values.
type Receiver interface {
	Deliver(t Token)
}

// waiter is a single queue entry. Blocking units park on wake;
// asynchronous units are reached through rcv.
//
// wake has capacity 1 and receives exactly one token, sent by whichever
// party pops the entry under the link mutex. Enqueuing the channel and
// parking on it cannot lose a wakeup: the send succeeds even when the
// owner has not started waiting yet.
type waiter struct {
	rcv  Receiver
	wake chan Token
}

func newWaiter() *waiter {
	return &waiter{wake: make(chan Token, 1)}
}

func asyncWaiter(r Receiver) *waiter {
	return &waiter{rcv: r}
}

// deliver hands t to the unit behind w. Called after w left its queue.
func (w *waiter) deliver(t Token) {
	if w.rcv != nil {
		w.rcv.Deliver(t)
		return
	}
	w.wake <- t
}
