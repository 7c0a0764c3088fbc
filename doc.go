// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package link provides named in-process rendezvous points for
// concurrently running processes, and a small effect layer on
// [code.hybscloud.com/kont] for writing those processes.
//
// A [Link] pairs exactly one sender with exactly one receiver per match
// and carries no payload: the matched receiver gets a [Token] naming the
// link that fired. Links are registered by identifier in a [Registry].
//
// # Architecture
//
//   - Rendezvous: [Link.Send] and [Link.Receive] block until matched.
//     Waiters are kept on two stacks per link; the most recently queued
//     waiter is matched first.
//   - Non-blocking: [Link.RegisterAsync] queues a [Receiver] that is
//     delivered to by a later sender, and [Link.CancelAsync] withdraws it.
//     [Link.TrySend] and [Link.TryReceive] return
//     [code.hybscloud.com/iox.ErrWouldBlock] instead of queuing.
//   - Choice: [Choice] commits to the first of several links to fire,
//     built on RegisterAsync/CancelAsync.
//   - Cancellation: blocking calls take a context. A waiter withdrawn
//     before any match returns the context error; a match that wins the
//     race is always reported.
//
// # Processes
//
//   - Operations: [In], [Out], [Choose].
//   - Cont-world: [InBind], [InThen], [OutThen], [ChooseBind], [Done].
//   - Expr-world: [ExprInBind], [ExprInThen], [ExprOutThen], [ExprChooseBind], [ExprDone].
//   - Execution: [Exec], [ExecExpr] run one process on the calling goroutine;
//     [Run], [RunExpr] and [Par] compose processes in parallel.
//
// # Example
//
//	reg := link.NewRegistry()
//	reg.Declare("go")
//	recv := link.InBind("go", func(t link.Token) kont.Eff[string] {
//		return link.Done(t.Link())
//	})
//	send := link.OutThen("go", link.Done(struct{}{}))
//	got, _, err := link.Run(ctx, reg, recv, send)
package link
