// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"context"

	"code.hybscloud.com/kont"
)

// procHandler implements kont.Handler for link effects.
// A failed dispatch short-circuits the process with Left(err).
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type procHandler[R any] struct {
	pc *procContext
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h procHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	lop, ok := op.(linkDispatcher)
	if !ok {
		panic("link: unhandled effect in procHandler")
	}
	v, err := lop.DispatchLink(h.pc)
	if err != nil {
		h.pc.log.WithError(err).Debug("process stopped")
		return kont.Left[error, R](err), false
	}
	return v, true
}

func newProcContext(ctx context.Context, reg *Registry) *procContext {
	return &procContext{ctx: ctx, reg: reg, log: reg.log}
}

// Exec runs a Cont-world process on the calling goroutine.
// Each link effect resolves its link in reg and blocks until matched.
// Returns the first lookup or interruption error, if any.
func Exec[R any](ctx context.Context, reg *Registry, protocol kont.Eff[R]) (R, error) {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := procHandler[R]{pc: newProcContext(ctx, reg)}
	return unwrap(kont.Handle(wrapped, h))
}

// ExecExpr runs an Expr-world process on the calling goroutine.
func ExecExpr[R any](ctx context.Context, reg *Registry, protocol kont.Expr[R]) (R, error) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := procHandler[R]{pc: newProcContext(ctx, reg)}
	return unwrap(kont.HandleExpr(wrapped, h))
}

func unwrap[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	r, _ := e.GetRight()
	return r, nil
}
