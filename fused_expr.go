// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"code.hybscloud.com/kont"
)

var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

func exprThen[B any](op kont.Erased, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func tokenBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(Token) kont.Expr[B])
	result := f(current.(Token))
	return kont.Erased(result.Value), result.Frame
}

func exprTokenBind[B any](op kont.Erased, f func(Token) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = tokenBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprInBind waits for a rendezvous on id and passes the token to f.
func ExprInBind[B any](id string, f func(Token) kont.Expr[B]) kont.Expr[B] {
	return exprTokenBind(In{Link: id}, f)
}

// ExprInThen waits for a rendezvous on id and continues with next.
func ExprInThen[B any](id string, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(In{Link: id}, next)
}

// ExprOutThen signals id and continues with next.
func ExprOutThen[B any](id string, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(Out{Link: id}, next)
}

// ExprChooseBind waits for the first of ids to fire and passes its token to f.
func ExprChooseBind[B any](ids []string, f func(Token) kont.Expr[B]) kont.Expr[B] {
	return exprTokenBind(Choose{Links: ids}, f)
}

// ExprDone ends a process with a.
func ExprDone[A any](a A) kont.Expr[A] {
	return kont.ExprReturn(a)
}
