// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"code.hybscloud.com/kont"
)

// Reify turns a process built from InBind, OutThen and ChooseBind into
// its frame form, so it can be combined with Expr-world processes and
// handed to ExecExpr or RunExpr. Run uses it to execute both parties on
// the same handler.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect turns an Expr-world process back into a closure-based one,
// for use with Exec and Par, which accept only kont.Eff processes.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
