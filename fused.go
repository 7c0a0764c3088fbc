// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"code.hybscloud.com/kont"
)

// InBind waits for a rendezvous on id and passes the token to f.
// Fuses Perform(In{Link: id}) + Bind.
func InBind[B any](id string, f func(Token) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(In{Link: id}), f)
}

// InThen waits for a rendezvous on id and continues with next.
// Fuses Perform(In{Link: id}) + Then.
func InThen[B any](id string, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(In{Link: id}), next)
}

// OutThen signals id and continues with next once a receiver matched.
// Fuses Perform(Out{Link: id}) + Then.
func OutThen[B any](id string, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Out{Link: id}), next)
}

// ChooseBind waits for the first of ids to fire and passes its token to f.
// Fuses Perform(Choose{Links: ids}) + Bind.
func ChooseBind[B any](ids []string, f func(Token) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Choose{Links: ids}), f)
}

// Done ends a process with a.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}
