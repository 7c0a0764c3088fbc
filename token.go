// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

// Token is the value produced when a rendezvous fires.
// It carries only the identifier of the link that matched.
type Token struct {
	link string
}

// Link returns the identifier of the link that produced the token.
func (t Token) Link() string {
	return t.link
}

// IsZero reports whether t was never produced by a match.
func (t Token) IsZero() bool {
	return t.link == ""
}

func (t Token) String() string {
	return "token(" + t.link + ")"
}
