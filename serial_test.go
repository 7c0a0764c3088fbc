// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link_test

import (
	"testing"

	"code.hybscloud.com/link"
)

func TestSerialMonotonic(t *testing.T) {
	s1 := link.NewLink("a").Serial()
	s2 := link.NewLink("a").Serial()
	s3 := link.NewLink("b").Serial()

	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
	if s2 >= s3 {
		t.Fatalf("serials not increasing: %d >= %d", s2, s3)
	}
}

func TestDeclareAssignsSerial(t *testing.T) {
	reg := quietRegistry()
	l := reg.Declare("x")
	if l.Serial() == 0 {
		t.Fatal("declared link has no serial")
	}
	if reg.Declare("x").Serial() != l.Serial() {
		t.Fatal("redeclaration changed the serial")
	}
}
