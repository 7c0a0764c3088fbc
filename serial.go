// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import "code.hybscloud.com/atomix"

// Serial identifies one Link instance for the life of the process.
//
// Identifiers are not unique over time: Registry.Register replaces a link
// that shares an id, and units that resolved the old one keep waiting on
// it. Diagnostics report the serial so the two can be told apart.
type Serial = uint32

// linkSerials hands out serials in creation order, starting at 1.
var linkSerials atomix.Uint32

func nextSerial() Serial {
	return linkSerials.Add(1)
}
