// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package linkhttp

import "code.hybscloud.com/link"

const unknownLinkErrorType = "Link.Unknown"

// LinkState is a point-in-time view of one link's queues.
type LinkState struct {
	ID        string `json:"id"`
	Serial    uint32 `json:"serial"`
	Receivers int    `json:"receivers"`
	Senders   int    `json:"senders"`
	Matches   uint64 `json:"matches"`
}

// ErrorResponse is the body returned for failed lookups.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
	ErrorType    string `json:"errorType"`
}

func stateOf(l *link.Link) LinkState {
	r, s := l.Waiting()
	return LinkState{
		ID:        l.ID(),
		Serial:    l.Serial(),
		Receivers: r,
		Senders:   s,
		Matches:   l.Matches(),
	}
}
