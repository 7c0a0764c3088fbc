// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package link

import (
	"errors"
	"fmt"
)

// ErrUnknownLink is returned by Registry.Lookup for an identifier that
// was never registered. It is a program-definition error and is not
// worth retrying.
var ErrUnknownLink = errors.New("link: unknown link identifier")

func unknownLink(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownLink, id)
}

// interrupted wraps the context error of a waiter that was withdrawn
// from its queue before any match reached it.
func interrupted(id string, err error) error {
	return fmt.Errorf("link %q: wait interrupted: %w", id, err)
}
