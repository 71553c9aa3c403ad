// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "fmt"

// AddressError reports a sender or recipient address that cannot be parsed.
// Sending an unaddressable message is unsafe, so this always propagates to
// the per-message error handler instead of being swallowed.
type AddressError struct {
	Field string
	Value string
	Err   error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid %s address %q: %v", e.Field, e.Value, e.Err)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}
