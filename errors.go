// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import "code.hybscloud.com/iox"

// ErrEmpty indicates a reader found no message available right now.
//
// ErrEmpty is a control flow signal, not a failure: callers poll again
// later (with backoff or yield) rather than propagating it. Push never
// returns an error — by design this library's producers cannot fail — so
// ErrEmpty and the helpers below are relevant to the consumer side only.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency; this
// library's "no message yet" is exactly the "would block" condition that
// type was built to represent.
var ErrEmpty = iox.ErrWouldBlock

// IsEmpty reports whether err indicates no message was available.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsEmpty(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrEmpty. Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
