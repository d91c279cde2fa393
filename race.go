// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package chute

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent stress tests that trigger false
// positives under -race due to the lock-free ordering this package relies on.
const RaceEnabled = true
