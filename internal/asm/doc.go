// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package asm provides architecture-specific helpers for hot paths.
//
// TrailingOnes counts the low-order run of set bits in a ready-bitmap word,
// the collapse step the mpmc reader performs on every fully-drained word.
// Architectures without a dedicated implementation fall back to the
// generic bits.TrailingZeros64(^x) form.
package asm
