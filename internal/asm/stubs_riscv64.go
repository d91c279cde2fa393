// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build riscv64

package asm

import "math/bits"

// TrailingOnes returns the number of consecutive set bits starting at bit 0.
//
// TODO: riscv64 has a Zbb trailing-zero-count instruction; wire it in once
// this package carries real assembly again. Until then this is the same
// generic fallback as every other architecture.
func TrailingOnes(x uint64) int {
	return bits.TrailingZeros64(^x)
}
