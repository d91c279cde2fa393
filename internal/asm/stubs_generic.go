// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !riscv64

package asm

import "math/bits"

// TrailingOnes returns the number of consecutive set bits starting at bit 0.
// TrailingOnes(0xffffffffffffffff) == 64.
func TrailingOnes(x uint64) int {
	return bits.TrailingZeros64(^x)
}
