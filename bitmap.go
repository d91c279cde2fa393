// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package chute

import "code.hybscloud.com/chute/internal/asm"

// trailingOnes returns the length of the low-order run of set bits in x.
// trailingOnes(^uint64(0)) == 64.
func trailingOnes(x uint64) int {
	return asm.TrailingOnes(x)
}
