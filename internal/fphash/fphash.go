// Package fphash computes a stable identity hash for a fixed-values
// declaration with xxhash, the same technique an internal metric-name
// lookup key would use: two declarations hash equal if and only if
// every constant flag and value agrees.
package fphash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/particlezoo/phsp/particle"
)

// Of returns the xxHash64 identity of fv, suitable for comparing the
// fixed-values declarations of two phase-space files without comparing
// their structs field by field at every call site.
func Of(fv particle.FixedValues) uint64 {
	var buf [7*4 + 7]byte // 7 float32 constants + 7 bool flags

	putFloat := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}
	putBool := func(off int, v bool) {
		if v {
			buf[off] = 1
		}
	}

	putFloat(0, fv.ConstantX)
	putFloat(4, fv.ConstantY)
	putFloat(8, fv.ConstantZ)
	putFloat(12, fv.ConstantU)
	putFloat(16, fv.ConstantV)
	putFloat(20, fv.ConstantW)
	putFloat(24, fv.ConstantWeight)

	putBool(28, fv.XConstant)
	putBool(29, fv.YConstant)
	putBool(30, fv.ZConstant)
	putBool(31, fv.UConstant)
	putBool(32, fv.VConstant)
	putBool(33, fv.WConstant)
	putBool(34, fv.WeightConstant)

	return xxhash.Sum64(buf[:])
}
