// Copyright 2016 The Riskgeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/io"

// version components; packed into a 24-bit MAJOR.MINOR.PATCH integer
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// Version returns the packed 24-bit MAJOR.MINOR.PATCH version
func Version() uint32 {
	return uint32(VersionMajor)<<16 | uint32(VersionMinor)<<8 | uint32(VersionPatch)
}

// VersionString returns the human-readable version
func VersionString() string {
	return io.Sf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

// IsCompatible reports whether an implementation at (major, minor) can
// serve a caller compiled against headerMajor.headerMinor: MAJOR must
// match exactly, and the implementation's MINOR must be >= the header's
func IsCompatible(implMajor, implMinor, headerMajor, headerMinor int) bool {
	if implMajor != headerMajor {
		return false
	}
	return implMinor >= headerMinor
}
