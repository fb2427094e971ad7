//go:build arm64

package vdsp

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; the check only guards
	// against emulators that hide it.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
	} else {
		setScalarMode()
	}

	// SVE vector length is implementation defined; 16 bytes is the minimum
	// and the only width we can assume without querying the hardware.
	if cpu.ARM64.HasSVE {
		currentLevel = DispatchSVE
		currentWidth = 16
	}
}
