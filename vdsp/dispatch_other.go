//go:build !amd64 && !arm64

package vdsp

func init() {
	// Other architectures only get the scalar level for now.
	setScalarMode()
}
