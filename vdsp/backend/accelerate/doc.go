// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package accelerate registers a vdsp backend on Apple's Accelerate
// framework: vDSP for arithmetic, reductions, sorting and signal kernels,
// vForce for transcendental functions, and cblas for matrix products.
//
// Import it for its side effect:
//
//	import _ "github.com/ajroetker/go-vdsp/vdsp/backend/accelerate"
//
// The backend only exists on darwin with cgo enabled; elsewhere the import
// is a no-op. Operations Accelerate has no exact equivalent for (variance,
// argsort, symmetric windows, out-of-range table lookups, and a few
// elementwise ops) fall through to the next backend.
package accelerate

// Name is the registry name of this backend.
const Name = "accelerate"

// Priority ranks the native framework above every portable backend.
const Priority = 100
