// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin

package accelerate

/*
#cgo LDFLAGS: -framework Accelerate
#include <Accelerate/Accelerate.h>

enum {
	U_NEG = 1, U_ABS, U_SQUARE, U_SQRT, U_RSQRT, U_RECIP,
	U_EXP, U_EXP2, U_EXPM1, U_LOG, U_LOG2, U_LOG10, U_LOG1P,
	U_SIN, U_COS, U_TAN, U_ASIN, U_ACOS, U_ATAN,
	U_SINH, U_COSH, U_TANH, U_ASINH, U_ACOSH, U_ATANH,
	U_CEIL, U_FLOOR, U_TRUNC,
};

enum { B_ADD = 1, B_SUB, B_MUL, B_DIV, B_MOD, B_POW, B_ATAN2, B_MIN, B_MAX, B_COPYSIGN };

enum { S_ADD = 1, S_SUB, S_MUL, S_DIV, S_RDIV, S_MAX };

enum {
	R_SUM = 1, R_SUMSQ, R_SUMMAG, R_MEAN, R_MEANMAG, R_MEANSQ, R_RMS,
	R_MIN, R_MAX, R_MINMAG, R_MAXMAG,
};

enum { W_BLACKMAN = 1, W_HAMMING, W_HANNING };

// VV names a vForce function, VD a vDSP function, for the precision suffix
// s (vForce, "f" or empty) or d (vDSP, empty or "D").
#define VV(fn, s) vv##fn##s
#define VD(fn, d) vDSP_##fn##d

#define DEFINE_KERNELS(T, s, d, g)                                                     \
static int unary_##T(int op, T *y, const T *x, int n) {                                \
	const vDSP_Length len = (vDSP_Length)n;                                            \
	switch (op) {                                                                      \
	case U_NEG:    VD(vneg, d)(x, 1, y, 1, len); return 1;                             \
	case U_ABS:    VD(vabs, d)(x, 1, y, 1, len); return 1;                             \
	case U_SQUARE: VD(vsq, d)(x, 1, y, 1, len); return 1;                              \
	case U_SQRT:   VV(sqrt, s)(y, x, &n); return 1;                                    \
	case U_RSQRT:  VV(rsqrt, s)(y, x, &n); return 1;                                   \
	case U_RECIP:  VV(rec, s)(y, x, &n); return 1;                                     \
	case U_EXP:    VV(exp, s)(y, x, &n); return 1;                                     \
	case U_EXP2:   VV(exp2, s)(y, x, &n); return 1;                                    \
	case U_EXPM1:  VV(expm1, s)(y, x, &n); return 1;                                   \
	case U_LOG:    VV(log, s)(y, x, &n); return 1;                                     \
	case U_LOG2:   VV(log2, s)(y, x, &n); return 1;                                    \
	case U_LOG10:  VV(log10, s)(y, x, &n); return 1;                                   \
	case U_LOG1P:  VV(log1p, s)(y, x, &n); return 1;                                   \
	case U_SIN:    VV(sin, s)(y, x, &n); return 1;                                     \
	case U_COS:    VV(cos, s)(y, x, &n); return 1;                                     \
	case U_TAN:    VV(tan, s)(y, x, &n); return 1;                                     \
	case U_ASIN:   VV(asin, s)(y, x, &n); return 1;                                    \
	case U_ACOS:   VV(acos, s)(y, x, &n); return 1;                                    \
	case U_ATAN:   VV(atan, s)(y, x, &n); return 1;                                    \
	case U_SINH:   VV(sinh, s)(y, x, &n); return 1;                                    \
	case U_COSH:   VV(cosh, s)(y, x, &n); return 1;                                    \
	case U_TANH:   VV(tanh, s)(y, x, &n); return 1;                                    \
	case U_ASINH:  VV(asinh, s)(y, x, &n); return 1;                                   \
	case U_ACOSH:  VV(acosh, s)(y, x, &n); return 1;                                   \
	case U_ATANH:  VV(atanh, s)(y, x, &n); return 1;                                   \
	case U_CEIL:   VV(ceil, s)(y, x, &n); return 1;                                    \
	case U_FLOOR:  VV(floor, s)(y, x, &n); return 1;                                   \
	case U_TRUNC:  VV(int, s)(y, x, &n); return 1;                                     \
	}                                                                                  \
	return 0;                                                                          \
}                                                                                      \
                                                                                       \
static int binary_##T(int op, T *z, const T *a, const T *b, int n) {                   \
	const vDSP_Length len = (vDSP_Length)n;                                            \
	switch (op) {                                                                      \
	case B_ADD:      VD(vadd, d)(a, 1, b, 1, z, 1, len); return 1;                     \
	case B_SUB:      VD(vsub, d)(b, 1, a, 1, z, 1, len); return 1;                     \
	case B_MUL:      VD(vmul, d)(a, 1, b, 1, z, 1, len); return 1;                     \
	case B_DIV:      VD(vdiv, d)(b, 1, a, 1, z, 1, len); return 1;                     \
	case B_MIN:      VD(vmin, d)(a, 1, b, 1, z, 1, len); return 1;                     \
	case B_MAX:      VD(vmax, d)(a, 1, b, 1, z, 1, len); return 1;                     \
	case B_MOD:      VV(fmod, s)(z, a, b, &n); return 1;                               \
	case B_POW:      VV(pow, s)(z, b, a, &n); return 1;                                \
	case B_ATAN2:    VV(atan2, s)(z, a, b, &n); return 1;                              \
	case B_COPYSIGN: VV(copysign, s)(z, a, b, &n); return 1;                           \
	}                                                                                  \
	return 0;                                                                          \
}                                                                                      \
                                                                                       \
static int scalar_##T(int op, T *y, const T *a, T v, int n) {                          \
	const vDSP_Length len = (vDSP_Length)n;                                            \
	T neg = -v;                                                                        \
	switch (op) {                                                                      \
	case S_ADD:  VD(vsadd, d)(a, 1, &v, y, 1, len); return 1;                          \
	case S_SUB:  VD(vsadd, d)(a, 1, &neg, y, 1, len); return 1;                        \
	case S_MUL:  VD(vsmul, d)(a, 1, &v, y, 1, len); return 1;                          \
	case S_DIV:  VD(vsdiv, d)(a, 1, &v, y, 1, len); return 1;                          \
	case S_RDIV: VD(svdiv, d)(&v, a, 1, y, 1, len); return 1;                          \
	case S_MAX:  VD(vthr, d)(a, 1, &v, y, 1, len); return 1;                           \
	}                                                                                  \
	return 0;                                                                          \
}                                                                                      \
                                                                                       \
static void fill_##T(T *y, T v, int n) { VD(vfill, d)(&v, y, 1, (vDSP_Length)n); }     \
static void ramp_##T(T *y, T start, T step, int n) {                                   \
	VD(vramp, d)(&start, &step, y, 1, (vDSP_Length)n);                                 \
}                                                                                      \
static void clip_##T(T *y, const T *a, T lo, T hi, int n) {                            \
	VD(vclip, d)(a, 1, &lo, &hi, y, 1, (vDSP_Length)n);                                \
}                                                                                      \
static void lerp_##T(T *y, const T *a, const T *b, T t, int n) {                       \
	VD(vintb, d)(a, 1, b, 1, &t, y, 1, (vDSP_Length)n);                                \
}                                                                                      \
                                                                                       \
static int reduce_##T(int op, const T *a, int n, T *out) {                             \
	const vDSP_Length len = (vDSP_Length)n;                                            \
	switch (op) {                                                                      \
	case R_SUM:     VD(sve, d)(a, 1, out, len); return 1;                              \
	case R_SUMSQ:   VD(svesq, d)(a, 1, out, len); return 1;                            \
	case R_SUMMAG:  VD(svemg, d)(a, 1, out, len); return 1;                            \
	case R_MEAN:    VD(meanv, d)(a, 1, out, len); return 1;                            \
	case R_MEANMAG: VD(meamgv, d)(a, 1, out, len); return 1;                           \
	case R_MEANSQ:  VD(measqv, d)(a, 1, out, len); return 1;                           \
	case R_RMS:     VD(rmsqv, d)(a, 1, out, len); return 1;                            \
	case R_MIN:     VD(minv, d)(a, 1, out, len); return 1;                             \
	case R_MAX:     VD(maxv, d)(a, 1, out, len); return 1;                             \
	case R_MINMAG:  VD(minmgv, d)(a, 1, out, len); return 1;                           \
	case R_MAXMAG:  VD(maxmgv, d)(a, 1, out, len); return 1;                           \
	}                                                                                  \
	return 0;                                                                          \
}                                                                                      \
                                                                                       \
static long index_##T(int argmax, const T *a, int n, T *out) {                         \
	vDSP_Length i = 0;                                                                 \
	if (argmax) {                                                                      \
		VD(maxvi, d)(a, 1, out, &i, (vDSP_Length)n);                                   \
	} else {                                                                           \
		VD(minvi, d)(a, 1, out, &i, (vDSP_Length)n);                                   \
	}                                                                                  \
	return (long)i;                                                                    \
}                                                                                      \
                                                                                       \
static void sort_##T(T *a, int n, int order) { VD(vsort, d)(a, (vDSP_Length)n, order); } \
                                                                                       \
static void gemm_##T(int ta, int tb, int m, int n, int k, T alpha, const T *a, int lda, \
		const T *b, int ldb, T beta, T *c, int ldc) {                                  \
	cblas_##g##gemm(CblasRowMajor, ta ? CblasTrans : CblasNoTrans,                     \
		tb ? CblasTrans : CblasNoTrans, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc); \
}                                                                                      \
static void mmov_##T(const T *src, T *dst, int cols, int rows, int srcStride, int dstStride) { \
	VD(mmov, d)(src, dst, (vDSP_Length)cols, (vDSP_Length)rows,                        \
		(vDSP_Length)srcStride, (vDSP_Length)dstStride);                                \
}                                                                                      \
static void mtrans_##T(const T *src, T *dst, int rows, int cols) {                     \
	VD(mtrans, d)(src, 1, dst, 1, (vDSP_Length)cols, (vDSP_Length)rows);               \
}                                                                                      \
                                                                                       \
static int window_##T(int kind, T *y, int n, int flags) {                              \
	switch (kind) {                                                                    \
	case W_BLACKMAN: VD(blkman_window, d)(y, (vDSP_Length)n, flags); return 1;         \
	case W_HAMMING:  VD(hamm_window, d)(y, (vDSP_Length)n, flags); return 1;           \
	case W_HANNING:  VD(hann_window, d)(y, (vDSP_Length)n, flags); return 1;           \
	}                                                                                  \
	return 0;                                                                          \
}                                                                                      \
static void conv_##T(T *y, const T *signal, const T *kernel, int n, int p) {           \
	VD(conv, d)(signal, 1, kernel, 1, y, 1, (vDSP_Length)n, (vDSP_Length)p);           \
}                                                                                      \
static void desamp_##T(T *y, const T *signal, int factor, const T *kernel, int n, int p) { \
	VD(desamp, d)(signal, (vDSP_Stride)factor, kernel, y, (vDSP_Length)n, (vDSP_Length)p); \
}                                                                                      \
static void vpoly_##T(T *y, const T *coeffs, const T *x, int n, int degree) {          \
	VD(vpoly, d)(coeffs, 1, x, 1, y, 1, (vDSP_Length)n, (vDSP_Length)degree);          \
}                                                                                      \
static void vlint_##T(T *y, const T *table, const T *idx, int n, int m) {              \
	VD(vlint, d)(table, idx, 1, y, 1, (vDSP_Length)n, (vDSP_Length)m);                 \
}                                                                                      \
static void vdbcon_##T(T *y, const T *a, T ref, int n, int amplitude) {                \
	VD(vdbcon, d)(a, 1, &ref, y, 1, (vDSP_Length)n, (unsigned int)amplitude);          \
}

DEFINE_KERNELS(float, f, , s)
DEFINE_KERNELS(double, , D, d)
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/ajroetker/go-vdsp/vdsp"
)

func init() {
	vdsp.MustRegister(Backend())
}

// Backend returns the backend description registered by this package.
func Backend() vdsp.Backend {
	return vdsp.Backend{
		Name:     Name,
		Priority: Priority,
		Float32: vdsp.Kernels[float32]{
			Elementwise: f32{},
			Reduce:      f32{},
			Sort:        f32{},
			Matrix:      f32{},
			Signal:      f32{},
		},
		Float64: vdsp.Kernels[float64]{
			Elementwise: f64{},
			Reduce:      f64{},
			Sort:        f64{},
			Matrix:      f64{},
			Signal:      f64{},
		},
	}
}

var unaryCodes = map[vdsp.UnaryOp]C.int{
	vdsp.OpNeg:        C.U_NEG,
	vdsp.OpAbs:        C.U_ABS,
	vdsp.OpSquare:     C.U_SQUARE,
	vdsp.OpSqrt:       C.U_SQRT,
	vdsp.OpRsqrt:      C.U_RSQRT,
	vdsp.OpReciprocal: C.U_RECIP,
	vdsp.OpExp:        C.U_EXP,
	vdsp.OpExp2:       C.U_EXP2,
	vdsp.OpExpm1:      C.U_EXPM1,
	vdsp.OpLog:        C.U_LOG,
	vdsp.OpLog2:       C.U_LOG2,
	vdsp.OpLog10:      C.U_LOG10,
	vdsp.OpLog1p:      C.U_LOG1P,
	vdsp.OpSin:        C.U_SIN,
	vdsp.OpCos:        C.U_COS,
	vdsp.OpTan:        C.U_TAN,
	vdsp.OpAsin:       C.U_ASIN,
	vdsp.OpAcos:       C.U_ACOS,
	vdsp.OpAtan:       C.U_ATAN,
	vdsp.OpSinh:       C.U_SINH,
	vdsp.OpCosh:       C.U_COSH,
	vdsp.OpTanh:       C.U_TANH,
	vdsp.OpAsinh:      C.U_ASINH,
	vdsp.OpAcosh:      C.U_ACOSH,
	vdsp.OpAtanh:      C.U_ATANH,
	vdsp.OpCeil:       C.U_CEIL,
	vdsp.OpFloor:      C.U_FLOOR,
	vdsp.OpTrunc:      C.U_TRUNC,
}

var binaryCodes = map[vdsp.BinaryOp]C.int{
	vdsp.OpAdd:      C.B_ADD,
	vdsp.OpSub:      C.B_SUB,
	vdsp.OpMul:      C.B_MUL,
	vdsp.OpDiv:      C.B_DIV,
	vdsp.OpMod:      C.B_MOD,
	vdsp.OpPow:      C.B_POW,
	vdsp.OpAtan2:    C.B_ATAN2,
	vdsp.OpMin:      C.B_MIN,
	vdsp.OpMax:      C.B_MAX,
	vdsp.OpCopySign: C.B_COPYSIGN,
}

var scalarCodes = map[vdsp.ScalarOp]C.int{
	vdsp.OpAddScalar: C.S_ADD,
	vdsp.OpSubScalar: C.S_SUB,
	vdsp.OpMulScalar: C.S_MUL,
	vdsp.OpDivScalar: C.S_DIV,
	vdsp.OpScalarDiv: C.S_RDIV,
	vdsp.OpMaxScalar: C.S_MAX,
}

var reduceCodes = map[vdsp.ReduceOp]C.int{
	vdsp.OpSum:           C.R_SUM,
	vdsp.OpSumSquares:    C.R_SUMSQ,
	vdsp.OpSumMagnitudes: C.R_SUMMAG,
	vdsp.OpMean:          C.R_MEAN,
	vdsp.OpMeanMagnitude: C.R_MEANMAG,
	vdsp.OpMeanSquare:    C.R_MEANSQ,
	vdsp.OpRMS:           C.R_RMS,
	vdsp.OpMinValue:      C.R_MIN,
	vdsp.OpMaxValue:      C.R_MAX,
	vdsp.OpMinMagnitude:  C.R_MINMAG,
	vdsp.OpMaxMagnitude:  C.R_MAXMAG,
}

var windowCodes = map[vdsp.WindowKind]C.int{
	vdsp.Blackman: C.W_BLACKMAN,
	vdsp.Hamming:  C.W_HAMMING,
	vdsp.Hanning:  C.W_HANNING,
}

// windowFlags maps vdsp flags to vDSP window flags. vDSP windows are
// periodic only.
func windowFlags(kind vdsp.WindowKind, flags vdsp.WindowFlags) (C.int, bool) {
	if flags&vdsp.WindowSymmetric != 0 {
		return 0, false
	}
	var f C.int
	if flags&vdsp.WindowHalf != 0 {
		f |= C.vDSP_HALF_WINDOW
	}
	if flags&vdsp.WindowNormalized != 0 && kind == vdsp.Hanning {
		f |= C.vDSP_HANN_NORM
	}
	return f, true
}

// inTable reports whether every index can be looked up by vDSP_vlint,
// which reads table[i] and table[i+1] without clamping.
func inTable[T vdsp.Floats](idx []T, m int) bool {
	for _, b := range idx {
		if !(b >= 0 && float64(b) < float64(m-1)) || math.IsNaN(float64(b)) {
			return false
		}
	}
	return true
}

func dbFlag(kind vdsp.DBKind) C.int {
	if kind == vdsp.DBAmplitude {
		return 1
	}
	return 0
}

func order(o vdsp.Order) C.int {
	if o == vdsp.Descending {
		return -1
	}
	return 1
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func fp(s []float32) *C.float  { return (*C.float)(unsafe.Pointer(unsafe.SliceData(s))) }
func dp(s []float64) *C.double { return (*C.double)(unsafe.Pointer(unsafe.SliceData(s))) }

// f32 binds the single-precision vDSP, vForce and cblas routines.
type f32 struct{}

func (f32) Binary(op vdsp.BinaryOp, dst, a, b []float32) bool {
	code, ok := binaryCodes[op]
	return ok && C.binary_float(code, fp(dst), fp(a), fp(b), C.int(len(dst))) != 0
}

func (f32) Scalar(op vdsp.ScalarOp, dst, a []float32, s float32) bool {
	code, ok := scalarCodes[op]
	return ok && C.scalar_float(code, fp(dst), fp(a), C.float(s), C.int(len(dst))) != 0
}

func (f32) Unary(op vdsp.UnaryOp, dst, a []float32) bool {
	code, ok := unaryCodes[op]
	return ok && C.unary_float(code, fp(dst), fp(a), C.int(len(dst))) != 0
}

func (f32) Fill(dst []float32, v float32) bool {
	C.fill_float(fp(dst), C.float(v), C.int(len(dst)))
	return true
}

func (f32) Ramp(dst []float32, start, step float32) bool {
	C.ramp_float(fp(dst), C.float(start), C.float(step), C.int(len(dst)))
	return true
}

func (f32) Clip(dst, a []float32, lo, hi float32) bool {
	C.clip_float(fp(dst), fp(a), C.float(lo), C.float(hi), C.int(len(dst)))
	return true
}

func (f32) Lerp(dst, a, b []float32, t float32) bool {
	C.lerp_float(fp(dst), fp(a), fp(b), C.float(t), C.int(len(dst)))
	return true
}

func (f32) Reduce(op vdsp.ReduceOp, a []float32) (float32, bool) {
	code, ok := reduceCodes[op]
	if !ok {
		return 0, false
	}
	var out C.float
	C.reduce_float(code, fp(a), C.int(len(a)), &out)
	return float32(out), true
}

func (f32) Index(op vdsp.IndexOp, a []float32) (int, float32, bool) {
	var out C.float
	i := C.index_float(cbool(op == vdsp.OpArgmax), fp(a), C.int(len(a)), &out)
	return int(i), float32(out), true
}

func (f32) Sort(a []float32, o vdsp.Order) bool {
	C.sort_float(fp(a), C.int(len(a)), order(o))
	return true
}

// Argsort declines: vDSP_vsorti is not stable.
func (f32) Argsort([]int, []float32, vdsp.Order) bool { return false }

func (f32) Gemm(transA, transB bool, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) bool {
	C.gemm_float(cbool(transA), cbool(transB), C.int(m), C.int(n), C.int(k),
		C.float(alpha), fp(a), C.int(lda), fp(b), C.int(ldb), C.float(beta), fp(c), C.int(ldc))
	return true
}

func (f32) Copy2D(dst []float32, dstStride int, src []float32, srcStride int, rows, cols int) bool {
	if vdsp.Overlaps(dst, src) {
		return false
	}
	C.mmov_float(fp(src), fp(dst), C.int(cols), C.int(rows), C.int(srcStride), C.int(dstStride))
	return true
}

func (f32) Transpose(dst, src []float32, rows, cols int) bool {
	C.mtrans_float(fp(src), fp(dst), C.int(rows), C.int(cols))
	return true
}

func (f32) Window(kind vdsp.WindowKind, dst []float32, flags vdsp.WindowFlags) bool {
	code, ok := windowCodes[kind]
	f, fok := windowFlags(kind, flags)
	if !ok || !fok || len(dst) < 2 {
		return false
	}
	return C.window_float(code, fp(dst), C.int(len(dst)), f) != 0
}

func (f32) Correlate(dst, signal, kernel []float32) bool {
	C.conv_float(fp(dst), fp(signal), fp(kernel), C.int(len(dst)), C.int(len(kernel)))
	return true
}

func (f32) Decimate(dst, signal []float32, factor int, kernel []float32) bool {
	C.desamp_float(fp(dst), fp(signal), C.int(factor), fp(kernel), C.int(len(dst)), C.int(len(kernel)))
	return true
}

func (f32) Poly(dst, coeffs, x []float32) bool {
	C.vpoly_float(fp(dst), fp(coeffs), fp(x), C.int(len(dst)), C.int(len(coeffs)-1))
	return true
}

func (f32) Interpolate(dst, table, idx []float32) bool {
	if !inTable(idx, len(table)) {
		return false
	}
	C.vlint_float(fp(dst), fp(table), fp(idx), C.int(len(dst)), C.int(len(table)))
	return true
}

func (f32) DB(dst, a []float32, ref float32, kind vdsp.DBKind) bool {
	C.vdbcon_float(fp(dst), fp(a), C.float(ref), C.int(len(dst)), dbFlag(kind))
	return true
}

// f64 binds the double-precision routines.
type f64 struct{}

func (f64) Binary(op vdsp.BinaryOp, dst, a, b []float64) bool {
	code, ok := binaryCodes[op]
	return ok && C.binary_double(code, dp(dst), dp(a), dp(b), C.int(len(dst))) != 0
}

func (f64) Scalar(op vdsp.ScalarOp, dst, a []float64, s float64) bool {
	code, ok := scalarCodes[op]
	return ok && C.scalar_double(code, dp(dst), dp(a), C.double(s), C.int(len(dst))) != 0
}

func (f64) Unary(op vdsp.UnaryOp, dst, a []float64) bool {
	code, ok := unaryCodes[op]
	return ok && C.unary_double(code, dp(dst), dp(a), C.int(len(dst))) != 0
}

func (f64) Fill(dst []float64, v float64) bool {
	C.fill_double(dp(dst), C.double(v), C.int(len(dst)))
	return true
}

func (f64) Ramp(dst []float64, start, step float64) bool {
	C.ramp_double(dp(dst), C.double(start), C.double(step), C.int(len(dst)))
	return true
}

func (f64) Clip(dst, a []float64, lo, hi float64) bool {
	C.clip_double(dp(dst), dp(a), C.double(lo), C.double(hi), C.int(len(dst)))
	return true
}

func (f64) Lerp(dst, a, b []float64, t float64) bool {
	C.lerp_double(dp(dst), dp(a), dp(b), C.double(t), C.int(len(dst)))
	return true
}

func (f64) Reduce(op vdsp.ReduceOp, a []float64) (float64, bool) {
	code, ok := reduceCodes[op]
	if !ok {
		return 0, false
	}
	var out C.double
	C.reduce_double(code, dp(a), C.int(len(a)), &out)
	return float64(out), true
}

func (f64) Index(op vdsp.IndexOp, a []float64) (int, float64, bool) {
	var out C.double
	i := C.index_double(cbool(op == vdsp.OpArgmax), dp(a), C.int(len(a)), &out)
	return int(i), float64(out), true
}

func (f64) Sort(a []float64, o vdsp.Order) bool {
	C.sort_double(dp(a), C.int(len(a)), order(o))
	return true
}

func (f64) Argsort([]int, []float64, vdsp.Order) bool { return false }

func (f64) Gemm(transA, transB bool, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) bool {
	C.gemm_double(cbool(transA), cbool(transB), C.int(m), C.int(n), C.int(k),
		C.double(alpha), dp(a), C.int(lda), dp(b), C.int(ldb), C.double(beta), dp(c), C.int(ldc))
	return true
}

func (f64) Copy2D(dst []float64, dstStride int, src []float64, srcStride int, rows, cols int) bool {
	if vdsp.Overlaps(dst, src) {
		return false
	}
	C.mmov_double(dp(src), dp(dst), C.int(cols), C.int(rows), C.int(srcStride), C.int(dstStride))
	return true
}

func (f64) Transpose(dst, src []float64, rows, cols int) bool {
	C.mtrans_double(dp(src), dp(dst), C.int(rows), C.int(cols))
	return true
}

func (f64) Window(kind vdsp.WindowKind, dst []float64, flags vdsp.WindowFlags) bool {
	code, ok := windowCodes[kind]
	f, fok := windowFlags(kind, flags)
	if !ok || !fok || len(dst) < 2 {
		return false
	}
	return C.window_double(code, dp(dst), C.int(len(dst)), f) != 0
}

func (f64) Correlate(dst, signal, kernel []float64) bool {
	C.conv_double(dp(dst), dp(signal), dp(kernel), C.int(len(dst)), C.int(len(kernel)))
	return true
}

func (f64) Decimate(dst, signal []float64, factor int, kernel []float64) bool {
	C.desamp_double(dp(dst), dp(signal), C.int(factor), dp(kernel), C.int(len(dst)), C.int(len(kernel)))
	return true
}

func (f64) Poly(dst, coeffs, x []float64) bool {
	C.vpoly_double(dp(dst), dp(coeffs), dp(x), C.int(len(dst)), C.int(len(coeffs)-1))
	return true
}

func (f64) Interpolate(dst, table, idx []float64) bool {
	if !inTable(idx, len(table)) {
		return false
	}
	C.vlint_double(dp(dst), dp(table), dp(idx), C.int(len(dst)), C.int(len(table)))
	return true
}

func (f64) DB(dst, a []float64, ref float64, kind vdsp.DBKind) bool {
	C.vdbcon_double(dp(dst), dp(a), C.double(ref), C.int(len(dst)), dbFlag(kind))
	return true
}
