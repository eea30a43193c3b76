// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import "github.com/ajroetker/hwymath/hwy"

// =============================================================================
// Coefficient tables, ascending order of power
// =============================================================================

// 2^f = exp(f*ln2) on [0, 1): Taylor terms ln2^k / k!.
var (
	exp2Coeffs_f32 = []float32{
		1,
		0.693147181,
		0.240226507,
		0.0555041087,
		0.00961812911,
		0.00133335581,
		0.000154035304,
		1.52527338e-05,
		1.32154868e-06,
		1.0178086e-07,
	}
	exp2Coeffs_f64 = []float64{
		1.0,
		0.6931471805599453,
		0.24022650695910072,
		0.05550410866482158,
		0.009618129107628477,
		0.0013333558146428443,
		0.0001540353039338161,
		1.5252733804059841e-05,
		1.321548679014431e-06,
		1.01780860092397e-07,
		7.054911620801123e-09,
		4.4455382718708116e-10,
		2.5678435993488206e-11,
		1.3691488853904128e-12,
		6.778726354822545e-14,
		3.1324367070884287e-15,
		1.3570247948755148e-16,
		5.533046532458242e-18,
	}
)

// expm1(x) = x * P(x) for |x| < ln2/2: P has terms 1/(k+1)!.
var (
	expm1Coeffs_f32 = []float32{
		1,
		0.5,
		0.166666667,
		0.0416666667,
		0.00833333333,
		0.00138888889,
		0.000198412698,
		2.48015873e-05,
	}
	expm1Coeffs_f64 = []float64{
		1.0,
		0.5,
		0.16666666666666666,
		0.041666666666666664,
		0.008333333333333333,
		0.001388888888888889,
		0.0001984126984126984,
		2.48015873015873e-05,
		2.7557319223985893e-06,
		2.755731922398589e-07,
		2.505210838544172e-08,
		2.08767569878681e-09,
		1.6059043836821613e-10,
		1.1470745597729725e-11,
	}
)

// ln(m) = 2s * P(s²), s = (m-1)/(m+1), m in [√½, √2): terms 1/(2k+1).
var (
	logCoeffs_f32 = []float32{
		1,
		0.333333343,
		0.2,
		0.142857149,
		0.111111112,
		0.0909090936,
	}
	logCoeffs_f64 = []float64{
		1.0,
		0.3333333333333333,
		0.2,
		0.14285714285714285,
		0.1111111111111111,
		0.09090909090909091,
		0.07692307692307693,
		0.06666666666666667,
		0.058823529411764705,
		0.05263157894736842,
		0.047619047619047616,
		0.043478260869565216,
	}
)

// sin(u) = u * S(u²) and cos(u) = C(u²) on [-π/4, π/4].
var (
	sinCoeffs_f32 = []float32{
		1,
		-0.166666667,
		0.00833333333,
		-0.000198412698,
		2.75573192e-06,
		-2.50521084e-08,
	}
	sinCoeffs_f64 = []float64{
		1.0,
		-0.16666666666666666,
		0.008333333333333333,
		-0.0001984126984126984,
		2.7557319223985893e-06,
		-2.505210838544172e-08,
		1.6059043836821613e-10,
		-7.647163731819816e-13,
		2.8114572543455206e-15,
	}
	cosCoeffs_f32 = []float32{
		1,
		-0.5,
		0.0416666667,
		-0.00138888889,
		2.48015873e-05,
		-2.75573192e-07,
	}
	cosCoeffs_f64 = []float64{
		1.0,
		-0.5,
		0.041666666666666664,
		-0.001388888888888889,
		2.48015873015873e-05,
		-2.755731922398589e-07,
		2.08767569878681e-09,
		-1.1470745597729725e-11,
		4.779477332387385e-14,
		-1.5619206968586225e-16,
	}
)

// atan(x) = x + x*z*N(z)/(1 + z*D(z)), z = x², on [0, 0.66]. Cephes
// coefficients normalized so the denominator's constant term is 1. The
// same table is used at both precisions.
var (
	atanNum_f64 = []float64{
		-0.33333333333333226,
		-0.6316435536651273,
		-0.3855476975643686,
		-0.08305054027661526,
		-0.004497856099947953,
	}
	atanDen_f64 = []float64{
		2.49493066099495,
		2.225030060738393,
		0.8482469925862886,
		0.12777373906518932,
		0.005140049458881699,
	}
)

// erf(x) = x * E(x²) for |x| <= 1: Maclaurin terms (2/√π)(-1)^k/(k!(2k+1)).
var (
	erfCoeffs_f32 = []float32{
		1.12837917,
		-0.376126389,
		0.112837917,
		-0.0268661706,
		0.00522397763,
		-0.000854832702,
		0.00012055333,
		-1.49256504e-05,
		1.64621144e-06,
		-1.63658447e-07,
	}
	erfCoeffs_f64 = []float64{
		1.1283791670955126,
		-0.37612638903183754,
		0.11283791670955126,
		-0.026866170645131252,
		0.005223977625442188,
		-0.0008548327023450853,
		0.00012055332981789664,
		-1.492565035840625e-05,
		1.6462114365889248e-06,
		-1.6365844691234924e-07,
		1.4807192815879218e-08,
		-1.2290555301717928e-09,
		9.422759064650411e-11,
		-6.7113668551641105e-12,
		4.4632242632864775e-13,
		-2.7835162072109215e-14,
		1.6342614095367152e-15,
		-9.063970842808673e-17,
		4.763348040515068e-18,
		-2.3784598852774293e-19,
	}

	// erfMidCoeffs_f64 extends the series to 41 terms for 1 <= x < 2.
	erfMidCoeffs_f64 = erfSeries(41)
)

// erfc(x) = t * exp(-x² + R(t)), t = 1/(1 + x/2), for x >= 1 in float32
// (Chebyshev fit, fractional error below 1.2e-7).
var erfcCoeffs_f32 = []float32{
	-1.26551223,
	1.00002368,
	0.37409196,
	0.09678418,
	-0.18628806,
	0.27886807,
	-1.13520398,
	1.48851587,
	-0.82215223,
	0.17087277,
}

// erfcTerms_f64 is the depth of the erfc continued fraction for x >= 2.
const erfcTerms_f64 = 60

// erfSeries returns the first n Maclaurin coefficients of erf(x)/x in x².
func erfSeries(n int) []float64 {
	c := make([]float64, n)
	term := 2 / sqrtPi // (2/√π)(-1)^k / k!
	for k := range n {
		c[k] = term / float64(2*k+1)
		term = -term / float64(k+1)
	}
	return c
}

// =============================================================================
// Scalar constants
// =============================================================================

const (
	ln2      = 0.693147180559945309417232121458176568
	log2e    = 1.44269504088896340735992468100189214
	log2of10 = 3.32192809488736234787031942948939018
	log10of2 = 0.301029995663981195213738894724493027
	log10e   = 0.434294481903251827651128918916605082
	sqrtHalf = 0.707106781186547524400844362104849039
	pi       = 3.14159265358979323846264338327950288
	piOver2  = pi / 2
	piOver4  = pi / 4
	invTwoPi = 0.159154943091895335768883763372514362
	sqrtPi   = 1.77245385090551602729816748334114518
	tan3pio8 = 2.41421356237309504880 // tan(3π/8)
	atanLow  = 0.66
)

// Constants split into a head that is exact at each precision and the
// remainder, for Cody-Waite style reduction with fused multiply-adds.
const (
	ln2Hi_f32 = 0.6931471824645996
	ln2Lo_f32 = -1.904654299957768e-09
	ln2Hi_f64 = 0.6931471805599453
	ln2Lo_f64 = 2.3190468138462996e-17

	log10of2Hi_f32 = 0.3010300099849701
	log10of2Lo_f32 = -1.4320988897559699e-08
	log10of2Hi_f64 = 0.3010299956639812
	log10of2Lo_f64 = -2.8037281277851704e-18

	twoPiHi_f32 = 6.2831854820251465
	twoPiLo_f32 = -1.748455600074497e-07
	twoPiHi_f64 = 6.283185307179586
	twoPiLo_f64 = 2.4492935982947064e-16

	piOver2Hi_f32 = 1.5707963705062866
	piOver2Lo_f32 = -4.3711390001862426e-08
	piOver2Hi_f64 = 1.5707963267948966
	piOver2Lo_f64 = 6.123233995736766e-17
)

// coeffs selects the coefficient table for the lane type T.
func coeffs[T hwy.Floats](c32 []float32, c64 []float64) []T {
	if is32[T]() {
		out := make([]T, len(c32))
		for i, v := range c32 {
			out[i] = T(v)
		}
		return out
	}
	out := make([]T, len(c64))
	for i, v := range c64 {
		out[i] = T(v)
	}
	return out
}

// pick returns a or b depending on the precision of T.
func pick[T hwy.Floats](a32, b64 float64) T {
	if is32[T]() {
		return T(a32)
	}
	return T(b64)
}

func is32[T hwy.Floats]() bool {
	return hwy.LayoutOf[T]().MantissaBits == 23
}
