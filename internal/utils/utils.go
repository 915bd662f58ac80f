package utils

import (
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/plasmakit/alphatau/internal/constants"
)

type Number interface {
	constraints.Float | constraints.Integer
}

func SumSlice[T Number](arr []T) (r T) {
	for i := range arr {
		r += arr[i]
	}
	return
}

func Average[T Number](s []T) (mean float64) {
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}

func MeanAndVariance[T Number](s []T, unbiased bool) (mean, variance float64) {
	mean = Average(s)
	for i := range s {
		variance += (float64(s[i]) - mean) * (float64(s[i]) - mean)
	}
	if unbiased {
		variance /= float64(len(s) - 1)
	} else {
		variance /= float64(len(s))
	}

	return
}

func IntAbs(a int) int {
	if a < 0 {
		return -a
	} else {
		return a
	}
}

// TableIntegrate sums a tabulated function over a uniform grid, optionally
// weighted by multiply(step*i), and scales by the step.
func TableIntegrate(s []float64, multiply func(float64) float64, step float64) (sum float64) {
	for i := range s {
		if multiply == nil {
			sum += s[i]
		} else {
			sum += s[i] * multiply(float64(i)*step)
		}
	}
	sum *= step
	return
}

func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}

func EV2J(val float64) float64 {
	return val * constants.ElectronCharge
}

func J2eV(val float64) float64 {
	return val / constants.ElectronCharge
}

func EV2Velocity(energy, mass float64) (v float64) {
	v = math.Sqrt(2 * energy * constants.ElectronCharge / mass)
	return
}
