package tools

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-toolbox/internal/config"
)

// BMIResult is a body mass index rounded to one decimal with its WHO
// adult category.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// BMI computes weightKg / heightM². The category is derived from the
// rounded value so that the two never disagree on screen.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if !positive(weightKg) || !positive(heightCm) {
		return BMIResult{}, fmt.Errorf("%w: weight=%v height=%v", ErrBMIInput, weightKg, heightCm)
	}

	h := heightCm / 100
	value := math.Round(weightKg/(h*h)*10) / 10

	return BMIResult{Value: value, Category: bmiCategory(value)}, nil
}

func bmiCategory(v float64) string {
	switch {
	case v < config.BMIUnderweight:
		return config.BMICategoryLow
	case v < config.BMINormal:
		return config.BMICategoryOK
	case v < config.BMIOverweight:
		return config.BMICategoryOver
	default:
		return config.BMICategoryObese
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
