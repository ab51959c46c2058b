// Package fitness holds the derived-classification rules shared by every
// create and edit path, so the two can never drift apart.
package fitness

import "math"

// BMI status labels.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// Fitness level labels.
const (
	LevelPoor      = "Poor"
	LevelAverage   = "Average"
	LevelGood      = "Good"
	LevelExcellent = "Excellent"
)

// ComputeBMI returns weight(kg) / height(m)^2 rounded to two decimals.
func ComputeBMI(heightM, weightKg float64) float64 {
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100
}

// ClassifyBMI maps a BMI value to its status label. Lower bounds are
// inclusive, upper bounds exclusive: 18.5 is Normal, 25 is Overweight,
// 30 is Obese.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// ClassifyFitness maps SEGAK component scores to a fitness level. The rules
// are evaluated in priority order and the first match wins: a single weak
// component forces Poor even when the others are excellent. The step-test
// score intentionally does not participate.
func ClassifyFitness(pushUp, sitUp int, sitReach float64) string {
	switch {
	case pushUp < 10 || sitUp < 10 || sitReach < 2:
		return LevelPoor
	case pushUp < 20 || sitUp < 20:
		return LevelAverage
	case pushUp < 25 || sitUp < 25:
		return LevelGood
	default:
		return LevelExcellent
	}
}
