package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide num por den retornando 0 quando o denominador é zero
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// MicrosToUnit converte valores em micro-unidades monetárias para a unidade principal
func MicrosToUnit(micros int64) float64 {
	return float64(micros) / 1_000_000
}
