package utils

import "math"

// RoundPercentage arredonda uma variação percentual para o inteiro mais próximo
func RoundPercentage(f float64) int64 {
	return int64(math.Round(f))
}
