package utils

import "math"

// ComputeFare prices a journey between two cumulative distances. The result
// is rounded half away from zero to a whole currency unit and is the same in
// both directions.
func ComputeFare(fromDistance, toDistance, unitRate float64) int64 {
	if unitRate <= 0 {
		return 0
	}
	return RoundMoney(math.Abs(toDistance-fromDistance) * unitRate)
}

func RoundMoney(x float64) int64 {
	return int64(math.Round(x))
}
