package barchart

import "math"

// LinearScale maps a continuous domain onto a continuous range by linear
// interpolation. The domain may be given in descending order.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

func NewLinearScale(domain, rng [2]float64) LinearScale {
	return LinearScale{Domain: domain, Range: rng}
}

// Scale maps v from the domain onto the range. A collapsed domain maps every
// value onto the middle of the range.
func (s LinearScale) Scale(v float64) float64 {
	d := s.Domain[1] - s.Domain[0]
	t := 0.5
	if d != 0 {
		t = (v - s.Domain[0]) / d
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Ticks returns about count round values spanning the domain, in domain order.
func (s LinearScale) Ticks(count int) []float64 {
	if count <= 0 {
		count = 10
	}
	return ticks(s.Domain[0], s.Domain[1], float64(count))
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// jsRound rounds half up like Math.round.
func jsRound(v float64) float64 {
	return math.Floor(v + 0.5)
}

func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errv := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case errv >= e10:
		factor = 10
	case errv >= e5:
		factor = 5
	case errv >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = jsRound(start * inc)
		i2 = jsRound(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = jsRound(start / inc)
		i2 = jsRound(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return
}

func ticks(start, stop, count float64) []float64 {
	if !(count > 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	var i1, i2, inc float64
	if reverse {
		i1, i2, inc = tickSpec(stop, start, count)
	} else {
		i1, i2, inc = tickSpec(start, stop, count)
	}
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		var k float64
		if reverse {
			k = i2 - float64(i)
		} else {
			k = i1 + float64(i)
		}
		if inc < 0 {
			result[i] = k / -inc
		} else {
			result[i] = k * inc
		}
	}
	return result
}
