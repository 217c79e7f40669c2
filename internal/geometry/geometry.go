// geometry.go
// 円形断面の直径 [mm] と断面積 [mm²] の相互変換

package geometry

import "math"

// Circle は導体の断面。どちらか一方だけ、あるいは両方が未設定でもよい。
type Circle struct {
	Diameter *float64 // mm
	Area     *float64 // mm²
}

// AreaFromDiameter: A = π·d²/4
func AreaFromDiameter(d float64) float64 {
	return math.Pi * d * d / 4
}

// DiameterFromArea: d = sqrt(4A/π)。A <= 0 では定義しない。
func DiameterFromArea(a float64) (float64, bool) {
	if !(a > 0) {
		return 0, false
	}
	return math.Sqrt(4 * a / math.Pi), true
}

// FromDiameter は直径から面積まで埋めた Circle を返す
func FromDiameter(d float64) Circle {
	a := AreaFromDiameter(d)
	return Circle{Diameter: &d, Area: &a}
}

// FromArea は面積から直径を埋めた Circle を返す（A <= 0 なら直径は未設定のまま）
func FromArea(a float64) Circle {
	c := Circle{Area: &a}
	if d, ok := DiameterFromArea(a); ok {
		c.Diameter = &d
	}
	return c
}

// ResolvedArea は面積。面積が無ければ直径から求める。
func (c Circle) ResolvedArea() (float64, bool) {
	switch {
	case c.Area != nil:
		return *c.Area, true
	case c.Diameter != nil:
		return AreaFromDiameter(*c.Diameter), true
	default:
		return 0, false
	}
}
