// conductor.go
// 導体の R = ρ·L/A。4 つのうち 3 つが分かっていれば残り 1 つを求める。

package conductor

import (
	"math"

	"github.com/ichijohodaka/ohmcalc/internal/geometry"
	"github.com/ichijohodaka/ohmcalc/internal/quantity"
)

// Epsilon 以下の絶対値で割ろうとした場合は解なしとする
const Epsilon = 1e-9

// Record は導体の既知量。nil は未知。
type Record struct {
	Resistance  *float64         // Ω
	Resistivity *float64         // Ω·mm²/m
	Length      *float64         // m
	Geometry    *geometry.Circle // 直径 mm / 面積 mm²
}

// Slot は 4 つの論理スロット
type Slot int

const (
	SlotNone Slot = iota
	SlotResistance
	SlotResistivity
	SlotLength
	SlotArea
)

func (s Slot) String() string {
	switch s {
	case SlotResistance:
		return "resistance"
	case SlotResistivity:
		return "resistivity"
	case SlotLength:
		return "length"
	case SlotArea:
		return "area"
	default:
		return "none"
	}
}

// ParseSlot は --want などで指定された名前を Slot にする
func ParseSlot(s string) (Slot, bool) {
	switch s {
	case "resistance", "r", "ohm":
		return SlotResistance, true
	case "resistivity", "rho":
		return SlotResistivity, true
	case "length", "l", "m":
		return SlotLength, true
	case "area", "a", "mm2", "diameter", "d", "mm":
		return SlotArea, true
	}
	return SlotNone, false
}

// State は「どの組み合わせが分かっているか」
type State int

const (
	Unsolvable State = iota
	MissingResistance
	MissingResistivity
	MissingLength
	MissingArea
)

// Missing は求めるべきスロット（Unsolvable なら SlotNone）
func (s State) Missing() Slot {
	switch s {
	case MissingResistance:
		return SlotResistance
	case MissingResistivity:
		return SlotResistivity
	case MissingLength:
		return SlotLength
	case MissingArea:
		return SlotArea
	default:
		return SlotNone
	}
}

// Area は面積スロット（直径しか無ければ直径から）
func (r Record) Area() (float64, bool) {
	if r.Geometry == nil {
		return 0, false
	}
	return r.Geometry.ResolvedArea()
}

func (r Record) hasArea() bool {
	_, ok := r.Area()
	return ok
}

// Known は既知のスロット数
func (r Record) Known() int {
	n := quantity.Count(r.Resistance, r.Resistivity, r.Length)
	if r.hasArea() {
		n++
	}
	return n
}

// State: ちょうど 3 つ既知のときだけ解ける。4 つ全部既知でも解かない。
func (r Record) State() State {
	if r.Known() != 3 {
		return Unsolvable
	}
	switch {
	case r.Resistance == nil:
		return MissingResistance
	case r.Resistivity == nil:
		return MissingResistivity
	case r.Length == nil:
		return MissingLength
	default:
		return MissingArea
	}
}

// Result は解いた後のレコードと、解いたスロット（解けなければ SlotNone）
type Result struct {
	Record Record
	Solved Slot
}

// OK は解けたかどうか
func (r Result) OK() bool { return r.Solved != SlotNone }

// Solve は足りない 1 スロットを求める。入力レコードは書き換えない。
func Solve(rec Record) Result {
	out := rec
	switch rec.State() {
	case MissingResistance:
		a, _ := rec.Area()
		if v, ok := div(*rec.Resistivity**rec.Length, a); ok {
			out.Resistance = &v
			return Result{Record: out, Solved: SlotResistance}
		}
	case MissingResistivity:
		a, _ := rec.Area()
		if v, ok := div(*rec.Resistance*a, *rec.Length); ok {
			out.Resistivity = &v
			return Result{Record: out, Solved: SlotResistivity}
		}
	case MissingLength:
		a, _ := rec.Area()
		if v, ok := div(*rec.Resistance*a, *rec.Resistivity); ok {
			out.Length = &v
			return Result{Record: out, Solved: SlotLength}
		}
	case MissingArea:
		if v, ok := div(*rec.Resistivity**rec.Length, *rec.Resistance); ok {
			// 面積だけを入れる。直径は逆算しない。
			out.Geometry = &geometry.Circle{Area: &v}
			return Result{Record: out, Solved: SlotArea}
		}
	case Unsolvable:
	}
	return Result{Record: rec, Solved: SlotNone}
}

func div(num, den float64) (float64, bool) {
	if math.Abs(den) <= Epsilon {
		return 0, false
	}
	return num / den, true
}
