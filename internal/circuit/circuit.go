// circuit.go
// オームの法則 U = R·I。3 つのうち 2 つが分かっていれば残りを求める。

package circuit

import "github.com/ichijohodaka/ohmcalc/internal/quantity"

// Record は回路の既知量。nil は未知。
type Record struct {
	Voltage    *float64 // V
	Current    *float64 // A
	Resistance *float64 // Ω
}

// Slot は 3 つの論理スロット
type Slot int

const (
	SlotNone Slot = iota
	SlotVoltage
	SlotCurrent
	SlotResistance
)

func (s Slot) String() string {
	switch s {
	case SlotVoltage:
		return "voltage"
	case SlotCurrent:
		return "current"
	case SlotResistance:
		return "resistance"
	default:
		return "none"
	}
}

// ParseSlot は --want などで指定された名前を Slot にする
func ParseSlot(s string) (Slot, bool) {
	switch s {
	case "voltage", "u", "v":
		return SlotVoltage, true
	case "current", "i", "a":
		return SlotCurrent, true
	case "resistance", "r", "ohm":
		return SlotResistance, true
	}
	return SlotNone, false
}

// State は既知の組み合わせ
type State int

const (
	Unsolvable State = iota
	MissingVoltage
	MissingCurrent
	MissingResistance
)

// Missing は求めるべきスロット
func (s State) Missing() Slot {
	switch s {
	case MissingVoltage:
		return SlotVoltage
	case MissingCurrent:
		return SlotCurrent
	case MissingResistance:
		return SlotResistance
	default:
		return SlotNone
	}
}

// Known は既知のスロット数
func (r Record) Known() int {
	return quantity.Count(r.Voltage, r.Current, r.Resistance)
}

// State: ちょうど 2 つ既知のときだけ解ける
func (r Record) State() State {
	if r.Known() != 2 {
		return Unsolvable
	}
	switch {
	case r.Voltage == nil:
		return MissingVoltage
	case r.Current == nil:
		return MissingCurrent
	default:
		return MissingResistance
	}
}

// Result は解いた後のレコードと解いたスロット
type Result struct {
	Record Record
	Solved Slot
}

// OK は解けたかどうか
func (r Result) OK() bool { return r.Solved != SlotNone }

// Solve は足りない 1 スロットを求める。
// 入力の 2 値はどちらも正でなければならない（0 や負は解なし）。
func Solve(rec Record) Result {
	out := rec
	switch rec.State() {
	case MissingVoltage:
		i, r := *rec.Current, *rec.Resistance
		if positive(i, r) {
			u := i * r
			out.Voltage = &u
			return Result{Record: out, Solved: SlotVoltage}
		}
	case MissingCurrent:
		u, r := *rec.Voltage, *rec.Resistance
		if positive(u, r) {
			i := u / r
			out.Current = &i
			return Result{Record: out, Solved: SlotCurrent}
		}
	case MissingResistance:
		u, i := *rec.Voltage, *rec.Current
		if positive(u, i) {
			r := u / i
			out.Resistance = &r
			return Result{Record: out, Solved: SlotResistance}
		}
	case Unsolvable:
	}
	return Result{Record: rec, Solved: SlotNone}
}

func positive(a, b float64) bool { return a > 0 && b > 0 }
