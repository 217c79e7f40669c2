// report.go
// 解いた結果を文章にする。表示は有効数字4桁（%.4g）。

package report

import (
	"fmt"

	"github.com/ichijohodaka/ohmcalc/internal/circuit"
	"github.com/ichijohodaka/ohmcalc/internal/conductor"
)

func fmt4(x float64) string { return fmt.Sprintf("%.4g", x) }

// 未知は 0 として表示する
func val(p *float64) string {
	if p == nil {
		return fmt4(0)
	}
	return fmt4(*p)
}

// Conductor は導体の結果文
func Conductor(res conductor.Result) string {
	r := res.Record
	var area, diameter *float64
	if r.Geometry != nil {
		diameter = r.Geometry.Diameter
		if a, ok := r.Geometry.ResolvedArea(); ok {
			area = &a
		}
	}

	switch res.Solved {
	case conductor.SlotResistance:
		return fmt.Sprintf(
			"The resistance of the %s m long cable with the area of %s mm² and the diameter of %s mm with the resistivity of %s Ω·mm²/m is: %s Ω",
			val(r.Length), val(area), val(diameter), val(r.Resistivity), val(r.Resistance),
		)
	case conductor.SlotResistivity:
		return fmt.Sprintf(
			"The resistivity of the %s m long cable with the area of %s mm² and the diameter of %s mm for the resistance of %s Ω is: %s Ω·mm²/m",
			val(r.Length), val(area), val(diameter), val(r.Resistance), val(r.Resistivity),
		)
	case conductor.SlotLength:
		return fmt.Sprintf(
			"The length of the cable with the area of %s mm² and the diameter of %s mm for the resistance of %s Ω and the resistivity of %s Ω·mm²/m is: %s m",
			val(area), val(diameter), val(r.Resistance), val(r.Resistivity), val(r.Length),
		)
	case conductor.SlotArea:
		return fmt.Sprintf(
			"The area of the cable with the length of %s m for the resistance of %s Ω and the resistivity of %s Ω·mm²/m is: %s mm²",
			val(r.Length), val(r.Resistance), val(r.Resistivity), val(area),
		)
	default:
		if r.State() != conductor.Unsolvable {
			// 3 つ既知でも割る数が 0 なら解けない
			return fmt.Sprintf("not solvable: the %s cannot be computed because a divisor is zero", r.State().Missing())
		}
		return fmt.Sprintf("not solvable: %d of 4 conductor quantities known, exactly 3 needed", r.Known())
	}
}

// Circuit は回路の結果文
func Circuit(res circuit.Result) string {
	r := res.Record
	switch res.Solved {
	case circuit.SlotVoltage:
		return fmt.Sprintf("The voltage for the current of %s A and the resistance of %s Ω is: %s V",
			val(r.Current), val(r.Resistance), val(r.Voltage))
	case circuit.SlotCurrent:
		return fmt.Sprintf("The current for the voltage of %s V and the resistance of %s Ω is: %s A",
			val(r.Voltage), val(r.Resistance), val(r.Current))
	case circuit.SlotResistance:
		return fmt.Sprintf("The resistance for the current of %s A and the voltage of %s V is: %s Ω",
			val(r.Current), val(r.Voltage), val(r.Resistance))
	default:
		return fmt.Sprintf("not solvable: %d of 3 circuit quantities known, exactly 2 positive values needed", r.Known())
	}
}
