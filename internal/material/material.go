// material.go
// 材料名 → 抵抗率 [Ω·mm²/m]。英語・ドイツ語の名前どちらでも引ける。

package material

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMaterial はカタログに無い材料名
var ErrUnknownMaterial = errors.New("unknown material")

// Material は既知の材料
type Material int

const (
	Copper Material = iota
	Iron
	Aluminium
	Gold
	Graphite
	Silver
	Platinum
	Lead
	Tungsten
)

var resistivity = [...]float64{
	Copper:    1.721e-2,
	Iron:      1e-1,
	Aluminium: 2.65e-2,
	Gold:      2.214e-2,
	Graphite:  8,
	Silver:    1.587e-2,
	Platinum:  1.05e-1,
	Lead:      2.08e-1,
	Tungsten:  6.03e-2,
}

var names = [...]string{
	Copper:    "copper",
	Iron:      "iron",
	Aluminium: "aluminium",
	Gold:      "gold",
	Graphite:  "graphite",
	Silver:    "silver",
	Platinum:  "platinum",
	Lead:      "lead",
	Tungsten:  "tungsten",
}

// 名前（小文字）→ 材料。nickel は元データのまま tungsten と同じ値を指す。
var byName = map[string]Material{
	"copper":    Copper,
	"kupfer":    Copper,
	"iron":      Iron,
	"eisen":     Iron,
	"aluminium": Aluminium,
	"alu":       Aluminium,
	"gold":      Gold,
	"graphite":  Graphite,
	"graphit":   Graphite,
	"silver":    Silver,
	"silber":    Silver,
	"platinum":  Platinum,
	"platin":    Platinum,
	"lead":      Lead,
	"blei":      Lead,
	"tungsten":  Tungsten,
	"nickel":    Tungsten, // TODO: give nickel its own Material once its resistivity is confirmed
}

// Resistivity は抵抗率 [Ω·mm²/m]
func (m Material) Resistivity() float64 {
	if m < 0 || int(m) >= len(resistivity) {
		return 0
	}
	return resistivity[m]
}

func (m Material) String() string {
	if m < 0 || int(m) >= len(names) {
		return fmt.Sprintf("Material(%d)", int(m))
	}
	return names[m]
}

// Lookup は名前から材料を引く（大文字小文字・前後の空白は無視）
func Lookup(name string) (Material, error) {
	m, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// Resistivity は名前から直接抵抗率を引く
func Resistivity(name string) (float64, error) {
	m, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return m.Resistivity(), nil
}

// Names は受け付ける名前をソートして返す
func Names() []string {
	out := make([]string, 0, len(byName))
	for k := range byName {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Synonyms は材料ごとの名前一覧（表示用）
func Synonyms() map[Material][]string {
	out := make(map[Material][]string, len(names))
	for _, n := range Names() {
		m := byName[n]
		out[m] = append(out[m], n)
	}
	return out
}

// All は全材料（定数順）
func All() []Material {
	out := make([]Material, len(resistivity))
	for i := range out {
		out[i] = Material(i)
	}
	return out
}
