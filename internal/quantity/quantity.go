// quantity.go
// 物理量（数値＋10 のべき乗の接頭辞）と、接頭辞テーブル。
// 接頭辞テーブルは固定。未知の接頭辞は指数 0 として扱う。

package quantity

import "math"

// Prefix は接頭辞の指数（10 のべき乗）
type Prefix int

const (
	Peta  Prefix = 15
	Tera  Prefix = 12
	Giga  Prefix = 9
	Mega  Prefix = 6
	Kilo  Prefix = 3
	None  Prefix = 0
	Deci  Prefix = -1
	Centi Prefix = -2
	Milli Prefix = -3
	Micro Prefix = -6
	Nano  Prefix = -9
)

// 起動時に一度だけ作られる読み取り専用テーブル
var prefixes = map[string]Prefix{
	"P":  Peta,
	"T":  Tera,
	"G":  Giga,
	"M":  Mega,
	"k":  Kilo,
	"":   None,
	"d":  Deci,
	"z":  Centi,
	"c":  Centi,
	"m":  Milli,
	"µ":  Micro,
	"u":  Micro,
	"my": Micro,
	"n":  Nano,
}

var symbols = map[Prefix]string{
	Peta:  "P",
	Tera:  "T",
	Giga:  "G",
	Mega:  "M",
	Kilo:  "k",
	None:  "",
	Deci:  "d",
	Centi: "c",
	Milli: "m",
	Micro: "µ",
	Nano:  "n",
}

// ParsePrefix: 接頭辞の文字を指数に変換する。大文字小文字は区別する（M と m は別物）。
// 未知の文字列は None。
func ParsePrefix(s string) Prefix {
	if p, ok := prefixes[s]; ok {
		return p
	}
	return None
}

// Symbol は表示用の接頭辞記号
func (p Prefix) Symbol() string { return symbols[p] }

// Factor は 10^p
func (p Prefix) Factor() float64 { return math.Pow10(int(p)) }

// Quantity は測定値と接頭辞の組
type Quantity struct {
	Value float64
	Scale Prefix
}

// New は基本単位の値 v を接頭辞 p で表した Quantity を返す
func New(v float64, p Prefix) Quantity {
	return Quantity{Value: v / p.Factor(), Scale: p}
}

// Base は接頭辞なしの値
func (q Quantity) Base() float64 { return q.Value * q.Scale.Factor() }

// In は同じ量を別の接頭辞で表し直す
func (q Quantity) In(p Prefix) Quantity {
	if p == q.Scale {
		return q
	}
	return Quantity{Value: q.Value * math.Pow10(int(q.Scale-p)), Scale: p}
}

// Known は値ありのオプショナルフィールドを作る
func Known(v float64) *float64 { return &v }

// Count は nil でないフィールドの数
func Count(fields ...*float64) int {
	n := 0
	for _, f := range fields {
		if f != nil {
			n++
		}
	}
	return n
}
