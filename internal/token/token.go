// token.go
// 入力トークン（"10m", "2.5mm2", "kupfer", "material=copper", "10:ohm" など）を
// 導体・回路のレコードに変換する。

package token

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ichijohodaka/ohmcalc/internal/circuit"
	"github.com/ichijohodaka/ohmcalc/internal/conductor"
	"github.com/ichijohodaka/ohmcalc/internal/geometry"
	"github.com/ichijohodaka/ohmcalc/internal/material"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidUnit   = errors.New("invalid unit")
)

// Error はどのトークンで失敗したか
type Error struct {
	Index int // 0 始まり
	Token string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Index+1, e.Token, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// 起動時に一度だけコンパイルする
var (
	numberUnit = regexp.MustCompile(`(?i)^([-0-9.]+)([a-z][a-z0-9/]*)$`)
	bareWord   = regexp.MustCompile(`^([[:alpha:]]+)$`)
	numeric    = regexp.MustCompile(`^[-0-9.]+$`)
)

const materialKey = "material="

// Split は区切り文字で分け、空要素を捨てる
func Split(line, sep string) []string {
	parts := strings.Split(line, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// match は 1 トークンの解析結果。unit が空なら word（材料名）。
type match struct {
	value float64
	unit  string
	word  string
}

// normalize は表記ゆれをそろえる。material= 付きなら isMaterial が true。
func normalize(tok string) (s string, isMaterial bool) {
	tok = strings.TrimSpace(tok)

	if len(tok) >= len(materialKey) && strings.EqualFold(tok[:len(materialKey)], materialKey) {
		return strings.TrimSpace(tok[len(materialKey):]), true
	}

	tok = strings.ReplaceAll(tok, "*", "x")

	// value:unit / unit:value
	if l, r, ok := strings.Cut(tok, ":"); ok && !strings.Contains(r, ":") {
		l, r = strings.TrimSpace(l), strings.TrimSpace(r)
		if numeric.MatchString(r) && !numeric.MatchString(l) {
			l, r = r, l
		}
		return l + r, false
	}
	return tok, false
}

func scan(tok string) (match, error) {
	s, isMaterial := normalize(tok)
	if isMaterial {
		// material= の後ろは数値として読まず、そのまま材料名としてカタログで引く
		return match{word: strings.ToLower(s)}, nil
	}
	if m := numberUnit.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return match{}, fmt.Errorf("%w: %q", ErrInvalidNumber, m[1])
		}
		return match{value: v, unit: strings.ToLower(m[2])}, nil
	}
	if m := bareWord.FindStringSubmatch(s); m != nil {
		return match{word: strings.ToLower(m[1])}, nil
	}
	return match{}, ErrInvalidUnit
}

// Conductor はトークン列から導体レコードを作る。
// 最初に失敗したトークンで止まり、*Error を返す。
func Conductor(tokens []string) (conductor.Record, error) {
	var rec conductor.Record
	for i, tok := range tokens {
		if err := applyConductor(&rec, tok); err != nil {
			return conductor.Record{}, &Error{Index: i, Token: tok, Err: err}
		}
	}
	return rec, nil
}

func applyConductor(rec *conductor.Record, tok string) error {
	m, err := scan(tok)
	if err != nil {
		return err
	}
	v := m.value
	switch m.unit {
	case "":
		// 材料名は抵抗率に直接書き込む（明示の抵抗率と後勝ち）
		rho, err := material.Resistivity(m.word)
		if err != nil {
			return err
		}
		rec.Resistivity = &rho
	case "ohm":
		rec.Resistance = &v
	case "ohmxmm2/m":
		rec.Resistivity = &v
	case "m":
		rec.Length = &v
	case "mm":
		c := geometry.FromDiameter(v)
		rec.Geometry = &c
	case "mm2":
		c := geometry.FromArea(v)
		rec.Geometry = &c
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUnit, m.unit)
	}
	return nil
}

// Circuit はトークン列から回路レコードを作る
func Circuit(tokens []string) (circuit.Record, error) {
	var rec circuit.Record
	for i, tok := range tokens {
		if err := applyCircuit(&rec, tok); err != nil {
			return circuit.Record{}, &Error{Index: i, Token: tok, Err: err}
		}
	}
	return rec, nil
}

func applyCircuit(rec *circuit.Record, tok string) error {
	m, err := scan(tok)
	if err != nil {
		return err
	}
	v := m.value
	switch m.unit {
	case "ohm":
		rec.Resistance = &v
	case "a":
		rec.Current = &v
	case "v":
		rec.Voltage = &v
	case "":
		return fmt.Errorf("%w: %q", ErrInvalidUnit, m.word)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUnit, m.unit)
	}
	return nil
}
