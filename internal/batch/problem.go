// problem.go
// 問題ファイル：1 行 1 問。
//
//	# コメント
//	conductor: 10m; 2.5mm2; copper
//	circuit: 2a; 5ohm

package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ichijohodaka/ohmcalc/internal/token"
)

// Kind は問題の種類
type Kind string

const (
	KindConductor Kind = "conductor"
	KindCircuit   Kind = "circuit"
)

// ParseKind は行頭の種類名（別名も可）
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conductor", "wire", "cable":
		return KindConductor, true
	case "circuit", "uri", "ohm":
		return KindCircuit, true
	}
	return "", false
}

// Problem は 1 行分の入力
type Problem struct {
	Line   int // 1 始まり
	Kind   Kind
	Tokens []string
}

// ParseProblems は問題ファイルを読む。空行と # で始まる行は飛ばす。
// 種類が分からない行があればそこでエラー。トークンの中身はここでは検査しない。
func ParseProblems(r io.Reader, sep string) ([]Problem, error) {
	var out []Problem
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		head, rest, ok := strings.Cut(text, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing \"<kind>:\" prefix", line)
		}
		kind, ok := ParseKind(head)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown problem kind %q", line, strings.TrimSpace(head))
		}
		out = append(out, Problem{Line: line, Kind: kind, Tokens: token.Split(rest, sep)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read problems: %w", err)
	}
	return out, nil
}
