// runner.go
// 問題をまとめて並列に解く。結果は入力順。

package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ichijohodaka/ohmcalc/internal/circuit"
	"github.com/ichijohodaka/ohmcalc/internal/conductor"
	"github.com/ichijohodaka/ohmcalc/internal/report"
	"github.com/ichijohodaka/ohmcalc/internal/token"
)

// Status は 1 問の結果区分
type Status int

const (
	StatusSolved Status = iota
	StatusUnsolved
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolved:
		return "unsolved"
	default:
		return "error"
	}
}

// Outcome は 1 問分の結果。Kind に応じて Conductor か Circuit のどちらかが入る。
type Outcome struct {
	Problem   Problem
	Status    Status
	Conductor conductor.Result
	Circuit   circuit.Result
	Sentence  string
	Err       error
}

// Solved は解いたスロット名（解けていなければ ""）
func (o Outcome) Solved() string {
	if o.Status != StatusSolved {
		return ""
	}
	if o.Problem.Kind == KindCircuit {
		return o.Circuit.Solved.String()
	}
	return o.Conductor.Solved.String()
}

// Summary は 1 回の実行結果
type Summary struct {
	RunID    string
	Started  time.Time
	Outcomes []Outcome
	Solved   int
	Unsolved int
	Errors   int
}

// Total は問題数
func (s Summary) Total() int { return len(s.Outcomes) }

// Ratio は区分ごとの割合（0 件なら 0）
func (s Summary) Ratio(st Status) float64 {
	if s.Total() == 0 {
		return 0
	}
	var n int
	switch st {
	case StatusSolved:
		n = s.Solved
	case StatusUnsolved:
		n = s.Unsolved
	default:
		n = s.Errors
	}
	return float64(n) / float64(s.Total())
}

// Solve は 1 問を解く。トークンのエラーは Outcome に入れて返す。
func Solve(p Problem) Outcome {
	o := Outcome{Problem: p}
	switch p.Kind {
	case KindCircuit:
		rec, err := token.Circuit(p.Tokens)
		if err != nil {
			o.Status, o.Err = StatusError, err
			return o
		}
		o.Circuit = circuit.Solve(rec)
		o.Sentence = report.Circuit(o.Circuit)
		if !o.Circuit.OK() {
			o.Status = StatusUnsolved
		}
	default:
		rec, err := token.Conductor(p.Tokens)
		if err != nil {
			o.Status, o.Err = StatusError, err
			return o
		}
		o.Conductor = conductor.Solve(rec)
		o.Sentence = report.Conductor(o.Conductor)
		if !o.Conductor.OK() {
			o.Status = StatusUnsolved
		}
	}
	return o
}

// Runner は並列数とロガーを持つ
type Runner struct {
	Concurrency int
	Logger      *zap.Logger
}

// NewRunner: concurrency < 1 は 1 とみなす。logger が nil なら出力しない。
func NewRunner(concurrency int, logger *zap.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Concurrency: concurrency, Logger: logger}
}

// Run は全問を解く。ctx がキャンセルされたら途中でやめて ctx.Err() を返す。
func (r *Runner) Run(ctx context.Context, problems []Problem) (Summary, error) {
	sum := Summary{
		RunID:    uuid.NewString(),
		Started:  time.Now(),
		Outcomes: make([]Outcome, len(problems)),
	}
	log := r.Logger.With(zap.String("run_id", sum.RunID))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Concurrency)
	for i, p := range problems {
		i, p := i, p // per-iteration copies (go.mod targets Go 1.21 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o := Solve(p)
			switch o.Status {
			case StatusError:
				log.Warn("problem rejected", zap.Int("line", p.Line), zap.Error(o.Err))
			default:
				log.Debug("problem done",
					zap.Int("line", p.Line),
					zap.String("kind", string(p.Kind)),
					zap.Stringer("status", o.Status),
					zap.String("solved", o.Solved()))
			}
			sum.Outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	for _, o := range sum.Outcomes {
		switch o.Status {
		case StatusSolved:
			sum.Solved++
		case StatusUnsolved:
			sum.Unsolved++
		default:
			sum.Errors++
		}
	}
	log.Info("batch finished",
		zap.Int("problems", sum.Total()),
		zap.Int("solved", sum.Solved),
		zap.Int("unsolved", sum.Unsolved),
		zap.Int("errors", sum.Errors),
		zap.Duration("elapsed", time.Since(sum.Started)))
	return sum, nil
}
