package synergy

import (
	"context"
	"math"
	"sort"

	"github.com/vk/synergrid/internal/ctxlog"
)

// noScoreSentinel sits strictly below every valid score so the first
// evaluated partner always wins the running maximum, and ties never displace
// an earlier winner.
const noScoreSentinel = -1

// ScoreFunc is a pure scoring function over an ordered pair of module names.
// It must be total and deterministic; it is never called with equal names.
type ScoreFunc func(name1, name2 string) (float64, error)

// DefaultScore is the placeholder affinity formula:
//
//	|1 - ((len(name1) + len(name2)) mod 3)|
//
// yielding scores in {0, 1}. It carries no domain meaning; it exists so the
// optimizer has reproducible behavior until a calibrated heuristic replaces it.
func DefaultScore(name1, name2 string) (float64, error) {
	return math.Abs(1 - float64((len(name1)+len(name2))%3)), nil
}

// RuneOverlapScore scores a pair by the distinct runes the two names share,
// as a fraction of all distinct runes across both: 0 for disjoint alphabets,
// 1 for identical ones.
func RuneOverlapScore(name1, name2 string) (float64, error) {
	set1 := make(map[rune]struct{})
	for _, r := range name1 {
		set1[r] = struct{}{}
	}

	union := make(map[rune]struct{}, len(set1))
	for r := range set1 {
		union[r] = struct{}{}
	}
	shared := 0
	seen := make(map[rune]struct{})
	for _, r := range name2 {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		union[r] = struct{}{}
		if _, ok := set1[r]; ok {
			shared++
		}
	}

	if len(union) == 0 {
		return 0, nil
	}
	return float64(shared) / float64(len(union)), nil
}

// scorers maps configuration names to the built-in scoring policies.
var scorers = map[string]ScoreFunc{
	"length_mod3":  DefaultScore,
	"rune_overlap": RuneOverlapScore,
}

// ScoreFuncByName looks up a built-in scoring policy by its configuration name.
func ScoreFuncByName(name string) (ScoreFunc, bool) {
	fn, ok := scorers[name]
	return fn, ok
}

// Optimizer computes best-partner suggestions over a snapshot of module
// names. It never mutates the registry it was built from.
type Optimizer struct {
	names []string
	score ScoreFunc
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithScoreFunc swaps the scoring function.
func WithScoreFunc(fn ScoreFunc) Option {
	return func(o *Optimizer) { o.score = fn }
}

// New creates an optimizer over a snapshot of the given name to handle
// mapping. Names are sorted so partner selection is deterministic regardless
// of map iteration order.
func New(modules map[string]any, opts ...Option) *Optimizer {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	o := &Optimizer{names: names, score: DefaultScore}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Names returns the snapshot the optimizer was built over, in scan order.
func (o *Optimizer) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// EvaluatePair scores the ordered pair (name1, name2). A scoring failure is
// reported as *EvaluationError with the original cause preserved.
func (o *Optimizer) EvaluatePair(name1, name2 string) (float64, error) {
	score, err := o.score(name1, name2)
	if err != nil {
		return 0, &EvaluationError{Module1: name1, Module2: name2, Err: err}
	}
	return score, nil
}

// FindBestPartners scans every ordered pair of distinct module names and,
// for each module, keeps the partner with the strictly highest score. The
// first partner in scan order wins ties. Modules with nobody to compare
// against are omitted, so sets of size zero or one yield an empty map.
//
// Any per-pair failure aborts the whole computation and surfaces as a single
// *OptimizationError.
func (o *Optimizer) FindBestPartners(ctx context.Context) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	partners := make(map[string]string)
	for _, name1 := range o.names {
		maxScore := float64(noScoreSentinel)
		best := ""
		for _, name2 := range o.names {
			if name1 == name2 {
				continue
			}
			score, err := o.EvaluatePair(name1, name2)
			if err != nil {
				logger.Error("Pair evaluation failed.", "module1", name1, "module2", name2, "error", err)
				return nil, &OptimizationError{Err: err}
			}
			if score > maxScore {
				maxScore = score
				best = name2
			}
		}
		if best != "" {
			partners[name1] = best
			logger.Debug("Best partner selected.", "module", name1, "partner", best, "score", maxScore)
		}
	}
	return partners, nil
}
