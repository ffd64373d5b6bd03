package kraitchik

import (
	"fmt"
	"log/slog"
	"math"
)

// Result describes a successful factorization.
type Result struct {
	// A and B are GCD(U-V, n) and GCD(U+V, n).
	A, B uint64
	// Congruence is the accepted nontrivial congruence.
	Congruence Congruence
	// Relations holds every relation the search used, in generation order.
	Relations []Relation
	// Rounds is the number of completed cursor rounds before success.
	Rounds int
	// BadSubsets is the number of square subsets rejected as trivial.
	BadSubsets int
}

// Factorizer runs Kraitchik's method. Runs share no state, so a Factorizer
// may be used from several goroutines at once.
type Factorizer struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a Factorizer. A nil cfg means DefaultConfig().
func New(cfg *Config) (*Factorizer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Factorizer{cfg: *cfg, logger: logger, metrics: cfg.Metrics}, nil
}

// search is the state of one run: the relation list and the bad subsets.
type search struct {
	n         uint64
	relations []Relation
	bad       *badSubsets
}

// Factorize searches for a nontrivial congruence of squares mod n and
// returns the factor pair it yields.
//
// Factorize returns ErrInvalidInput if n < 2, ErrPerfectSquare if n is a
// perfect square, ErrOverflow if n or an intermediate value does not fit in
// int64, and ErrNoFactor if the configured bounds run out (always the case
// for prime n).
func (f *Factorizer) Factorize(n uint64) (Result, error) {
	res, err := f.factorize(n)
	f.metrics.finished(err, len(res.Relations))
	return res, err
}

func (f *Factorizer) factorize(n uint64) (Result, error) {
	if n < 2 {
		return Result{}, fmt.Errorf("n = %d: %w", n, ErrInvalidInput)
	}
	if n > math.MaxInt64 {
		return Result{}, fmt.Errorf("n = %d: %w", n, ErrOverflow)
	}
	root := isqrt(n)
	if root*root == n {
		return Result{}, fmt.Errorf("n = %d: %w", n, ErrPerfectSquare)
	}
	s := &search{n: n, bad: newBadSubsets()}
	g := newGenerator(int64(root) + 1)
	for round := 0; round < f.cfg.MaxRounds; round++ {
		for _, x := range g.cursors() {
			r, err := NewRelation(x, int64(n))
			if err != nil {
				return Result{}, fmt.Errorf("round %d: %w", round, err)
			}
			if f.cfg.StrictSmoothness && !r.Smooth() {
				f.logger.Debug("discarding non-smooth relation", "x", r.X, "q", r.Q, "residue", r.Residue)
				f.metrics.relationDiscarded()
				continue
			}
			if len(s.relations) == f.cfg.MaxRelations {
				f.logger.Info("relation limit reached", "n", n, "limit", f.cfg.MaxRelations)
				return Result{}, fmt.Errorf("n = %d: %d relations: %w", n, len(s.relations), ErrNoFactor)
			}
			s.relations = append(s.relations, r)
			f.metrics.relationAdded()
			c, ok, err := f.settle(s)
			if err != nil {
				return Result{}, fmt.Errorf("round %d: %w", round, err)
			}
			if ok {
				a, b := c.Factors(n)
				return Result{
					A:          a,
					B:          b,
					Congruence: c,
					Relations:  s.relations,
					Rounds:     round,
					BadSubsets: s.bad.Len(),
				}, nil
			}
		}
		g.advance()
	}
	f.logger.Info("round limit reached", "n", n, "limit", f.cfg.MaxRounds)
	return Result{}, fmt.Errorf("n = %d: %d rounds: %w", n, f.cfg.MaxRounds, ErrNoFactor)
}

// settle runs the subset search after a relation has been appended and
// returns the first nontrivial congruence, if any. Each trivial square is
// recorded bad and the search carries on past it.
func (f *Factorizer) settle(s *search) (Congruence, bool, error) {
	for idx := range squaresWith(s.relations) {
		key := keyOf(s.relations, idx)
		if s.bad.contains(key) {
			continue
		}
		c, err := buildCongruence(s.relations, idx, s.n)
		if err != nil {
			return Congruence{}, false, err
		}
		f.logger.Debug("square subset found", "sum", c.Sum.String(), "subset", c.xs())
		if !c.Trivial(s.n) {
			f.logger.Debug("nontrivial congruence", "u", c.U, "v", c.V)
			return c, true, nil
		}
		f.logger.Debug("trivial congruence", "u", c.U, "v", c.V)
		s.bad.add(key)
		f.metrics.badSubset()
	}
	return Congruence{}, false, nil
}

var defaultFactorizer = mustNew(nil)

// mustNew is like New but panics on error.
func mustNew(cfg *Config) *Factorizer {
	f, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return f
}

// TryFactorize factors n with the default configuration and returns
// GCD(U-V, n) and GCD(U+V, n) for the first nontrivial congruence found.
// See Factorizer.Factorize for the errors it returns.
func TryFactorize(n uint64) (a, b uint64, err error) {
	res, err := defaultFactorizer.Factorize(n)
	if err != nil {
		return 0, 0, err
	}
	return res.A, res.B, nil
}

// Factorize is like TryFactorize but panics on error.
func Factorize(n uint64) (a, b uint64) {
	a, b, err := TryFactorize(n)
	if err != nil {
		panic(err)
	}
	return a, b
}
