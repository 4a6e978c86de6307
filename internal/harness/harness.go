// Package harness generates random Boolean functions and measures the
// BDD pipeline against the brute-force oracle: accuracy over every
// assignment, node counts, and how much the rotation search saves.
package harness

import (
	"math/rand"
	"strings"
	"time"

	"github.com/tliron/commonlog"

	"robdd/internal/bdd"
	"robdd/internal/truth"
)

var log = commonlog.GetLogger("robdd.harness")

// Generate returns a random DNF expression over the first numVars
// letters: between 1 and numVars+1 terms, each of 1..numVars possibly
// negated variables.
func Generate(r *rand.Rand, numVars int) string {
	var sb strings.Builder

	terms := r.Intn(numVars+1) + 1
	for i := 0; i < terms; i++ {
		if i > 0 {
			sb.WriteByte('+')
		}
		length := r.Intn(numVars) + 1
		for j := 0; j < length; j++ {
			if r.Intn(2) == 0 {
				sb.WriteByte('!')
			}
			sb.WriteByte(byte('a' + r.Intn(numVars)))
		}
	}

	return sb.String()
}

// Config sizes a harness run.
type Config struct {
	Vars  int   // number of variables, 1..26
	Funcs int   // number of random functions to test
	Seed  int64 // generator seed; runs with the same seed are identical
}

// Stats aggregates one run.
type Stats struct {
	Funcs         int
	Accuracy      float64       // fraction of functions whose BDD matched the oracle on every assignment
	MeanNodes     float64       // mean node count under the default order
	MeanBestNodes float64       // mean node count after rotation search
	Reduction     float64       // mean size saving versus the full binary tree, percent
	BestReduction float64       // mean saving of rotation search versus default order, percent
	BuildTime     time.Duration // total time in New
	BestOrderTime time.Duration // total time in NewBestOrder
}

// Run builds and checks cfg.Funcs random functions over cfg.Vars
// variables. Accuracy below 1.0 means the construction pipeline
// disagrees with brute force somewhere.
func Run(cfg Config) Stats {
	order := defaultOrder(cfg.Vars)
	r := rand.New(rand.NewSource(cfg.Seed))
	assignments := truth.Assignments(cfg.Vars)
	fullSize := (1 << (cfg.Vars + 1)) - 1

	var stats Stats
	stats.Funcs = cfg.Funcs
	correct := 0
	totalNodes := 0
	totalBestNodes := 0

	for i := 0; i < cfg.Funcs; i++ {
		expr := Generate(r, cfg.Vars)

		start := time.Now()
		b := bdd.New(expr, order)
		stats.BuildTime += time.Since(start)

		start = time.Now()
		best := bdd.NewBestOrder(expr, order)
		stats.BestOrderTime += time.Since(start)

		if checkAccuracy(b, expr, order, assignments) {
			correct++
		} else {
			log.Errorf("mismatch against brute force: %s", expr)
		}

		totalNodes += b.Size()
		totalBestNodes += best.Size()
		stats.Reduction += reduction(fullSize, b.Size())
		stats.BestReduction += reduction(b.Size(), best.Size())

		log.Debugf("func %d: %s (nodes=%d best=%d)", i, expr, b.Size(), best.Size())

		b.Free()
		best.Free()
	}

	if cfg.Funcs > 0 {
		stats.Accuracy = float64(correct) / float64(cfg.Funcs)
		stats.MeanNodes = float64(totalNodes) / float64(cfg.Funcs)
		stats.MeanBestNodes = float64(totalBestNodes) / float64(cfg.Funcs)
		stats.Reduction /= float64(cfg.Funcs)
		stats.BestReduction /= float64(cfg.Funcs)
	}

	log.Infof("run done: vars=%d funcs=%d accuracy=%.2f%% mean nodes=%.2f best=%.2f",
		cfg.Vars, cfg.Funcs, stats.Accuracy*100, stats.MeanNodes, stats.MeanBestNodes)

	return stats
}

func checkAccuracy(b *bdd.BDD, expr, order string, assignments []string) bool {
	for _, a := range assignments {
		expected := truth.Evaluate(expr, order, a)
		got, err := b.Evaluate(a)
		if err != nil || got != expected {
			return false
		}
	}
	return true
}

// reduction is the percentage saved going from original to reduced.
func reduction(original, reduced int) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-reduced) / float64(original) * 100
}

func defaultOrder(numVars int) string {
	bits := make([]byte, numVars)
	for i := range bits {
		bits[i] = byte('a' + i)
	}
	return string(bits)
}
