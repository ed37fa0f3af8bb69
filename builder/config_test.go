// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn)).idFn(3); got != "3" {
		t.Errorf("last option must win: expected \"3\", got %q", got)
	}
}

// TestRNGOptions verifies default nil RNG and seed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Fatal("default rng must be nil")
	}

	a := newBuilderConfig(WithSeed(99)).rng.Int63()
	b := newBuilderConfig(WithSeed(99)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected identical draws, got %d and %d", a, b)
	}

	r := rand.New(rand.NewSource(1))
	if newBuilderConfig(WithRand(r)).rng != r {
		t.Error("WithRand: rng not attached")
	}
}

// TestOptionPanics verifies option constructors reject nil inputs.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithIDScheme(nil)": func() { WithIDScheme(nil) },
		"WithRand(nil)":     func() { WithRand(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
