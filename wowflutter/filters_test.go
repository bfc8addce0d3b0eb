package wowflutter

import "testing"

func TestNewFilterBank_SectionCounts(t *testing.T) {
	cfg := newConfig(testSampleRate, testToneHz)
	b := newFilterBank(cfg)

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"isolator", len(b.isolator.stages), 2},
		{"din", len(b.din.stages), 4},
		{"unweighted", len(b.unweighted.stages), 4},
		{"wow", len(b.wow.stages), 4},
		{"flutter", len(b.flutter.stages), 4},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %d sections, want %d", c.name, c.got, c.want)
		}
	}
}

func TestFilterBank_WeighterDefaultsToUnweighted(t *testing.T) {
	cfg := newConfig(testSampleRate, testToneHz)
	b := newFilterBank(cfg)

	if b.weighter(FilterType(99)) != b.unweighted {
		t.Fatalf("out-of-range filter type must default to Unweighted")
	}
}

// Filter construction is deterministic: two freshly built chains fed
// the same impulse must produce bit-identical output. Frozen impulse
// vectors can then be checked in against a single build.
func TestFilterBank_ImpulseResponseIsDeterministic(t *testing.T) {
	cfg := newConfig(testSampleRate, testToneHz)
	b1 := newFilterBank(cfg)
	b2 := newFilterBank(cfg)

	impulse := make([]float64, 64)
	impulse[0] = 1

	for _, pair := range []struct {
		a, b *stageChain
	}{
		{b1.isolator, b2.isolator},
		{b1.din, b2.din},
		{b1.unweighted, b2.unweighted},
		{b1.wow, b2.wow},
		{b1.flutter, b2.flutter},
	} {
		for i, x := range impulse {
			ya := pair.a.process(x)
			yb := pair.b.process(x)

			if ya != yb {
				t.Fatalf("sample %d: impulse responses diverged: %v vs %v", i, ya, yb)
			}
		}
	}
}

func TestFilterBank_ResetZeroesAllDelayLines(t *testing.T) {
	cfg := newConfig(testSampleRate, testToneHz)
	b := newFilterBank(cfg)

	b.isolator.process(1)
	b.din.process(1)
	b.unweighted.process(1)
	b.wow.process(1)
	b.flutter.process(1)

	b.reset()

	for _, c := range []*stageChain{b.isolator, b.din, b.unweighted, b.wow, b.flutter} {
		for _, s := range c.stages {
			if s.buf != [2]float64{0, 0} {
				t.Fatalf("reset left a non-zero delay line: %v", s.buf)
			}
		}
	}
}
