package simulation

import (
	"errors"
	"math"
	"testing"
)

func TestEstimateNoTrials(t *testing.T) {
	for _, model := range []Model{Didactic, Realistic} {
		est := NewEstimator(model, nil, nil, nil)
		for _, trials := range []int{0, -1} {
			if _, err := est.Estimate(0.3, 6, trials, seedPtr(1)); !errors.Is(err, ErrNoTrials) {
				t.Errorf("%v trials=%d: expected ErrNoTrials, got %v", model, trials, err)
			}
		}
	}
}

func TestEstimateUnknownModel(t *testing.T) {
	est := NewEstimator(Model(7), nil, nil, nil)
	if _, err := est.Estimate(0.3, 6, 10, seedPtr(1)); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestEstimateDidactic(t *testing.T) {
	est := NewEstimator(Didactic, nil, nil, nil)

	low, err := est.Estimate(0.1, 6, 2000, seedPtr(42))
	if err != nil {
		t.Fatal(err)
	}
	if low >= 0.01 {
		t.Errorf("p=0.1: success rate %v, expected < 0.01", low)
	}

	high, err := est.Estimate(0.9, 6, 500, seedPtr(42))
	if err != nil {
		t.Fatal(err)
	}
	if high <= 0.95 {
		t.Errorf("p=0.9: success rate %v, expected > 0.95", high)
	}
}

func TestEstimateRealistic(t *testing.T) {
	est := NewEstimator(Realistic, nil, nil, nil)

	high, err := est.Estimate(0.9, 6, 500, seedPtr(42))
	if err != nil {
		t.Fatal(err)
	}
	if high <= 0.95 {
		t.Errorf("p=0.9: success rate %v, expected > 0.95", high)
	}

	// Catching up from k behind with ties counted is the gambler's ruin the
	// bound describes, so the two should agree up to sampling noise.
	rate, err := est.Estimate(0.3, 3, 4000, seedPtr(42))
	if err != nil {
		t.Fatal(err)
	}
	if want := Bound(0.3, 3); math.Abs(rate-want) > 0.03 {
		t.Errorf("p=0.3 k=3: success rate %v too far from bound %v", rate, want)
	}
}

func TestEstimateDegenerate(t *testing.T) {
	tests := []struct {
		model Model
		p     float64
		k     int
		want  float64
	}{
		{Didactic, 1, 6, 1},
		{Didactic, 0, 6, 0},
		{Didactic, 0, 0, 0},
		{Realistic, 1, 6, 1},
		{Realistic, 0, 6, 0},
		{Realistic, 1, 0, 1},
	}
	for _, tt := range tests {
		est := NewEstimator(tt.model, nil, nil, nil)
		got, err := est.Estimate(tt.p, tt.k, 50, seedPtr(1))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%v p=%v k=%d: got %v, want %v", tt.model, tt.p, tt.k, got, tt.want)
		}
	}
}

func TestEstimateThreadIndependent(t *testing.T) {
	for _, model := range []Model{Didactic, Realistic} {
		single := NewEstimator(model, NewEngine(1), NewResultDB(), nil)
		multi := NewEstimator(model, NewEngine(4), NewResultDB(), nil)
		a, err := single.Estimate(0.4, 4, 1000, seedPtr(99))
		if err != nil {
			t.Fatal(err)
		}
		b, err := multi.Estimate(0.4, 4, 1000, seedPtr(99))
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("%v: 1 thread gave %v, 4 threads gave %v", model, a, b)
		}
	}
}

func TestEstimateBounded(t *testing.T) {
	for _, model := range []Model{Didactic, Realistic} {
		est := NewEstimator(model, NewEngine(0), nil, nil)
		for _, p := range []float64{0.2, 0.45, 0.55} {
			rate, err := est.Estimate(p, 3, 300, nil)
			if err != nil {
				t.Fatal(err)
			}
			if rate < 0 || rate > 1 {
				t.Errorf("%v p=%v: rate %v out of [0,1]", model, p, rate)
			}
		}
	}
}

func TestEstimateCache(t *testing.T) {
	db := NewResultDB()
	est := NewEstimator(Realistic, nil, db, nil)

	first, err := est.Estimate(0.35, 2, 200, seedPtr(5))
	if err != nil {
		t.Fatal(err)
	}
	if db.Len() != 1 {
		t.Fatalf("expected one cached result, got %d", db.Len())
	}
	second, _ := est.Estimate(0.35, 2, 200, seedPtr(5))
	if first != second {
		t.Errorf("cached estimate %v differs from %v", second, first)
	}

	if _, err := est.Estimate(0.35, 2, 200, nil); err != nil {
		t.Fatal(err)
	}
	if db.Len() != 1 {
		t.Errorf("unseeded run was cached")
	}

	// Models share the cache without colliding.
	other := NewEstimator(Didactic, nil, db, nil)
	if _, err := other.Estimate(0.35, 2, 200, seedPtr(5)); err != nil {
		t.Fatal(err)
	}
	if db.Len() != 2 {
		t.Errorf("expected two cached results, got %d", db.Len())
	}
}

func TestParseModel(t *testing.T) {
	for _, m := range []Model{Didactic, Realistic} {
		got, err := ParseModel(m.String())
		if err != nil || got != m {
			t.Errorf("ParseModel(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseModel("naive"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestParamsHash(t *testing.T) {
	a := Params{Model: Didactic, P: 0.3, K: 6, Trials: 100, Seed: 1}
	b := a
	if a.Hash() != b.Hash() {
		t.Error("equal params hashed differently")
	}
	if s := a.Hash().String(); len(s) != 2+2*HashLength || s[:2] != "0x" {
		t.Errorf("unexpected hash string %q", s)
	}
	b.Seed = 2
	if a.Hash() == b.Hash() {
		t.Error("different seeds hashed equally")
	}
	b = a
	b.Model = Realistic
	if a.Hash() == b.Hash() {
		t.Error("different models hashed equally")
	}
}
