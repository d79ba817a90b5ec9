package simulation

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// TrialFunc plays one independent trial against its own generator and
// reports whether the attacker succeeded.
type TrialFunc func(gen *StepGenerator) bool

// Engine spreads independent trials over a fixed number of threads.
type Engine struct {
	threads int
	lock    sync.Mutex
}

func NewEngine(threads int) *Engine {
	engine := &Engine{}
	engine.SetThreads(threads)
	return engine
}

// SetThreads updates the number of trial threads. Zero means one thread per
// CPU and negative values fall back to a single thread.
func (e *Engine) SetThreads(threads int) {
	e.lock.Lock()
	defer e.lock.Unlock()
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	if threads < 0 {
		threads = 1
	}
	e.threads = threads
}

func (e *Engine) Threads() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return e.threads
}

// Run plays trials [0, trials) and returns how many succeeded. Trial i always
// draws from a generator seeded with TrialSeed(base, i), so the count does
// not depend on the thread count.
func (e *Engine) Run(p float64, base int64, trials int, trial TrialFunc) int {
	threads := e.Threads()
	if threads > trials {
		threads = trials
	}
	var (
		pend      sync.WaitGroup
		successes atomic.Int64
	)
	for id := 0; id < threads; id++ {
		pend.Add(1)
		go func(id int) {
			defer pend.Done()
			var local int64
			for i := id; i < trials; i += threads {
				rng := rand.New(rand.NewSource(TrialSeed(base, i)))
				if trial(NewStepGenerator(p, rng)) {
					local++
				}
			}
			successes.Add(local)
		}(id)
	}
	pend.Wait()
	return int(successes.Load())
}
