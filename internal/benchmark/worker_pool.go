package benchmark

import (
	"context"
	"runtime"
	"sync"
	"time"
)

// TrialJob identifies one seeded search of a run
type TrialJob struct {
	Index int
	Seed  int64
}

// TrialFunc runs a single trial
type TrialFunc func(job TrialJob) Trial

// trialPool fans trial jobs out to a fixed set of workers.
// Seeds are derived from the base seed so results do not depend on scheduling.
type trialPool struct {
	workers  int
	baseSeed int64
	run      TrialFunc

	jobs    chan TrialJob
	results chan Trial
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// newTrialPool sizes both queues for trials jobs; workers <= 0 uses every CPU
func newTrialPool(ctx context.Context, workers, trials int, baseSeed int64, run TrialFunc) *trialPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > trials {
		workers = trials
	}

	ctx, cancel := context.WithCancel(ctx)
	return &trialPool{
		workers:  workers,
		baseSeed: baseSeed,
		run:      run,
		jobs:     make(chan TrialJob, trials),
		results:  make(chan Trial, trials),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (p *trialPool) start() {
	p.wg.Add(p.workers)
	for w := 0; w < p.workers; w++ {
		go p.worker()
	}
}

// submit queues trial index; it fails once the run context is done
func (p *trialPool) submit(index int) error {
	job := TrialJob{Index: index, Seed: p.baseSeed + int64(index)}
	select {
	case p.jobs <- job:
		return nil
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// finish stops accepting jobs and closes the results once every worker returned
func (p *trialPool) finish() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

func (p *trialPool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.ctx.Err() != nil {
			return
		}
		trial := p.run(job)

		select {
		case p.results <- trial:
		case <-p.ctx.Done():
			return
		}
	}
}

// ProgressSnapshot is a point-in-time view of a run
type ProgressSnapshot struct {
	Completed int
	Total     int
	Percent   float64
	Elapsed   time.Duration
	Remaining time.Duration
}

// Progress counts finished trials of a run
type Progress struct {
	mu        sync.RWMutex
	total     int
	completed int
	startTime time.Time
}

func NewProgress(total int) *Progress {
	return &Progress{
		total:     total,
		startTime: time.Now(),
	}
}

// Done marks one more trial finished and returns the completed count
func (p *Progress) Done() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed++
	return p.completed
}

// Snapshot reports completion and a linear estimate of the time left
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := ProgressSnapshot{
		Completed: p.completed,
		Total:     p.total,
		Elapsed:   time.Since(p.startTime),
	}
	if p.total > 0 {
		s.Percent = float64(p.completed) / float64(p.total) * 100
	}
	if p.completed > 0 && p.completed < p.total {
		perTrial := s.Elapsed / time.Duration(p.completed)
		s.Remaining = perTrial * time.Duration(p.total-p.completed)
	}
	return s
}
