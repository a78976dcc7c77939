package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Task is one recurring job: the decay sweep and the sleep sweep each
// register as a task with their own cadence.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler drives registered tasks on their own tickers until the
// context is cancelled.
type Scheduler struct {
	tasks []Task
}

func New() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(task Task) {
	if task.Interval <= 0 || task.Run == nil {
		return
	}
	s.tasks = append(s.tasks, task)
}

// Start launches one goroutine per task and blocks until ctx is done and
// every task has stopped. Task errors are logged, never fatal: a failed
// sweep retries on the next tick.
func (s *Scheduler) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, task := range s.tasks {
		wg.Add(1)
		go func(task Task) {
			defer wg.Done()
			ticker := time.NewTicker(task.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := task.Run(ctx); err != nil {
						log.Printf("scheduler: task %s: %v", task.Name, err)
					}
				}
			}
		}(task)
	}
	wg.Wait()
}
