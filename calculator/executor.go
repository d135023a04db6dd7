package calculator

import (
	"runtime"
	"sync"

	"distill/model"
	"distill/substance"
)

// Result is the outcome of one generation run by an executor.
type Result struct {
	Name   string
	Series model.Series
	Err    error
}

type task struct {
	index   int
	name    string
	content []byte
}

// executor runs generation tasks on a fixed pool of workers. Results keep
// the order tasks were dispatched in.
type executor struct {
	workers  int
	defaults Defaults
	catalog  *substance.Catalog

	dispatchChan chan task
}

func newExecutor(workers int, d Defaults, cat *substance.Catalog) *executor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &executor{
		workers:      workers,
		defaults:     d,
		catalog:      cat,
		dispatchChan: make(chan task, workers),
	}
}

func (e *executor) dispatchTask(tasks []task) []Result {
	results := make([]Result, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range e.dispatchChan {
				series, err := Generate(t.name, t.content, e.defaults, e.catalog)
				// 每个任务只写自己的下标
				results[t.index] = Result{Name: t.name, Series: series, Err: err}
			}
		}()
	}

	for _, t := range tasks {
		e.dispatchChan <- t
	}
	close(e.dispatchChan)
	wg.Wait()
	return results
}

// GenerateAll runs every model in Models from the defaults, using up to
// workers goroutines (NumCPU when workers <= 0). A failing model does not
// stop the others; its error is reported in its Result.
func GenerateAll(d Defaults, cat *substance.Catalog, workers int) []Result {
	tasks := make([]task, len(Models))
	for i, name := range Models {
		tasks[i] = task{index: i, name: name}
	}
	return newExecutor(workers, d, cat).dispatchTask(tasks)
}
