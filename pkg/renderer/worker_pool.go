package renderer

import (
	"image"
	"sync"
)

// bandRows is the height of one row band, the unit of work handed to a
// worker.
const bandRows = 16

// numBands returns how many bands cover an image of the given height.
func numBands(height int) int {
	return (height + bandRows - 1) / bandRows
}

// RowTask describes one horizontal band of the frame
type RowTask struct {
	YStart int // First row of the band
	YEnd   int // One past the last row
}

// RowResult contains the result from rendering one band
type RowResult struct {
	Hits int
	Err  error
}

// WorkerPool renders disjoint row bands in parallel. Every worker owns its
// own RenderContext, so traversal state is never shared between goroutines.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders row bands pulled from the shared task queue
type Worker struct {
	ID          int
	renderer    *Renderer
	ctx         *RenderContext
	img         *image.RGBA
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a pool of numWorkers workers rendering into img.
// Queues are buffered for maxTasks so submitting and reporting never block.
func NewWorkerPool(r *Renderer, img *image.RGBA, numWorkers, maxTasks int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    r,
			ctx:         NewRenderContext(),
			img:         img,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Submit queues one band for rendering
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue and waits for all workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		hits, err := w.renderer.renderRows(w.ctx, w.img, task.YStart, task.YEnd)
		w.resultQueue <- RowResult{Hits: hits, Err: err}
	}
}
