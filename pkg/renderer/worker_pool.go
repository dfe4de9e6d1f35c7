package renderer

import (
	"sync"

	"github.com/df07/go-path-tracer/pkg/core"
)

// TaskResult contains the image rendered for one task
type TaskResult struct {
	TaskID  int
	Task    RenderTask
	Image   *Image
	Samples int // Camera rays traced by the task
	Err     error
}

// WorkerPool manages parallel task rendering
type WorkerPool struct {
	taskQueue   chan RenderTask
	resultQueue chan TaskResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// Worker handles individual render tasks
type Worker struct {
	ID          int
	renderer    *TaskRenderer
	seed        int64
	taskQueue   chan RenderTask
	resultQueue chan TaskResult
	stopChan    chan struct{}
}

// NewWorkerPool creates a pool of numWorkers workers sharing one task renderer.
// queueSize bounds both the task and the result channel.
func NewWorkerPool(renderer *TaskRenderer, numWorkers int, queueSize int, seed int64) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RenderTask, queueSize),
		resultQueue: make(chan TaskResult, queueSize),
		numWorkers:  numWorkers,
		stopChan:    make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    renderer,
			seed:        seed,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			stopChan:    wp.stopChan,
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

// Cancel makes workers skip every task they have not started yet.
// Skipped tasks still produce a result with a nil image.
func (wp *WorkerPool) Cancel() {
	wp.stopOnce.Do(func() { close(wp.stopChan) })
}

// Stop closes the task queue, waits for the workers and closes the result queue.
// The result queue must be drained concurrently if it cannot hold every pending result.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a render task to the worker pool
func (wp *WorkerPool) SubmitTask(task RenderTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed task result
func (wp *WorkerPool) GetResult() (TaskResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		select {
		case <-w.stopChan:
			w.resultQueue <- TaskResult{TaskID: task.TaskID, Task: task, Err: errTaskCanceled}
			continue
		default:
		}

		// Every task draws from its own stream so results do not depend on scheduling
		sampler := core.NewSeededSampler(w.seed + int64(task.TaskID))
		img := w.renderer.RenderTask(task, sampler)

		w.resultQueue <- TaskResult{
			TaskID:  task.TaskID,
			Task:    task,
			Image:   img,
			Samples: task.PixelCount() * task.SamplesPerPixel,
		}
	}
}
