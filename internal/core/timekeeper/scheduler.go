package timekeeper

import (
	"sort"
	"sync"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle means none.
type Handle uint64

// Scheduler runs one-shot callbacks after a delay.
// Cancel must be a no-op for the zero handle and for handles that already fired.
type Scheduler interface {
	ScheduleAfter(delay time.Duration, callback func()) Handle
	Cancel(handle Handle)
	Now() time.Time
}

// Dispatcher runs fn on the event loop goroutine.
type Dispatcher func(fn func())

// LoopScheduler schedules callbacks on real timers and dispatches them onto
// an event loop. Cancel and callbacks are expected to run on that loop: a
// callback cancelled after its timer expired, but before the loop ran it,
// does not run.
type LoopScheduler struct {
	mu       sync.Mutex
	dispatch Dispatcher
	nextID   Handle
	pending  map[Handle]*time.Timer
}

// NewLoopScheduler creates a scheduler. A nil dispatcher runs callbacks on the
// timer goroutine.
func NewLoopScheduler(dispatch Dispatcher) *LoopScheduler {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &LoopScheduler{
		dispatch: dispatch,
		pending:  make(map[Handle]*time.Timer),
	}
}

// ScheduleAfter registers callback to run after delay.
func (scheduler *LoopScheduler) ScheduleAfter(delay time.Duration, callback func()) Handle {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.nextID++
	handle := scheduler.nextID
	scheduler.pending[handle] = time.AfterFunc(delay, func() {
		scheduler.dispatch(func() {
			scheduler.fire(handle, callback)
		})
	})
	return handle
}

// Cancel drops a pending callback.
func (scheduler *LoopScheduler) Cancel(handle Handle) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	timer, ok := scheduler.pending[handle]
	if !ok {
		return
	}
	timer.Stop()
	delete(scheduler.pending, handle)
}

// Now returns the wall clock time.
func (scheduler *LoopScheduler) Now() time.Time {
	return time.Now()
}

// Pending returns the number of callbacks that have not fired yet.
func (scheduler *LoopScheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.pending)
}

// Stop cancels every pending callback.
func (scheduler *LoopScheduler) Stop() {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	for handle, timer := range scheduler.pending {
		timer.Stop()
		delete(scheduler.pending, handle)
	}
}

func (scheduler *LoopScheduler) fire(handle Handle, callback func()) {
	scheduler.mu.Lock()
	if _, ok := scheduler.pending[handle]; !ok {
		scheduler.mu.Unlock()
		return
	}
	delete(scheduler.pending, handle)
	scheduler.mu.Unlock()

	callback()
}

type manualTask struct {
	handle   Handle
	due      time.Time
	callback func()
}

// ManualScheduler is a virtual-time scheduler. Callbacks only run from Advance,
// on the caller's goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	nextID  Handle
	pending []manualTask
}

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// ScheduleAfter registers callback to run once virtual time passes delay.
func (scheduler *ManualScheduler) ScheduleAfter(delay time.Duration, callback func()) Handle {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.nextID++
	scheduler.pending = append(scheduler.pending, manualTask{
		handle:   scheduler.nextID,
		due:      scheduler.now.Add(delay),
		callback: callback,
	})
	return scheduler.nextID
}

// Cancel drops a pending callback.
func (scheduler *ManualScheduler) Cancel(handle Handle) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	for index, task := range scheduler.pending {
		if task.handle == handle {
			scheduler.pending = append(scheduler.pending[:index], scheduler.pending[index+1:]...)
			return
		}
	}
}

// Now returns the virtual time.
func (scheduler *ManualScheduler) Now() time.Time {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return scheduler.now
}

// Pending returns the number of callbacks that have not fired yet.
func (scheduler *ManualScheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.pending)
}

// Advance moves virtual time forward by delta and runs every callback that
// falls due, in deadline order. Callbacks scheduled while advancing run too
// when they fall inside the window.
func (scheduler *ManualScheduler) Advance(delta time.Duration) {
	scheduler.mu.Lock()
	target := scheduler.now.Add(delta)
	for {
		task, ok := scheduler.popDueLocked(target)
		if !ok {
			break
		}
		scheduler.now = task.due
		scheduler.mu.Unlock()
		task.callback()
		scheduler.mu.Lock()
	}
	scheduler.now = target
	scheduler.mu.Unlock()
}

func (scheduler *ManualScheduler) popDueLocked(target time.Time) (manualTask, bool) {
	if len(scheduler.pending) == 0 {
		return manualTask{}, false
	}
	sort.SliceStable(scheduler.pending, func(i, j int) bool {
		return scheduler.pending[i].due.Before(scheduler.pending[j].due)
	})
	next := scheduler.pending[0]
	if next.due.After(target) {
		return manualTask{}, false
	}
	scheduler.pending = scheduler.pending[1:]
	return next, true
}
