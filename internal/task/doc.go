// Package task runs generation work on a bounded pool of workers so that the
// number of concurrent provider calls stays fixed no matter how many sessions
// are active. Work is submitted through a buffered TaskQueue and executed by a
// WorkerPool that cancels in-flight tasks on shutdown.
package task
