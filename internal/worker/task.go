// ABOUTME: Task runs the clustering engine off the request-handling path
// ABOUTME: One request in flight per task, exactly one typed reply each
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/studymate/topics/internal/core"
	"github.com/studymate/topics/internal/models"
)

// ErrClosed is returned by Submit after Close has been called
var ErrClosed = errors.New("clustering task is closed")

// Task is a message-passing boundary around the clustering engine. Requests
// are handled one at a time on a dedicated goroutine so clustering cost
// never blocks the caller's request handling; start more tasks for
// concurrent jobs. The task keeps no state between requests.
type Task struct {
	opts     core.Options
	cluster  func(core.Options, []models.Chunk) []models.Cluster
	requests chan envelope
	quit     chan struct{}
}

type envelope struct {
	req   models.ClusterRequest
	reply chan models.ClusterResponse
}

// StartTask launches a clustering task goroutine with the given engine
// defaults. Per-request values override the defaults when set.
func StartTask(opts core.Options) *Task {
	t := &Task{
		opts: opts,
		cluster: func(opts core.Options, chunks []models.Chunk) []models.Cluster {
			return core.NewEngine(opts).Cluster(chunks)
		},
		requests: make(chan envelope),
		quit:     make(chan struct{}),
	}
	go t.run()
	return t
}

// Submit sends one clustering request and waits for its single reply.
// The context bounds only the waiting side; a clustering pass that has
// started runs to completion regardless.
func (t *Task) Submit(ctx context.Context, req models.ClusterRequest) ([]models.Cluster, error) {
	env := envelope{
		req: req,
		// Buffered so the task never blocks on a caller that gave up
		reply: make(chan models.ClusterResponse, 1),
	}

	select {
	case t.requests <- env:
	case <-t.quit:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case resp := <-env.reply:
		if !resp.Success {
			return nil, errors.New(resp.Error)
		}
		return resp.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the task goroutine. Pending Submit calls receive ErrClosed.
func (t *Task) Close() {
	close(t.quit)
}

// run is the task loop: receive one request, reply exactly once
func (t *Task) run() {
	for {
		select {
		case env := <-t.requests:
			env.reply <- t.handle(env.req)
		case <-t.quit:
			return
		}
	}
}

// handle executes one clustering request, converting any panic inside the
// engine (e.g. resource exhaustion on pathological input) into an error
// reply instead of crashing the process.
func (t *Task) handle(req models.ClusterRequest) (resp models.ClusterResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[worker] clustering panic recovered: %v", r)
			resp = models.ClusterResponse{
				Success: false,
				Error:   fmt.Sprintf("clustering failed: %v", r),
			}
		}
	}()

	opts := t.opts
	if req.NumClusters > 0 {
		opts.NumClusters = req.NumClusters
	}
	if req.MinChunksPerGroup > 0 {
		opts.MinChunksPerGroup = req.MinChunksPerGroup
	}

	result := t.cluster(opts, req.Chunks)

	return models.ClusterResponse{Success: true, Result: result}
}
