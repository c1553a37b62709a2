package qprep

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// BatchRequest pairs raw amplitudes with an identifier so results can be
// matched back to their inputs. A blank ID is filled with a fresh uuid.
type BatchRequest struct {
	ID         string
	Amplitudes AmplitudeVector
}

// BatchResult carries the outcome of one request. Error is set when any
// pipeline stage rejected the vector; State is nil in that case.
type BatchResult struct {
	ID    string
	State *PreparedState
	Error error
}

/*
PrepareBatch runs the pipeline over many independent vectors using a
bounded set of worker goroutines fed from a shared jobs channel. Requests
share nothing with each other, so the only coordination is the channel
itself. Results come back in the same order as the requests.

Once ctx is cancelled, every request that has not yet been handed to a
worker is reported with the context's error; vectors already in flight run
to completion.
*/
func (p *Preparer) PrepareBatch(ctx context.Context, requests []BatchRequest, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(requests) {
		workers = len(requests)
	}

	jobs := make(chan int)
	results := make([]BatchResult, len(requests))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				state, err := p.PrepareState(ctx, requests[idx].Amplitudes)
				results[idx] = BatchResult{
					ID:    requestID(requests[idx]),
					State: state,
					Error: err,
				}
			}
		}()
	}

	for idx := range requests {
		// Checked before the select: once the context is cancelled no
		// further request may be dispatched, even if a worker is ready.
		if err := ctx.Err(); err != nil {
			results[idx] = BatchResult{
				ID:    requestID(requests[idx]),
				Error: err,
			}
			continue
		}
		select {
		case jobs <- idx:
		case <-ctx.Done():
			results[idx] = BatchResult{
				ID:    requestID(requests[idx]),
				Error: ctx.Err(),
			}
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func requestID(request BatchRequest) string {
	if request.ID != "" {
		return request.ID
	}
	return uuid.NewString()
}
