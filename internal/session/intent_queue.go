package session

import (
	"sync/atomic"

	"github.com/appengine-ltd/luxtree/internal/parser"
)

// CommandSink accepts parsed intents from goroutines other than the frame
// loop. Queued intents are applied at the start of the next Step.
type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

type intentQueue struct {
	ch      chan parser.Intent
	dropped atomic.Int64
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

// EnqueueIntent never blocks the caller; a full queue drops the intent
// and counts it.
func (q *intentQueue) EnqueueIntent(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		q.dropped.Add(1)
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

// Dropped is how many intents were discarded on a full queue.
func (q *intentQueue) Dropped() int64 {
	return q.dropped.Load()
}
