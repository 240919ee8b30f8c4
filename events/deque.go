// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"sync/atomic"
)

// Queue is a lock-free FIFO freelist-based event queue.
// Callbacks on the main thread and the shader watcher goroutine
// both send to it; only the render loop receives.
// It must be initialized using [Queue.Init] or [NewQueue] before use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
type Queue struct {
	head atomic.Pointer[queueEvent]
	tail atomic.Pointer[queueEvent]
	len  atomic.Uint64
}

// NewQueue returns a new initialized queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.Init()
	return q
}

// Init initializes the queue.
func (q *Queue) Init() {
	head := &queueEvent{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueEvent struct {
	next atomic.Pointer[queueEvent]
	v    Event
}

var queueEventPool = sync.Pool{
	New: func() any { return &queueEvent{} },
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	for {
		first := q.head.Load()
		last := q.tail.Load()
		firstnext := first.next.Load()
		if first != q.head.Load() {
			continue
		}
		if first == last {
			if firstnext == nil {
				return nil
			}
			q.tail.CompareAndSwap(last, firstnext)
			continue
		}
		v := firstnext.v
		if q.head.CompareAndSwap(first, firstnext) {
			q.len.Add(^uint64(0))
			first.v = nil
			queueEventPool.Put(first)
			return v
		}
	}
}

// Drain removes and returns all events currently in the queue, in order.
func (q *Queue) Drain() []Event {
	var evs []Event
	for ev := q.NextEvent(); ev != nil; ev = q.NextEvent() {
		evs = append(evs, ev)
	}
	return evs
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	i := queueEventPool.Get().(*queueEvent)
	i.next.Store(nil)
	i.v = ev

	for {
		last := q.tail.Load()
		lastnext := last.next.Load()
		if q.tail.Load() != last {
			continue
		}
		if lastnext != nil {
			q.tail.CompareAndSwap(last, lastnext)
			continue
		}
		if last.next.CompareAndSwap(nil, i) {
			q.tail.CompareAndSwap(last, i)
			q.len.Add(1)
			return
		}
	}
}

// Len returns the length of the queue.
func (q *Queue) Len() uint64 {
	return q.len.Load()
}
