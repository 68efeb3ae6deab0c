package astar

import (
	"container/heap"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrDuplicateKey is returned by Push when the key is already queued.
var ErrDuplicateKey = errors.New("key already in queue")

type queueItem[KeyType comparable, PriorityType constraints.Ordered] struct {
	Key      KeyType
	Priority PriorityType
}

// queueData implements heap.Interface. Every swap also moves the
// positions of both keys, so positions always mirrors items.
type queueData[KeyType comparable, PriorityType constraints.Ordered] struct {
	items     []queueItem[KeyType, PriorityType]
	positions map[KeyType]int
}

func (queue *queueData[KeyType, PriorityType]) Len() int { return len(queue.items) }
func (queue *queueData[KeyType, PriorityType]) Less(i, j int) bool {
	return queue.items[i].Priority < queue.items[j].Priority
}
func (queue *queueData[KeyType, PriorityType]) Swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.positions[queue.items[i].Key] = i
	queue.positions[queue.items[j].Key] = j
}

func (queue *queueData[KeyType, PriorityType]) Push(x any) {
	item := x.(queueItem[KeyType, PriorityType])
	queue.positions[item.Key] = len(queue.items)
	queue.items = append(queue.items, item)
}

func (queue *queueData[KeyType, PriorityType]) Pop() any {
	n := len(queue.items)
	item := queue.items[n-1]
	queue.items[n-1] = queueItem[KeyType, PriorityType]{}
	queue.items = queue.items[:n-1]
	delete(queue.positions, item.Key)
	return item
}

// PriorityQueue is a binary min-heap of unique keys with a key to position
// index, so priorities can be changed in place in O(log n).
//
// The order in which keys with equal priority are popped is unspecified.
type PriorityQueue[KeyType comparable, PriorityType constraints.Ordered] struct {
	data queueData[KeyType, PriorityType]
}

// NewPriorityQueue returns an empty queue with room for capacity keys.
func NewPriorityQueue[KeyType comparable, PriorityType constraints.Ordered](capacity int) *PriorityQueue[KeyType, PriorityType] {
	return &PriorityQueue[KeyType, PriorityType]{
		data: queueData[KeyType, PriorityType]{
			items:     make([]queueItem[KeyType, PriorityType], 0, capacity),
			positions: make(map[KeyType]int, capacity),
		},
	}
}

// Push inserts key with the given priority.
func (queue *PriorityQueue[KeyType, PriorityType]) Push(key KeyType, priority PriorityType) error {
	if _, exists := queue.data.positions[key]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	heap.Push(&queue.data, queueItem[KeyType, PriorityType]{Key: key, Priority: priority})
	return nil
}

// Pop removes and returns the key with the smallest priority.
func (queue *PriorityQueue[KeyType, PriorityType]) Pop() (KeyType, bool) {
	if len(queue.data.items) == 0 {
		var zero KeyType
		return zero, false
	}
	item := heap.Pop(&queue.data).(queueItem[KeyType, PriorityType])
	if len(queue.data.positions) != len(queue.data.items) {
		panic(fmt.Sprintf("astar: queue index out of sync: %d positions for %d items",
			len(queue.data.positions), len(queue.data.items)))
	}
	return item.Key, true
}

// Peek returns the key with the smallest priority without removing it.
func (queue *PriorityQueue[KeyType, PriorityType]) Peek() (KeyType, bool) {
	if len(queue.data.items) == 0 {
		var zero KeyType
		return zero, false
	}
	return queue.data.items[0].Key, true
}

// ChangePriority moves key to its new priority. It reports false, and does
// nothing, when the key is not queued.
func (queue *PriorityQueue[KeyType, PriorityType]) ChangePriority(key KeyType, priority PriorityType) bool {
	position, exists := queue.data.positions[key]
	if !exists {
		return false
	}
	if queue.data.items[position].Key != key {
		panic(fmt.Sprintf("astar: queue index for %v points at %v", key, queue.data.items[position].Key))
	}
	if queue.data.items[position].Priority == priority {
		return true
	}
	queue.data.items[position].Priority = priority
	heap.Fix(&queue.data, position)
	return true
}

// Priority returns the current priority of key.
func (queue *PriorityQueue[KeyType, PriorityType]) Priority(key KeyType) (PriorityType, bool) {
	position, exists := queue.data.positions[key]
	if !exists {
		var zero PriorityType
		return zero, false
	}
	return queue.data.items[position].Priority, true
}

func (queue *PriorityQueue[KeyType, PriorityType]) Contains(key KeyType) bool {
	_, exists := queue.data.positions[key]
	return exists
}

func (queue *PriorityQueue[KeyType, PriorityType]) Len() int      { return len(queue.data.items) }
func (queue *PriorityQueue[KeyType, PriorityType]) IsEmpty() bool { return len(queue.data.items) == 0 }

// Clear drops every key but keeps the allocated storage.
func (queue *PriorityQueue[KeyType, PriorityType]) Clear() {
	clear(queue.data.items)
	queue.data.items = queue.data.items[:0]
	clear(queue.data.positions)
}

// Keys returns a copy of the queued keys in heap order.
func (queue *PriorityQueue[KeyType, PriorityType]) Keys() []KeyType {
	keys := make([]KeyType, len(queue.data.items))
	for i, item := range queue.data.items {
		keys[i] = item.Key
	}
	return keys
}
