package dynarray

import (
	"errors"
	"fmt"
)

// InitCap is the capacity of a new Array and the floor it never shrinks below.
const InitCap = 2

var ErrIndexOutOfRange = errors.New("index out of range")
var ErrInvalidCapacity = errors.New("capacity too small")

// Array is a growable array with explicit capacity management. Storage doubles
// when an insert finds it full and halves when a remove leaves less than a third
// of it in use.
type Array[T any] struct {
	storage []T // len(storage) is the capacity
	size    int
}

func New[T any]() *Array[T] {
	return &Array[T]{
		storage: make([]T, InitCap),
	}
}

func NewWithCapacity[T any](capacity int) (*Array[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &Array[T]{
		storage: make([]T, capacity),
	}, nil
}

// FromSlice appends every value of s, in order, to a new Array.
func FromSlice[T any](s []T) *Array[T] {
	a := New[T]()
	for _, v := range s {
		a.Append(v)
	}
	return a
}

func (a *Array[T]) Size() int {
	return a.size
}

func (a *Array[T]) Capacity() int {
	return len(a.storage)
}

func (a *Array[T]) outOfRange(index int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, a.size)
}

func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, a.outOfRange(index)
	}

	return a.storage[index], nil
}

// Set replaces the element at index and returns the previous one.
func (a *Array[T]) Set(index int, value T) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, a.outOfRange(index)
	}

	old := a.storage[index]
	a.storage[index] = value
	return old, nil
}

// Insert places value at index shifting the tail one slot right. Index may be
// equal to Size to append.
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.size {
		return a.outOfRange(index)
	}

	if a.size == len(a.storage) {
		a.resize(2 * len(a.storage))
	}

	copy(a.storage[index+1:a.size+1], a.storage[index:a.size])
	a.storage[index] = value
	a.size++

	return nil
}

func (a *Array[T]) Append(value T) {
	a.Insert(a.size, value) // appending at size is always in range
}

// Remove deletes the element at index and returns it. Capacity is halved when
// the remaining elements fill less than a third of it, as long as the result
// stays at or above InitCap.
func (a *Array[T]) Remove(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, a.outOfRange(index)
	}

	removed := a.storage[index]
	copy(a.storage[index:a.size-1], a.storage[index+1:a.size])
	a.size--

	var zero T
	a.storage[a.size] = zero // release reference for the GC

	capacity := len(a.storage)
	if float64(a.size) < float64(capacity)/3 && capacity/2 >= InitCap {
		a.resize(capacity / 2)
	}

	return removed, nil
}

func (a *Array[T]) resize(capacity int) {
	storage := make([]T, capacity)
	copy(storage, a.storage[:a.size])
	a.storage = storage
}

// Values returns a copy of the elements in order.
func (a *Array[T]) Values() []T {
	values := make([]T, a.size)
	copy(values, a.storage[:a.size])
	return values
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("dynarray: size %d, capacity %d", a.size, len(a.storage))
}
