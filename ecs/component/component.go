// Package component holds the plain data attached to ringrush entities.
// Each file declares one data type and a package-level handle whose Kind
// is passed to the generic accessors in package ecs.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies one component store in a world. Zero is unused.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is a typed key for the store holding values of T. The zero
// value is invalid and rejected by ecs.Add.
type ComponentKind[T any] struct {
	id ComponentID
}

// NewComponentKind allocates a fresh id. Two kinds of the same T are
// distinct stores.
func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is declared once per component type, e.g.
//
//	var BlockComponent = NewComponent[Block]()
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

// Kind returns the key used with ecs.Add, ecs.Get and friends.
func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
