package component

import "image/color"

// Animation holds the discrete parameters handed to the render host. The
// core only ever writes these.
type Animation struct {
	Enabled   bool
	Moving    bool
	Jumping   bool
	Grounded  bool
	Crouching bool
	Dead      bool
	Speed     float64
	FlipX     bool
}

var AnimationComponent = NewComponent[Animation]()

// Sprite selects what the render host draws for an entity.
type Sprite struct {
	Key          string
	SortingLayer string
	Color        color.RGBA
	Hidden       bool
}

var SpriteComponent = NewComponent[Sprite]()
