package scene

import "time"

// Animator is the animation capability elements delegate to. The scene core
// declares the surface but implements none of it; attribute tweening lives
// in an external collaborator. An element without an installed animator
// treats every animation call as a no-op.
type Animator interface {
	// Animate transitions n's attributes toward to over duration.
	Animate(n Node, to Attrs, duration time.Duration)

	// StopAnimate stops any running animation on n.
	StopAnimate(n Node)

	// PauseAnimate pauses any running animation on n.
	PauseAnimate(n Node)

	// ResumeAnimate resumes a paused animation on n.
	ResumeAnimate(n Node)
}
