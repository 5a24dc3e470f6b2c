package assets

import "math"

type PlayMode int

const (
	PlayLoop PlayMode = iota
	PlayOnce
)

// Animation picks a frame from elapsed state time.
type Animation struct {
	frames        []Texture
	frameDuration float64
	mode          PlayMode
}

func NewAnimation(frameDuration float64, frames []Texture, mode PlayMode) *Animation {
	return &Animation{frames: frames, frameDuration: frameDuration, mode: mode}
}

// KeyFrame returns the frame shown at stateTime, or nil once disposed.
func (a *Animation) KeyFrame(stateTime float64) Texture {
	if a == nil || len(a.frames) == 0 {
		return nil
	}
	if a.frameDuration <= 0 || len(a.frames) == 1 {
		return a.frames[0]
	}
	idx := int(math.Floor(stateTime / a.frameDuration))
	if idx < 0 {
		idx = 0
	}
	switch a.mode {
	case PlayOnce:
		if idx >= len(a.frames) {
			idx = len(a.frames) - 1
		}
	default:
		idx %= len(a.frames)
	}
	return a.frames[idx]
}

// Len returns the number of frames still held.
func (a *Animation) Len() int {
	if a == nil {
		return 0
	}
	return len(a.frames)
}

// Dispose retires the frames for good.
func (a *Animation) Dispose() {
	if a == nil {
		return
	}
	a.frames = nil
}

func (a *Animation) Disposed() bool { return a == nil || a.frames == nil }
