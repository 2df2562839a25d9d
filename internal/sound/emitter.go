// Package sound isolates the best-effort audio cue behind a capability
// interface so it can be stubbed in tests and disabled on platforms
// without audio.
package sound

import "io"

// Emitter plays an arrival cue. Implementations must swallow failures; a
// cue that cannot be played is simply lost.
type Emitter interface {
	Play(fraud bool)
}

// Noop discards every cue.
type Noop struct{}

// Play implements Emitter.
func (Noop) Play(bool) {}

// Bell writes terminal bell characters to a writer, doubling the bell for
// fraudulent transactions. Write errors are ignored.
type Bell struct {
	W io.Writer
}

// Play implements Emitter.
func (b Bell) Play(fraud bool) {
	if b.W == nil {
		return
	}
	cue := []byte{'\a'}
	if fraud {
		cue = []byte{'\a', '\a'}
	}
	_, _ = b.W.Write(cue)
}
