package loop

import (
	"sync"

	"github.com/vovakirdan/tui-catch/internal/catch"
)

// FrameSink is a Renderer that hands snapshots to another goroutine over a
// buffered channel. When the reader falls behind the oldest frame is dropped,
// so the driver never blocks on drawing.
type FrameSink struct {
	frames chan catch.Snapshot
	done   chan struct{}
	once   sync.Once
}

// NewFrameSink creates a sink buffering up to size frames.
func NewFrameSink(size int) *FrameSink {
	if size < 1 {
		size = 1
	}
	return &FrameSink{
		frames: make(chan catch.Snapshot, size),
		done:   make(chan struct{}),
	}
}

// Draw implements Renderer.
func (f *FrameSink) Draw(snap catch.Snapshot) {
	select {
	case <-f.done:
		// Sink is closed, don't send
		return
	default:
	}

	select {
	case f.frames <- snap:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-f.frames:
		default:
		}
		select {
		case f.frames <- snap:
		default:
		}
	}
}

// Frames returns the channel frames are delivered on.
func (f *FrameSink) Frames() <-chan catch.Snapshot {
	return f.frames
}

// Done is closed when the sink is closed.
func (f *FrameSink) Done() <-chan struct{} {
	return f.done
}

// Close stops accepting frames. Frames already buffered stay readable.
func (f *FrameSink) Close() {
	f.once.Do(func() { close(f.done) })
}
