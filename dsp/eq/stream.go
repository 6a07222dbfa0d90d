package eq

import (
	"errors"

	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/gopxl/beep/v2"
)

type streamer struct {
	src    beep.Streamer
	engine *Engine
	left   []float32
	right  []float32
	err    error
}

// NewStreamer filters src through e. Chunks are split into blocks of at
// most e.MaxBlockSize() frames, read at each call so the engine may be
// prepared or re-prepared after the streamer is built. While e is not
// prepared Stream returns no frames and Err reports ErrNotPrepared.
func NewStreamer(src beep.Streamer, e *Engine) beep.Streamer {
	return &streamer{src: src, engine: e}
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if errors.Is(s.err, ErrNotPrepared) {
		s.err = nil
	}
	if s.err != nil {
		return 0, false
	}

	if !s.engine.Prepared() {
		s.err = ErrNotPrepared
		return 0, false
	}

	size := s.engine.MaxBlockSize()
	s.left = core.EnsureLen(s.left, size)
	s.right = core.EnsureLen(s.right, size)

	n, ok = s.src.Stream(samples)

	for off := 0; off < n; off += len(s.left) {
		block := samples[off:min(off+len(s.left), n)]
		left, right := s.left[:len(block)], s.right[:len(block)]

		for i, frame := range block {
			left[i] = float32(frame[0])
			right[i] = float32(frame[1])
		}

		if err := s.engine.Process(left, right); err != nil {
			s.err = err
			return off, false
		}

		for i := range block {
			block[i][0] = float64(left[i])
			block[i][1] = float64(right[i])
		}
	}

	return n, ok
}

func (s *streamer) Err() error {
	if s.err != nil {
		return s.err
	}

	return s.src.Err()
}
