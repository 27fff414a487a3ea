// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Sample stream abstraction.

package atatrace

import "io"

// LogicSample is one instant of the multi-channel trace. Unwired channels
// read false.
type LogicSample struct {
	Index  int64
	Levels [NumChannels]bool
	Wired  [NumChannels]bool
}

// Level returns the logic level of a channel at this sample, or false if the
// channel is not wired.
func (s *LogicSample) Level(ch Channel) bool {
	return s.Wired[ch] && s.Levels[ch]
}

// Sampler supplies the raw multi-channel waveform to the decoder. WaitEdge
// blocks until any of the given channels transitions high to low, returning
// which channel fired and the sample index of the edge; it returns io.EOF
// when the sample stream is exhausted. Level and Snapshot read the stream at
// the most recent edge position.
type Sampler interface {
	WaitEdge(strobes ...Channel) (Channel, int64, error)
	Level(ch Channel) bool
	Snapshot() LogicSample
}

// TraceSampler replays a fully captured trace held in memory, one bool slice
// per wired channel. All slices must be the same length.
type TraceSampler struct {
	levels [NumChannels][]bool
	wired  [NumChannels]bool
	n      int64
	pos    int64
}

// NewTraceSampler builds a TraceSampler from per-channel sample slices.
// Channels absent from the map are unwired and read false.
func NewTraceSampler(samples map[Channel][]bool) *TraceSampler {
	ts := &TraceSampler{}

	for ch, s := range samples {
		ts.levels[ch] = s
		ts.wired[ch] = true

		if int64(len(s)) > ts.n {
			ts.n = int64(len(s))
		}
	}

	return ts
}

// WaitEdge advances to the next falling edge on any of the given channels.
func (ts *TraceSampler) WaitEdge(strobes ...Channel) (Channel, int64, error) {
	for idx := ts.pos + 1; idx < ts.n; idx++ {
		for _, ch := range strobes {
			if !ts.wired[ch] {
				continue
			}

			if ts.levels[ch][idx-1] && !ts.levels[ch][idx] {
				ts.pos = idx
				return ch, idx, nil
			}
		}
	}

	ts.pos = ts.n
	return 0, ts.n, io.EOF
}

// Level returns the logic level of a channel at the current position.
func (ts *TraceSampler) Level(ch Channel) bool {
	if !ts.wired[ch] || ts.pos >= int64(len(ts.levels[ch])) {
		return false
	}

	return ts.levels[ch][ts.pos]
}

// Snapshot captures every channel at the current position.
func (ts *TraceSampler) Snapshot() LogicSample {
	s := LogicSample{Index: ts.pos, Wired: ts.wired}

	for ch := 0; ch < NumChannels; ch++ {
		if ts.wired[ch] {
			s.Levels[ch] = ts.Level(Channel(ch))
		}
	}

	return s
}

// Wired reports whether a channel carries capture data.
func (ts *TraceSampler) Wired(ch Channel) bool {
	return ts.wired[ch]
}
