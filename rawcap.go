// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Raw packed capture files.

package atatrace

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// CaptureError describes malformed or unusable capture input.
type CaptureError struct {
	File string
	Msg  string
}

func (e CaptureError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// RawCapture is a sigrok-style raw binary capture: one little-endian unit of
// fixed size per sample, bit i of the unit carrying the level of the i-th
// assigned channel. The file is memory-mapped and sampled lazily, so large
// captures cost no heap.
type RawCapture struct {
	data   []byte
	unit   int
	n      int64
	pos    int64
	bitpos [NumChannels]int
	wired  [NumChannels]bool
}

// OpenRawCapture maps a raw capture file. assign lists the channel carried by
// each unit bit, lowest first; unassigned trailing bits are permitted.
func OpenRawCapture(path string, unitSize int, assign []Channel) (*RawCapture, error) {
	if unitSize < 1 || unitSize > 8 {
		return nil, CaptureError{File: path, Msg: fmt.Sprintf("invalid unit size %d", unitSize)}
	}

	if len(assign) > unitSize*8 {
		return nil, CaptureError{File: path,
			Msg: fmt.Sprintf("%d channels do not fit in a %d-byte unit", len(assign), unitSize)}
	}

	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("cannot open capture %s: %v", path, err)
	}

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("cannot stat capture %s: %v", path, err)
	}

	rc := &RawCapture{unit: unitSize, n: st.Size / int64(unitSize)}

	for i := range rc.bitpos {
		rc.bitpos[i] = -1
	}

	for bit, ch := range assign {
		if ch < 0 || int(ch) >= NumChannels {
			continue
		}
		rc.bitpos[ch] = bit
		rc.wired[ch] = true
	}

	if rc.n > 0 {
		rc.data, err = unix.Mmap(fd, 0, int(rc.n)*unitSize, unix.PROT_READ, unix.MAP_SHARED)
		if err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("cannot mmap capture %s: %v", path, err)
		}
	}

	unix.Close(fd)
	return rc, nil
}

// Close unmaps the capture. The sampler must not be used afterwards.
func (rc *RawCapture) Close() error {
	if rc.data == nil {
		return nil
	}

	data := rc.data
	rc.data = nil
	return unix.Munmap(data)
}

// Len returns the number of samples in the capture.
func (rc *RawCapture) Len() int64 {
	return rc.n
}

func (rc *RawCapture) level(idx int64, ch Channel) bool {
	bit := rc.bitpos[ch]
	if bit < 0 || idx >= rc.n {
		return false
	}

	off := idx * int64(rc.unit)
	return unitBit(rc.data[off:off+int64(rc.unit)], bit)
}

// WaitEdge advances to the next falling edge on any of the given channels.
func (rc *RawCapture) WaitEdge(strobes ...Channel) (Channel, int64, error) {
	for idx := rc.pos + 1; idx < rc.n; idx++ {
		for _, ch := range strobes {
			if rc.level(idx-1, ch) && !rc.level(idx, ch) {
				rc.pos = idx
				return ch, idx, nil
			}
		}
	}

	rc.pos = rc.n
	return 0, rc.n, io.EOF
}

// Level returns the logic level of a channel at the current position.
func (rc *RawCapture) Level(ch Channel) bool {
	return rc.level(rc.pos, ch)
}

// Snapshot captures every channel at the current position.
func (rc *RawCapture) Snapshot() LogicSample {
	s := LogicSample{Index: rc.pos, Wired: rc.wired}

	for ch := Channel(0); int(ch) < NumChannels; ch++ {
		if rc.wired[ch] {
			s.Levels[ch] = rc.level(rc.pos, ch)
		}
	}

	return s
}
