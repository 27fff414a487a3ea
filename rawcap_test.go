// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package atatrace

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assignment mirrors a typical 16-probe hookup: D0..D7 on bits 0-7, the
// control lines on bits 8-14.
var rawAssign = []Channel{
	D0, D1, D2, D3, D4, D5, D6, D7,
	DIOW, DIOR, CS0, CS1, DA0, DA1, DA2,
}

func writeRawCapture(t *testing.T, samples []uint16) string {
	t.Helper()

	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], s)
	}

	path := filepath.Join(t.TempDir(), "capture.raw")
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

// rawSample packs one sample unit from decoded fields.
func rawSample(val uint8, diow, dior, cs0, cs1 bool, addr uint8) uint16 {
	v := uint16(val)

	setBit := func(bit int, level bool) {
		if level {
			v |= 1 << bit
		}
	}

	setBit(8, diow)
	setBit(9, dior)
	setBit(10, cs0)
	setBit(11, cs1)
	setBit(12, addr&1 != 0)
	setBit(13, addr&2 != 0)
	setBit(14, addr&4 != 0)

	return v
}

func TestRawCaptureDecode(t *testing.T) {
	assert := assert.New(t)

	idle := rawSample(0, true, true, true, true, 0)

	// One write cycle to the sector count register (CS0- low, DA=2).
	path := writeRawCapture(t, []uint16{
		idle,
		idle,
		rawSample(0x42, false, true, false, true, 2),
		idle,
	})

	rc, err := OpenRawCapture(path, 2, rawAssign)
	assert.NoError(err)
	defer rc.Close()

	assert.Equal(int64(4), rc.Len())

	ch, idx, err := rc.WaitEdge(DIOW, DIOR)
	assert.NoError(err)
	assert.Equal(DIOW, ch)
	assert.Equal(int64(2), idx)

	snap := rc.Snapshot()
	assert.Equal(uint8(0x42), busByte(&snap))
	assert.Equal(uint8(2), busAddr(&snap))
	assert.False(snap.Level(CS0), "CS0- asserted low")
	assert.True(snap.Level(CS1))
	assert.False(snap.Level(DMARQ), "unassigned channel reads false")

	_, _, err = rc.WaitEdge(DIOW, DIOR)
	assert.Equal(io.EOF, err)
}

func TestRawCaptureFullSession(t *testing.T) {
	assert := assert.New(t)

	idle := rawSample(0, true, true, true, true, 0)

	path := writeRawCapture(t, []uint16{
		idle,
		rawSample(0x01, false, true, false, true, 2), // sector_count = 1
		idle,
		rawSample(0x20, false, true, false, true, 7), // READ SECTORS
		idle,
	})

	rc, err := OpenRawCapture(path, 2, rawAssign)
	assert.NoError(err)
	defer rc.Close()

	sink := &sliceEmitter{}
	dec := NewDecoder(rc, sink, nil, DefaultOptions())
	assert.NoError(dec.Run())

	if assert.Len(sink.anns, 2) {
		assert.Equal("sector_count = 0x01", sink.anns[0].Text)
		assert.Equal("CMD 0x20 READ SECTORS  SC=1  LBA28=0x00000000  DEV=0x00(CHS)", sink.anns[1].Text)
	}
}

func TestOpenRawCaptureErrors(t *testing.T) {
	assert := assert.New(t)

	path := writeRawCapture(t, []uint16{0})

	_, err := OpenRawCapture(path, 0, rawAssign)
	assert.Error(err)

	_, err = OpenRawCapture(path, 16, rawAssign)
	assert.Error(err)

	// 15 channels cannot fit a single byte unit.
	_, err = OpenRawCapture(path, 1, rawAssign)
	assert.Error(err)

	_, err = OpenRawCapture(filepath.Join(t.TempDir(), "nonexistent"), 2, rawAssign)
	assert.Error(err)
}

func TestUnitBit(t *testing.T) {
	assert := assert.New(t)

	unit := []byte{0x01, 0x80}

	assert.True(unitBit(unit, 0))
	assert.False(unitBit(unit, 1))
	assert.False(unitBit(unit, 7))
	assert.True(unitBit(unit, 15))
}
