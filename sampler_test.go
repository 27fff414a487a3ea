// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package atatrace

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceSamplerEdges(t *testing.T) {
	assert := assert.New(t)

	ts := NewTraceSampler(map[Channel][]bool{
		DIOW: {true, true, false, true, false, true},
		DIOR: {true, true, true, true, true, false},
		D0:   {false, false, true, false, false, false},
	})

	ch, idx, err := ts.WaitEdge(DIOW, DIOR)
	assert.NoError(err)
	assert.Equal(DIOW, ch)
	assert.Equal(int64(2), idx)
	assert.True(ts.Level(D0), "bus value sampled at the edge instant")

	ch, idx, err = ts.WaitEdge(DIOW, DIOR)
	assert.NoError(err)
	assert.Equal(DIOW, ch)
	assert.Equal(int64(4), idx)

	ch, idx, err = ts.WaitEdge(DIOW, DIOR)
	assert.NoError(err)
	assert.Equal(DIOR, ch)
	assert.Equal(int64(5), idx)

	_, _, err = ts.WaitEdge(DIOW, DIOR)
	assert.Equal(io.EOF, err)

	// Exhausted stream keeps reporting EOF.
	_, _, err = ts.WaitEdge(DIOW, DIOR)
	assert.Equal(io.EOF, err)
}

func TestTraceSamplerUnwired(t *testing.T) {
	assert := assert.New(t)

	ts := NewTraceSampler(map[Channel][]bool{
		DIOW: {true, false},
	})

	// Unwired channels read false and never produce edges.
	assert.False(ts.Level(DMARQ))
	assert.False(ts.Wired(INTRQ))

	_, _, err := ts.WaitEdge(DIOR)
	assert.Equal(io.EOF, err)
}

func TestTraceSamplerSnapshot(t *testing.T) {
	assert := assert.New(t)

	ts := NewTraceSampler(map[Channel][]bool{
		DIOW: {true, false},
		D0:   {false, true},
		D1:   {false, false},
	})

	_, idx, err := ts.WaitEdge(DIOW)
	assert.NoError(err)

	snap := ts.Snapshot()
	assert.Equal(idx, snap.Index)
	assert.True(snap.Level(D0))
	assert.False(snap.Level(D1))
	assert.False(snap.Level(DMARQ), "unwired channel defaults to false")
	assert.True(snap.Wired[D0])
	assert.False(snap.Wired[DMARQ])
}
