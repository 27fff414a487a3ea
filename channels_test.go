// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package atatrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelNames(t *testing.T) {
	assert := assert.New(t)

	// Every channel id round-trips through its name.
	for ch := Channel(0); int(ch) < NumChannels; ch++ {
		got, ok := ChannelByName(ch.String())
		assert.True(ok, ch.String())
		assert.Equal(ch, got)
	}

	assert.Equal("invalid", Channel(-1).String())
	assert.Equal("invalid", Channel(NumChannels).String())

	_, ok := ChannelByName("bogus")
	assert.False(ok)

	// Case-insensitive lookup for CLI convenience.
	ch, ok := ChannelByName("DIOW")
	assert.True(ok)
	assert.Equal(DIOW, ch)
}

func TestMandatoryChannels(t *testing.T) {
	assert := assert.New(t)

	assert.Len(MandatoryChannels, 15)
	assert.Contains(MandatoryChannels, D7)
	assert.Contains(MandatoryChannels, DA2)
	assert.NotContains(MandatoryChannels, D8)
	assert.NotContains(MandatoryChannels, INTRQ)
}
