// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package atatrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHOBRedirection(t *testing.T) {
	assert := assert.New(t)

	var tf TaskFile

	// HOB clear: writes land in the primary bank.
	assert.Equal("lba0", tf.Write(RegLBA0, 0x56))
	assert.Equal(uint8(0x56), tf.LBA0)
	assert.Equal(uint8(0), tf.HOBLBA0)

	// Latch HOB via a Device Control write.
	dc := tf.SetDeviceControl(0x80)
	assert.True(dc.HOB)
	assert.False(dc.SRST)
	assert.False(dc.NIEN)

	assert.Equal("hob_lba0", tf.Write(RegLBA0, 0xcc))
	assert.Equal(uint8(0xcc), tf.HOBLBA0)
	assert.Equal(uint8(0x56), tf.LBA0, "primary copy must survive a hob write")

	assert.Equal("hob_sector_count", tf.Write(RegSectorCount, 0x02))
	assert.Equal("hob_features", tf.Write(RegFeatures, 0x11))

	// Device is never redirected.
	assert.Equal("device", tf.Write(RegDevice, 0xe0))
	assert.Equal(uint8(0xe0), tf.Device)

	// HOB persists until the next Device Control write.
	assert.Equal("hob_lba1", tf.Write(RegLBA1, 0x01))

	dc = tf.SetDeviceControl(0x06)
	assert.False(dc.HOB)
	assert.True(dc.SRST)
	assert.True(dc.NIEN)

	assert.Equal("lba1", tf.Write(RegLBA1, 0x34))
	assert.Equal(uint8(0x34), tf.LBA1)
}

func TestAddressing28(t *testing.T) {
	assert := assert.New(t)

	tf := TaskFile{Device: 0x43, LBA2: 0x12, LBA1: 0x34, LBA0: 0x56, SectorCount: 8}

	a := tf.Addressing()
	assert.Equal(ModeLBA, a.Mode)
	assert.False(a.Ext)
	assert.Equal(uint64(0x03123456), a.LBA)
	assert.Equal(uint32(8), a.SectorCount)
}

func TestAddressing48(t *testing.T) {
	assert := assert.New(t)

	tf := TaskFile{
		Device: 0x43, LBA2: 0x12, LBA1: 0x34, LBA0: 0x56, SectorCount: 8,
		HOBLBA2: 0xaa, HOBLBA1: 0xbb, HOBLBA0: 0xcc, HOBSectorCount: 0x01,
	}

	a := tf.Addressing()
	assert.Equal(ModeLBA, a.Mode)
	assert.True(a.Ext)
	assert.Equal(uint64(0xaabbcc123456), a.LBA)
	assert.Equal(uint32(0x0108), a.SectorCount)
}

// Any single nonzero hob LBA / sector count byte switches to 48-bit values.
func TestAddressingExtTrigger(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		tf   TaskFile
		ext  bool
	}{
		{"none", TaskFile{}, false},
		{"hob_features only", TaskFile{HOBFeatures: 1}, false},
		{"hob_sector_count", TaskFile{HOBSectorCount: 1}, true},
		{"hob_lba0", TaskFile{HOBLBA0: 1}, true},
		{"hob_lba1", TaskFile{HOBLBA1: 1}, true},
		{"hob_lba2", TaskFile{HOBLBA2: 1}, true},
	}

	for _, tt := range tests {
		assert.Equal(tt.ext, tt.tf.Addressing().Ext, tt.name)
	}
}

func TestAddressingCHS(t *testing.T) {
	assert := assert.New(t)

	// Bit 6 of the device register clear selects CHS.
	tf := TaskFile{Device: 0x03, LBA2: 0x12, LBA1: 0x34, LBA0: 0x56}

	a := tf.Addressing()
	assert.Equal(ModeCHS, a.Mode)
	assert.Equal(uint64(0x03123456), a.LBA)
}

func TestTaskFileReset(t *testing.T) {
	assert := assert.New(t)

	tf := TaskFile{Device: 0xe0, HOBLBA2: 1, HOB: true}
	tf.Reset()
	assert.Equal(TaskFile{}, tf)
}
