// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Shadow copy of the device task-file registers.

package atatrace

import "github.com/dswarbrick/atatrace/ata"

// TaskFile tracks the parameter registers as written by the host, including
// the high-order-byte bank used to assemble LBA48 values. While the HOB bit
// of the Device Control register is latched high, parameter writes land in
// the hob bank instead of the primary bank; the Device register is exempt.
type TaskFile struct {
	Features    uint8
	SectorCount uint8
	LBA0        uint8
	LBA1        uint8
	LBA2        uint8
	Device      uint8

	HOBFeatures    uint8
	HOBSectorCount uint8
	HOBLBA0        uint8
	HOBLBA1        uint8
	HOBLBA2        uint8

	HOB bool // Device Control bit 7, as last written
}

// DeviceControl is the decoded payload of a Device Control register write.
type DeviceControl struct {
	SRST bool // soft reset
	NIEN bool // interrupt disable
	HOB  bool // high order byte select
}

// AddrMode distinguishes LBA from legacy cylinder/head/sector addressing.
type AddrMode int

const (
	ModeCHS AddrMode = iota
	ModeLBA
)

func (m AddrMode) String() string {
	if m == ModeLBA {
		return "LBA"
	}

	return "CHS"
}

// Addressing is the parameter summary derived at command time.
type Addressing struct {
	Mode        AddrMode
	SectorCount uint32
	LBA         uint64
	Ext         bool // 48-bit values assembled from the hob bank
}

// Reset returns the task file to its power-on state.
func (tf *TaskFile) Reset() {
	*tf = TaskFile{}
}

// SetDeviceControl latches the HOB select from a Device Control write and
// returns the decoded control bits. The register banks are untouched.
func (tf *TaskFile) SetDeviceControl(val uint8) DeviceControl {
	tf.HOB = val&ata.DEVCTL_HOB != 0

	return DeviceControl{
		SRST: val&ata.DEVCTL_SRST != 0,
		NIEN: val&ata.DEVCTL_NIEN != 0,
		HOB:  tf.HOB,
	}
}

// Write stores a parameter register write, honouring HOB redirection, and
// returns the name of the field actually written (e.g. "lba0" or "hob_lba0").
// Registers outside the parameter set are ignored and yield "".
func (tf *TaskFile) Write(reg Register, val uint8) string {
	if tf.HOB && reg != RegDevice {
		switch reg {
		case RegFeatures:
			tf.HOBFeatures = val
		case RegSectorCount:
			tf.HOBSectorCount = val
		case RegLBA0:
			tf.HOBLBA0 = val
		case RegLBA1:
			tf.HOBLBA1 = val
		case RegLBA2:
			tf.HOBLBA2 = val
		default:
			return ""
		}

		return "hob_" + reg.String()
	}

	switch reg {
	case RegFeatures:
		tf.Features = val
	case RegSectorCount:
		tf.SectorCount = val
	case RegLBA0:
		tf.LBA0 = val
	case RegLBA1:
		tf.LBA1 = val
	case RegLBA2:
		tf.LBA2 = val
	case RegDevice:
		tf.Device = val
	default:
		return ""
	}

	return reg.String()
}

// LBA28 assembles the 28-bit LBA from the low 4 device bits and the primary
// LBA registers.
func (tf *TaskFile) LBA28() uint64 {
	return (uint64(tf.Device&0x0f)<<24 | uint64(tf.LBA2)<<16 |
		uint64(tf.LBA1)<<8 | uint64(tf.LBA0)) & 0x0fffffff
}

// LBA48 assembles the 48-bit LBA from the hob and primary LBA registers.
func (tf *TaskFile) LBA48() uint64 {
	hi := uint64(tf.HOBLBA2)<<16 | uint64(tf.HOBLBA1)<<8 | uint64(tf.HOBLBA0)
	lo := uint64(tf.LBA2)<<16 | uint64(tf.LBA1)<<8 | uint64(tf.LBA0)

	return (hi<<24 | lo) & 0xffffffffffff
}

// SectorCount48 assembles the 16-bit sector count of 48-bit commands.
func (tf *TaskFile) SectorCount48() uint32 {
	return (uint32(tf.HOBSectorCount)<<8 | uint32(tf.SectorCount)) & 0xffff
}

// Addressing derives the parameter summary for a command. Any nonzero hob
// LBA or sector count byte marks the command as 48-bit.
func (tf *TaskFile) Addressing() Addressing {
	a := Addressing{
		Mode:        ModeCHS,
		SectorCount: uint32(tf.SectorCount),
		LBA:         tf.LBA28(),
	}

	if tf.Device&ata.DEV_LBA != 0 {
		a.Mode = ModeLBA
	}

	if tf.HOBSectorCount != 0 || tf.HOBLBA0 != 0 || tf.HOBLBA1 != 0 || tf.HOBLBA2 != 0 {
		a.Ext = true
		a.SectorCount = tf.SectorCount48()
		a.LBA = tf.LBA48()
	}

	return a
}
