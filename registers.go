// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Task-file register decode.

package atatrace

// Register identifies the ATA register addressed by a bus cycle.
type Register int

const (
	RegNone Register = iota
	RegData
	RegFeatures
	RegError
	RegSectorCount
	RegLBA0
	RegLBA1
	RegLBA2
	RegDevice
	RegCommand
	RegStatus
	RegDevCtl
	RegAltStatus
	RegDriveAddr
)

var registerNames = [...]string{
	RegNone:        "none",
	RegData:        "data",
	RegFeatures:    "features",
	RegError:       "error",
	RegSectorCount: "sector_count",
	RegLBA0:        "lba0",
	RegLBA1:        "lba1",
	RegLBA2:        "lba2",
	RegDevice:      "device",
	RegCommand:     "command",
	RegStatus:      "status",
	RegDevCtl:      "devctl",
	RegAltStatus:   "altstatus",
	RegDriveAddr:   "drive_addr",
}

func (r Register) String() string {
	if r < 0 || int(r) >= len(registerNames) {
		return "invalid"
	}

	return registerNames[r]
}

// ClassifyRegister resolves which register a bus cycle addresses, given the
// decoded chip selects (true = asserted), the 3-bit DA address and the cycle
// direction. Both selects asserted, or neither, is not a register cycle and
// yields RegNone. Pure function; per ATA-2 the register map is:
//
//	CS0- block: 0 data, 1 features/error, 2 sector count, 3-5 LBA low/mid/high,
//	            6 device, 7 command/status
//	CS1- block: 6 device control/alt status, 7 drive address (read)
func ClassifyRegister(cs0, cs1 bool, addr uint8, isWrite bool) Register {
	switch {
	case cs0 && !cs1:
		switch addr {
		case 0:
			return RegData
		case 1:
			if isWrite {
				return RegFeatures
			}
			return RegError
		case 2:
			return RegSectorCount
		case 3:
			return RegLBA0
		case 4:
			return RegLBA1
		case 5:
			return RegLBA2
		case 6:
			return RegDevice
		case 7:
			if isWrite {
				return RegCommand
			}
			return RegStatus
		}
	case cs1 && !cs0:
		switch addr {
		case 6:
			if isWrite {
				return RegDevCtl
			}
			return RegAltStatus
		case 7:
			// Nominally read-only; classified regardless of direction.
			return RegDriveAddr
		}
	}

	return RegNone
}
