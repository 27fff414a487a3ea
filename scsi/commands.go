// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI command definitions.

package scsi

const (
	// SCSI commands observed in ATAPI CDBs
	SCSI_TEST_UNIT_READY  = 0x00
	SCSI_REQUEST_SENSE    = 0x03
	SCSI_INQUIRY          = 0x12
	SCSI_MODE_SENSE_6     = 0x1a
	SCSI_READ_CAPACITY_10 = 0x25
	SCSI_READ_10          = 0x28
	SCSI_WRITE_10         = 0x2a

	// ATAPI PACKET transfers carry a fixed-length CDB
	ATAPI_CDB_LEN = 12
)

// SCSI CDB types
type CDB6 [6]byte
type CDB10 [10]byte
type CDB12 [12]byte
type CDB16 [16]byte

// CDB opcode mnemonics commonly seen from ATAPI devices (SPC / MMC subset).
var CDBNames = map[uint8]string{
	0x00: "TEST UNIT READY",
	0x03: "REQUEST SENSE",
	0x12: "INQUIRY",
	0x1a: "MODE SENSE(6)",
	0x1b: "START STOP UNIT",
	0x23: "READ FORMAT CAPACITIES",
	0x25: "READ CAPACITY(10)",
	0x28: "READ(10)",
	0x2a: "WRITE(10)",
	0x2b: "SEEK(10)",
	0x2f: "VERIFY(10)",
	0x35: "SYNCHRONIZE CACHE(10)",
	0x43: "READ TOC/PMA/ATIP",
	0x44: "READ HEADER",
	0x45: "PLAY AUDIO(10)",
	0x47: "PLAY AUDIO MSF",
	0x48: "PLAY AUDIO TRACK/INDEX",
	0x4a: "GET EVENT STATUS NOTIFICATION",
	0x5a: "MODE SENSE(10)",
	0xa1: "BLANK (MMC)",
	0xbb: "SET CD SPEED (MMC)",
}

// Sony vendor CDB opcodes used by the classic CDU-series ATAPI drives.
var SonyCDBNames = map[uint8]string{
	0xc1: "SONY: READ TOC",
	0xc2: "SONY: READ SUB-CHANNEL",
	0xc3: "SONY: READ HEADER",
	0xc4: "SONY: PLAYBACK STATUS",
	0xc5: "SONY: PAUSE",
	0xc6: "SONY: PLAY TRACK",
	0xc7: "SONY: PLAY MSF",
	0xc8: "SONY: PLAY AUDIO (LBA+len)",
	0xc9: "SONY: PLAYBACK CONTROL",
}
