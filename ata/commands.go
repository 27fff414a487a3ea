// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// ATA command definitions.

package ata

const (
	// ATA commands
	ATA_PACKET          = 0xa0
	ATA_IDENTIFY_PACKET = 0xa1
	ATA_SMART           = 0xb0
	ATA_IDENTIFY_DEVICE = 0xec

	// ATA feature register values for SMART
	SMART_READ_DATA     = 0xd0
	SMART_READ_LOG      = 0xd5
	SMART_RETURN_STATUS = 0xda

	// Device register bits
	DEV_LBA = 0x40

	// Device Control register bits
	DEVCTL_NIEN = 0x02
	DEVCTL_SRST = 0x04
	DEVCTL_HOB  = 0x80
)

// Command opcode mnemonics, assembled from the command code tables of
// T13/1699-D (ATA8-ACS) and T13/BSR INCITS 529 (ACS-4), plus the classic
// CHS-era commands retired by ATA/ATAPI-4 but still seen on old buses.
var CommandNames = map[uint8]string{
	0x00: "NOP",
	0x06: "DATA SET MANAGEMENT",
	0x07: "DATA SET MANAGEMENT XL",
	0x08: "DEVICE RESET",
	0x0b: "REQUEST SENSE DATA EXT",

	0x10: "RECALIBRATE",
	0x20: "READ SECTORS",
	0x21: "READ SECTORS (no retry)",
	0x22: "READ LONG",
	0x23: "READ LONG (no retry)",
	0x24: "READ SECTORS EXT",
	0x25: "READ DMA EXT",
	0x26: "READ DMA QUEUED EXT",
	0x27: "READ NATIVE MAX ADDRESS EXT",
	0x29: "READ MULTIPLE EXT",
	0x2a: "READ STREAM DMA EXT",
	0x2b: "READ STREAM EXT",
	0x2f: "READ LOG EXT",

	0x30: "WRITE SECTORS",
	0x31: "WRITE SECTORS (no retry)",
	0x32: "WRITE LONG",
	0x33: "WRITE LONG (no retry)",
	0x34: "WRITE SECTORS EXT",
	0x35: "WRITE DMA EXT",
	0x36: "WRITE DMA QUEUED EXT",
	0x39: "WRITE MULTIPLE EXT",
	0x3a: "WRITE STREAM DMA EXT",
	0x3b: "WRITE STREAM EXT",
	0x3c: "WRITE VERIFY",
	0x3d: "WRITE DMA FUA EXT",
	0x3e: "WRITE DMA QUEUED FUA EXT",
	0x3f: "WRITE LOG EXT",

	0x40: "READ VERIFY SECTORS",
	0x41: "READ VERIFY SECTORS (no retry)",
	0x42: "READ VERIFY SECTORS EXT",
	0x44: "ZERO EXT",
	0x45: "WRITE UNCORRECTABLE EXT",
	0x47: "READ LOG DMA EXT",
	0x4a: "ZAC MANAGEMENT IN",

	0x50: "FORMAT TRACK",
	0x51: "CONFIGURE STREAM",

	0x5b: "TRUSTED NON-DATA",
	0x5c: "TRUSTED RECEIVE",
	0x5d: "TRUSTED RECEIVE DMA",
	0x5e: "TRUSTED SEND",
	0x5f: "TRUSTED SEND DMA",

	0x60: "READ FPDMA QUEUED",
	0x61: "WRITE FPDMA QUEUED",
	0x63: "NCQ NON-DATA",
	0x64: "SEND FPDMA QUEUED",
	0x65: "RECEIVE FPDMA QUEUED",

	0x70: "SEEK",

	0x77: "SET DATE & TIME EXT",
	0x78: "ACCESSIBLE MAX ADDRESS CONFIGURATION",
	0x7c: "REMOVE ELEMENT AND TRUNCATE",
	0x7d: "RESTORE ELEMENTS AND REBUILD",

	0x87: "CFA TRANSLATE SECTOR",

	0x90: "EXECUTE DEVICE DIAGNOSTIC",
	0x91: "INITIALIZE DEVICE PARAMETERS",
	0x92: "DOWNLOAD MICROCODE",
	0x93: "DOWNLOAD MICROCODE DMA",

	0x9f: "ZAC MANAGEMENT OUT",

	0xa0: "PACKET",
	0xa1: "IDENTIFY PACKET DEVICE",
	0xa2: "SERVICE",

	0xb0: "SMART",
	0xb1: "DEVICE CONFIGURATION OVERLAY",
	0xb2: "SET SECTOR CONFIGURATION EXT",
	0xb4: "SANITIZE DEVICE",
	0xb6: "NV CACHE",

	0xc0: "CFA ERASE SECTORS",
	0xc4: "READ MULTIPLE",
	0xc5: "WRITE MULTIPLE",
	0xc6: "SET MULTIPLE MODE",
	0xc7: "READ DMA QUEUED",
	0xc8: "READ DMA",
	0xc9: "READ DMA (no retry)",
	0xca: "WRITE DMA",
	0xcb: "WRITE DMA (no retry)",
	0xcc: "WRITE DMA QUEUED",
	0xcd: "CFA WRITE MULTIPLE WITHOUT ERASE",
	0xce: "WRITE MULTIPLE FUA EXT",

	0xd1: "CHECK MEDIA CARD TYPE",
	0xda: "GET MEDIA STATUS",
	0xdb: "ACKNOWLEDGE MEDIA CHANGE",
	0xde: "MEDIA LOCK",
	0xdf: "MEDIA UNLOCK",

	0xe0: "STANDBY IMMEDIATE",
	0xe1: "IDLE IMMEDIATE",
	0xe2: "STANDBY",
	0xe3: "IDLE",
	0xe4: "READ BUFFER",
	0xe5: "CHECK POWER MODE",
	0xe6: "SLEEP",
	0xe7: "FLUSH CACHE",
	0xe8: "WRITE BUFFER",
	0xe9: "READ BUFFER DMA",
	0xea: "FLUSH CACHE EXT",
	0xeb: "WRITE BUFFER DMA",
	0xec: "IDENTIFY DEVICE",
	0xed: "MEDIA EJECT",
	0xee: "IDENTIFY DEVICE DMA",
	0xef: "SET FEATURES",

	0xf1: "SECURITY SET PASSWORD",
	0xf2: "SECURITY UNLOCK",
	0xf3: "SECURITY ERASE PREPARE",
	0xf4: "SECURITY ERASE UNIT",
	0xf5: "SECURITY FREEZE LOCK",
	0xf6: "SECURITY DISABLE PASSWORD",

	0xf8: "READ NATIVE MAX ADDRESS",
	0xf9: "SET MAX ADDRESS",
}

// Vendor-specific opcode ranges reserved by the ACS command code tables.
var vendorRanges = [...][2]uint8{
	{0x80, 0x8f},
	{0x9a, 0x9e},
	{0xc1, 0xc3},
	{0xf0, 0xf0},
	{0xfa, 0xff},
}

// IsVendorOpcode reports whether op falls within a vendor-specific command range.
func IsVendorOpcode(op uint8) bool {
	for _, r := range vendorRanges {
		if op >= r[0] && op <= r[1] {
			return true
		}
	}

	return false
}
