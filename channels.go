// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// PATA bus signal definitions.

package atatrace

import "strings"

// Channel identifies one logical signal of the PATA bus. The decoder samples
// channels by id only; captures bind ids to physical probe positions once at
// setup so the decode loop never does name lookups.
type Channel int

const (
	// Data bus, low byte first. Only D0-D7 are needed for task-file decoding.
	D0 Channel = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	D10
	D11
	D12
	D13
	D14
	D15

	// Control / address
	DIOW // I/O write strobe (active low)
	DIOR // I/O read strobe (active low)
	CS0  // Chip select 0 (active low)
	CS1  // Chip select 1 (active low)
	DA0  // Address bit 0
	DA1  // Address bit 1
	DA2  // Address bit 2

	// Optional side-band signals
	INTRQ  // Interrupt request
	RESET  // Reset (active low)
	IORDY  // I/O ready
	DMARQ  // DMA request
	DMACK  // DMA acknowledge (active low)
	DASP   // Drive active / slave present
	PDIAG  // Passed diagnostics
	IOCS16 // 16-bit I/O indicator

	NumChannels int = iota
)

var channelNames = [NumChannels]string{
	"d0", "d1", "d2", "d3", "d4", "d5", "d6", "d7",
	"d8", "d9", "d10", "d11", "d12", "d13", "d14", "d15",
	"diow", "dior", "cs0", "cs1", "da0", "da1", "da2",
	"intrq", "reset", "iordy", "dmarq", "dmack", "dasp", "pdiag", "iocs16",
}

func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return "invalid"
	}

	return channelNames[c]
}

// MandatoryChannels is the minimum signal set for task-file decoding: the low
// data byte, both strobes, both chip selects and the three address bits.
var MandatoryChannels = []Channel{
	D0, D1, D2, D3, D4, D5, D6, D7,
	DIOW, DIOR, CS0, CS1, DA0, DA1, DA2,
}

// ChannelByName maps a channel name (case-insensitive) back to its id.
func ChannelByName(name string) (Channel, bool) {
	name = strings.ToLower(name)

	for i, n := range channelNames {
		if n == name {
			return Channel(i), true
		}
	}

	return 0, false
}
