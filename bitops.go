// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Miscellaneous bit operations.

package atatrace

// busByte assembles the low data byte from D0..D7 of a sample.
func busByte(s *LogicSample) uint8 {
	var v uint8

	for i := 0; i < 8; i++ {
		if s.Level(D0 + Channel(i)) {
			v |= 1 << i
		}
	}

	return v
}

// busAddr assembles the 3-bit register address from DA0..DA2.
func busAddr(s *LogicSample) uint8 {
	var a uint8

	for i := 0; i < 3; i++ {
		if s.Level(DA0 + Channel(i)) {
			a |= 1 << i
		}
	}

	return a
}

// unitBit extracts bit i of a little-endian sample unit in a raw capture.
func unitBit(unit []byte, i int) bool {
	return unit[i>>3]&(1<<(i&7)) != 0
}
