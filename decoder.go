// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package atatrace decodes PATA/IDE task-file register traffic from sampled
// logic traces: command writes, parameter writes (including the LBA48 HOB
// shadow bank), status reads, device control writes, and ATAPI PACKET CDBs.
//
package atatrace

import (
	"fmt"
	"io"
	"strings"

	"github.com/dswarbrick/atatrace/ata"
	"github.com/dswarbrick/atatrace/cmddb"
	"github.com/dswarbrick/atatrace/scsi"
)

// Options controls decoder behaviour.
type Options struct {
	ParseCDB   bool // decode ATAPI PACKET CDB bytes into mnemonics
	IgnoreData bool // suppress Data register traffic outside a CDB window
	SquelchDMA bool // drop cycles observed while DMARQ is asserted
	EmitReads  bool // annotate ordinary register reads beyond Status/AltStatus
}

// DefaultOptions returns the options a plain decode session starts with.
func DefaultOptions() Options {
	return Options{ParseCDB: true, IgnoreData: true, SquelchDMA: true}
}

// cdbCapture tracks an in-progress ATAPI CDB transfer on the Data register.
type cdbCapture struct {
	active   bool
	expected int
	buf      []byte
}

// Decoder is one decode session over a sample stream. It owns the task-file
// shadow and CDB capture state; a single Run loop drives all mutation, so no
// locking is needed.
type Decoder struct {
	opts    Options
	db      *cmddb.CommandDb
	sampler Sampler
	emitter Emitter

	tf  TaskFile
	cdb cdbCapture
}

// NewDecoder returns a decoder reading cycles from s and emitting decoded
// events to e. db may be nil for built-in mnemonics only.
func NewDecoder(s Sampler, e Emitter, db *cmddb.CommandDb, opts Options) *Decoder {
	if db == nil {
		db = &cmddb.CommandDb{}
	}

	return &Decoder{opts: opts, db: db, sampler: s, emitter: e}
}

// Reset returns the session state to its initial value. The sample stream
// position is not rewound.
func (d *Decoder) Reset() {
	d.tf.Reset()
	d.cdb = cdbCapture{}
}

// TaskFile exposes the current shadow register state, mainly for tests and
// inspection tooling.
func (d *Decoder) TaskFile() TaskFile {
	return d.tf
}

// Run decodes bus cycles until the sample stream ends. Each iteration waits
// for a read or write strobe, classifies the cycle and fully processes it
// before waiting again, so annotations are emitted in bus-cycle order.
func (d *Decoder) Run() error {
	for {
		strobe, ss, err := d.sampler.WaitEdge(DIOW, DIOR)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		snap := d.sampler.Snapshot()
		isWrite := strobe == DIOW

		// Hide chatter during DMA data phases.
		if d.opts.SquelchDMA && snap.Level(DMARQ) {
			continue
		}

		// Chip selects are active low.
		cs0 := !snap.Level(CS0)
		cs1 := !snap.Level(CS1)

		reg := ClassifyRegister(cs0, cs1, busAddr(&snap), isWrite)
		if reg == RegNone {
			continue
		}

		d.decodeCycle(ss, ss, reg, isWrite, busByte(&snap), &snap)
	}
}

func (d *Decoder) put(ss, es int64, cat Category, text string) {
	d.emitter.Put(Annotation{Start: ss, End: es, Cat: cat, Text: text})
}

// decodeCycle dispatches one classified register cycle. All state mutation
// and emission for the cycle happens here before the next edge wait.
func (d *Decoder) decodeCycle(ss, es int64, reg Register, isWrite bool, val uint8, snap *LogicSample) {
	// Device Control write latches HOB and carries reset / interrupt bits.
	if reg == RegDevCtl && isWrite {
		dc := d.tf.SetDeviceControl(val)
		d.put(ss, es, CatDevCtl, fmt.Sprintf("DEVCTL write: SRST=%d nIEN=%d HOB=%d",
			b2i(dc.SRST), b2i(dc.NIEN), b2i(dc.HOB)))
		return
	}

	// Status / AltStatus reads always annotate; other reads only on request.
	if !isWrite && (reg == RegStatus || reg == RegAltStatus || d.opts.EmitReads) {
		d.put(ss, es, CatStatus, fmt.Sprintf("%s read: 0x%02X", strings.ToUpper(reg.String()), val))

		// A Status read may clear INTRQ; annotate if we can see it happen.
		if snap.Wired[INTRQ] && !snap.Levels[INTRQ] {
			d.put(ss, es, CatInterrupt, "INTRQ cleared")
		}
		return
	}

	// Task-file parameter writes update the shadow, honouring HOB.
	if isWrite {
		switch reg {
		case RegFeatures, RegSectorCount, RegLBA0, RegLBA1, RegLBA2, RegDevice:
			field := d.tf.Write(reg, val)
			d.put(ss, es, CatRegWrite, fmt.Sprintf("%s = 0x%02X", field, val))
			return
		}
	}

	if reg == RegData {
		d.decodeData(ss, es, isWrite, val)
		return
	}

	if reg == RegCommand && isWrite {
		d.decodeCommand(ss, es, val)
		return
	}

	if d.opts.EmitReads && !isWrite {
		d.put(ss, es, CatRegRead, fmt.Sprintf("%s read: 0x%02X", reg, val))
	}
}

// decodeData handles Data register cycles: CDB collection while a capture is
// open, otherwise raw data traffic subject to the IgnoreData option.
func (d *Decoder) decodeData(ss, es int64, isWrite bool, val uint8) {
	if d.cdb.active && isWrite {
		if !d.opts.ParseCDB {
			d.put(ss, es, CatCDB, "ATAPI CDB byte")
			return
		}

		d.cdb.buf = append(d.cdb.buf, val)

		if len(d.cdb.buf) == 1 {
			d.put(ss, es, CatCDB, fmt.Sprintf("ATAPI CDB[0]=0x%02X %s", val, d.db.LookupCDB(val)))
		}

		if len(d.cdb.buf) >= d.cdb.expected {
			d.cdb.active = false
			d.put(ss, es, CatCDB, fmt.Sprintf("CDB complete (%d bytes)", len(d.cdb.buf)))
		}
		return
	}

	if d.opts.IgnoreData {
		return
	}

	if isWrite {
		d.put(ss, es, CatRegWrite, fmt.Sprintf("DATA WRITE: 0x%02X", val))
	} else {
		d.put(ss, es, CatRegRead, fmt.Sprintf("DATA READ: 0x%02X", val))
	}
}

// decodeCommand emits the composite command annotation and opens the CDB
// window on an ATAPI PACKET.
func (d *Decoder) decodeCommand(ss, es int64, op uint8) {
	name := d.db.LookupCommand(op)

	if op == ata.ATA_PACKET {
		// A PACKET mid-capture should not happen on a well-formed bus;
		// restart the capture and discard whatever was collected.
		if d.cdb.active && len(d.cdb.buf) > 0 {
			d.put(ss, es, CatWarning,
				fmt.Sprintf("PACKET during CDB transfer; %d byte(s) discarded", len(d.cdb.buf)))
		}

		d.cdb = cdbCapture{active: true, expected: scsi.ATAPI_CDB_LEN}
	}

	a := d.tf.Addressing()

	lbaStr := fmt.Sprintf("LBA28=0x%08X", a.LBA)
	if a.Ext {
		lbaStr = fmt.Sprintf("LBA48=0x%012X", a.LBA)
	}

	text := fmt.Sprintf("CMD 0x%02X %s  SC=%d  %s  DEV=0x%02X(%s)",
		op, name, a.SectorCount, lbaStr, d.tf.Device, a.Mode)

	if name == "UNKNOWN" && ata.IsVendorOpcode(op) {
		text += "  (vendor range)"
	}

	d.put(ss, es, CatCommand, text)
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}
