// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package cmddb resolves ATA command and ATAPI CDB opcodes to mnemonic names.
//
// Resolution is two-tier: a user-supplied override map loaded from YAML is
// consulted first, then the built-in tables. Unknown opcodes fall back to a
// generic label rather than an error, since a bus trace may legitimately
// carry vendor commands the tables do not know.
package cmddb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/dswarbrick/atatrace/ata"
	"github.com/dswarbrick/atatrace/scsi"
)

// CommandDb holds user override mnemonics. The zero value resolves purely
// from the built-in tables.
type CommandDb struct {
	ATACommands map[uint8]string `yaml:"ata_commands"`
	ATAPICDBs   map[uint8]string `yaml:"atapi_cdbs"`
}

// LookupCommand resolves an ATA command opcode to a mnemonic name.
func (db *CommandDb) LookupCommand(op uint8) string {
	if name, ok := db.ATACommands[op]; ok {
		return name
	}

	if name, ok := ata.CommandNames[op]; ok {
		return name
	}

	return "UNKNOWN"
}

// LookupCDB resolves the first byte of an ATAPI CDB to a mnemonic name.
// Vendor tables (currently Sony) sit between the user overrides and the
// standard SPC/MMC table.
func (db *CommandDb) LookupCDB(op uint8) string {
	if name, ok := db.ATAPICDBs[op]; ok {
		return name
	}

	if name, ok := scsi.SonyCDBNames[op]; ok {
		return name
	}

	if name, ok := scsi.CDBNames[op]; ok {
		return name
	}

	return "SCSI CDB"
}

// OpenCommandDb opens a YAML-formatted override database, unmarshalls it, and
// returns a CommandDb. A missing file is not an error; it yields an empty
// override set.
func OpenCommandDb(dbfile string) (CommandDb, error) {
	var db CommandDb

	f, err := os.Open(dbfile)
	if err != nil {
		return db, nil
	}

	defer f.Close()
	dec := yaml.NewDecoder(f)

	if err := dec.Decode(&db); err != nil {
		return db, fmt.Errorf("cannot parse command db %s: %v", dbfile, err)
	}

	return db, nil
}
