// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Built-in command table to YAML override template converter.
//
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/dswarbrick/atatrace/ata"
	"github.com/dswarbrick/atatrace/cmddb"
	"github.com/dswarbrick/atatrace/scsi"
)

const header = `# atatrace command mnemonic override database.
# Entries here take precedence over the built-in tables; delete what you do
# not want to override and add vendor-specific opcodes as needed.
`

func main() {
	outFilename := flag.String("out", "cmddb.yaml", "Output .yaml filename")
	flag.Parse()

	db := cmddb.CommandDb{
		ATACommands: ata.CommandNames,
		ATAPICDBs:   scsi.CDBNames,
	}

	destFile, err := os.Create(*outFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create output: %v\n", err)
		os.Exit(1)
	}

	defer destFile.Close()
	destFile.WriteString(header)

	enc := yaml.NewEncoder(destFile)

	if err := enc.Encode(db); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding yaml: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d ATA and %d CDB entries to %s\n",
		len(db.ATACommands), len(db.ATAPICDBs), *outFilename)
}
