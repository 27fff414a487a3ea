// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// PATA task-file trace decoder reference CLI.
//
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dswarbrick/atatrace"
	"github.com/dswarbrick/atatrace/cmddb"
)

// parseChannelMap resolves a comma-separated list of channel names into the
// per-bit assignment of a raw capture. "-" skips a bit.
func parseChannelMap(list string) ([]atatrace.Channel, error) {
	var assign []atatrace.Channel

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)

		if name == "" || name == "-" {
			assign = append(assign, atatrace.Channel(-1))
			continue
		}

		ch, ok := atatrace.ChannelByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown channel %q", name)
		}

		assign = append(assign, ch)
	}

	return assign, nil
}

// findSaleaeFiles locates per-channel digital export files named after the
// channels they carry, e.g. d0.bin, diow.bin.
func findSaleaeFiles(dir string) (map[atatrace.Channel]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	if err != nil {
		return nil, err
	}

	files := make(map[atatrace.Channel]string)

	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ".bin")

		if ch, ok := atatrace.ChannelByName(name); ok {
			files[ch] = m
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no channel .bin files found in %s", dir)
	}

	return files, nil
}

func main() {
	fmt.Println("PATA Task-File Trace Decoder")
	fmt.Printf("Built with %s on %s (%s)\n\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	var (
		rawFile    = flag.String("raw", "", "Raw packed capture file (one unit per sample)")
		unitSize   = flag.Int("unit", 4, "Raw capture unit size in bytes")
		chanMap    = flag.String("map", "", "Comma-separated channel per raw unit bit, e.g. d0,d1,...,diow,dior")
		saleaeDir  = flag.String("saleae", "", "Directory of Saleae digital exports named <channel>.bin")
		sampleRate = flag.Float64("rate", 50e6, "Sample rate for Saleae quantization (samples/sec)")
		dbFile     = flag.String("cmddb", "cmddb.yaml", "Optional YAML command mnemonic overrides")

		opts = atatrace.DefaultOptions()
	)

	flag.BoolVar(&opts.ParseCDB, "parse-cdb", opts.ParseCDB, "Parse ATAPI PACKET CDB bytes")
	flag.BoolVar(&opts.IgnoreData, "ignore-data", opts.IgnoreData, "Ignore Data register outside CDB window")
	flag.BoolVar(&opts.SquelchDMA, "squelch-dma", opts.SquelchDMA, "Hide cycles while DMARQ is asserted")
	flag.BoolVar(&opts.EmitReads, "emit-reads", opts.EmitReads, "Annotate ordinary register reads")
	flag.Parse()

	db, err := cmddb.OpenCommandDb(*dbFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var sampler atatrace.Sampler

	switch {
	case *rawFile != "":
		assign, err := parseChannelMap(*chanMap)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		rc, err := atatrace.OpenRawCapture(*rawFile, *unitSize, assign)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		defer rc.Close()
		fmt.Printf("Mapped %d samples from %s\n\n", rc.Len(), *rawFile)
		sampler = rc
	case *saleaeDir != "":
		files, err := findSaleaeFiles(*saleaeDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		ts, err := atatrace.ReadSaleaeCapture(files, *sampleRate)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("Loaded %d channels from %s\n\n", len(files), *saleaeDir)
		sampler = ts
	default:
		flag.PrintDefaults()
		os.Exit(1)
	}

	dec := atatrace.NewDecoder(sampler, atatrace.NewWriterEmitter(os.Stdout), &db, opts)

	if err := dec.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
