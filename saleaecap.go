// Copyright 2018 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Saleae digital capture ingestion.

package atatrace

import (
	"fmt"
	"os"

	"github.com/soypat/saleae"
)

// ReadSaleaeCapture reads per-channel Saleae digital export files and
// quantizes their transition lists into a TraceSampler at the given sample
// rate (samples per second). Channels absent from files are left unwired.
func ReadSaleaeCapture(files map[Channel]string, sampleRate float64) (*TraceSampler, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %g", sampleRate)
	}

	type chanFile struct {
		ch Channel
		df *saleae.DigitalFile
	}

	var (
		captures   []chanFile
		begin, end float64
	)

	for ch, path := range files {
		fp, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open capture %s: %v", path, err)
		}

		df, err := saleae.ReadDigitalFile(fp)
		fp.Close()

		if err != nil {
			return nil, CaptureError{File: path, Msg: err.Error()}
		}

		if len(captures) == 0 || df.Header.Begin < begin {
			begin = df.Header.Begin
		}
		if df.Header.End > end {
			end = df.Header.End
		}

		captures = append(captures, chanFile{ch: ch, df: df})
	}

	n := int((end - begin) * sampleRate)
	if n <= 0 {
		return nil, fmt.Errorf("capture window is empty")
	}

	samples := make(map[Channel][]bool, len(captures))

	for _, cf := range captures {
		samples[cf.ch] = quantizeDigital(cf.df, begin, sampleRate, n)
	}

	return NewTraceSampler(samples), nil
}

// quantizeDigital converts a transition-time list into discrete levels. The
// level starts at the file's initial state and toggles at every transition
// timestamp at or before the sample instant.
func quantizeDigital(df *saleae.DigitalFile, begin, sampleRate float64, n int) []bool {
	out := make([]bool, n)
	level := df.Header.InitialState != 0
	next := 0

	for i := 0; i < n; i++ {
		t := begin + float64(i)/sampleRate

		for next < len(df.Data) && df.Data[next] <= t {
			level = !level
			next++
		}

		out[i] = level
	}

	return out
}
