// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decoded event output.

package atatrace

import (
	"fmt"
	"io"
)

// Category classifies an annotation for downstream rendering.
type Category int

const (
	CatRegWrite Category = iota
	CatRegRead
	CatCommand
	CatCDB
	CatStatus
	CatDevCtl
	CatInterrupt
	CatWarning
)

var categoryTags = [...]string{
	CatRegWrite:  "regw",
	CatRegRead:   "regr",
	CatCommand:   "cmd",
	CatCDB:       "cdb",
	CatStatus:    "status",
	CatDevCtl:    "devctl",
	CatInterrupt: "intrq",
	CatWarning:   "warn",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryTags) {
		return "invalid"
	}

	return categoryTags[c]
}

// Row returns the display row a category belongs to: commands, register
// traffic, or side-band signals. Renderers may draw rows independently.
func (c Category) Row() string {
	switch c {
	case CatCommand, CatCDB:
		return "cmds"
	case CatInterrupt, CatWarning:
		return "ints"
	default:
		return "regs"
	}
}

// Annotation is one decoded bus event, spanning the sample indices of the
// cycle it was decoded from.
type Annotation struct {
	Start int64
	End   int64
	Cat   Category
	Text  string
}

// Emitter receives annotations in strict bus-cycle order.
type Emitter interface {
	Put(Annotation)
}

// WriterEmitter prints annotations one per line, tab-separated.
type WriterEmitter struct {
	w io.Writer
}

func NewWriterEmitter(w io.Writer) *WriterEmitter {
	return &WriterEmitter{w: w}
}

func (e *WriterEmitter) Put(a Annotation) {
	fmt.Fprintf(e.w, "%d-%d\t%s\t%s\n", a.Start, a.End, a.Cat, a.Text)
}
