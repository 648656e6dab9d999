//go:build ignore

// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gen writes the golden matrices in testdata.
// Run "go run gen.go" after a deliberate layout change.
package main

import (
	"bufio"
	"log"
	"os"
	"path/filepath"

	"github.com/unixdj/qrsvg/coding"
)

var golden = map[string]string{
	"A.golden": "A",
}

func write(name, text string) error {
	data, err := coding.EncodeText(text)
	if err != nil {
		return err
	}
	m := coding.Build(data, coding.Check(data))
	f, err := os.Create(filepath.Join("testdata", name))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for r := 0; r < m.Size(); r++ {
		for c := 0; c < m.Size(); c++ {
			p := byte('.')
			if m.At(r, c) == coding.Dark {
				p = '#'
			}
			w.WriteByte(p)
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	log.SetFlags(0)
	for name, text := range golden {
		if err := write(name, text); err != nil {
			log.Fatalln(err)
		}
	}
}
