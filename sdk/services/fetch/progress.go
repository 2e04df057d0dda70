// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package fetch

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

/* ------------ tiny UI helpers for single-line progress ------------ */

type globalProgress struct {
	out        io.Writer
	totalKnown bool
	totalBytes int64
	doneBytes  int64
	spinIdx    int
	lastTick   time.Time
}

var spinner = []rune{'|', '/', '-', '\\'}

func newProgress(out io.Writer, total int64) *globalProgress {
	if out == nil {
		out = os.Stderr
	}
	gp := &globalProgress{out: out}
	if total > 0 {
		gp.totalKnown = true
		gp.totalBytes = total
	}
	return gp
}

func (gp *globalProgress) add(delta int64) {
	gp.doneBytes += delta
}

func human(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func (gp *globalProgress) render(force bool) {
	// throttle to ~10 updates per second
	if !force && time.Since(gp.lastTick) < 100*time.Millisecond {
		return
	}
	gp.lastTick = time.Now()

	if gp.totalKnown && gp.totalBytes > 0 {
		if gp.doneBytes > gp.totalBytes {
			gp.doneBytes = gp.totalBytes
		}
		pct := float64(gp.doneBytes) / float64(gp.totalBytes) * 100
		fmt.Fprintf(gp.out, "\rProgress: %6.2f%% (%s / %s)   ",
			pct, human(gp.doneBytes), human(gp.totalBytes))
	} else {
		ch := spinner[gp.spinIdx%len(spinner)]
		gp.spinIdx++
		fmt.Fprintf(gp.out, "\rProgress: [%c] %s downloaded   ", ch, human(gp.doneBytes))
	}
}

func (gp *globalProgress) done() {
	gp.render(true)
	fmt.Fprintln(gp.out)
}

// progressWriter counts bytes flowing through a copy and feeds the
// single-line renderer.
type progressWriter struct {
	gp *globalProgress
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	pw.gp.add(int64(len(p)))
	pw.gp.render(false)
	return len(p), nil
}

// progressWriterAt wraps a WriterAt for the manager download path and
// tracks the high-water mark so ordered part writes report monotonic
// progress.
type progressWriterAt struct {
	w  io.WriterAt
	gp *globalProgress

	mu   sync.Mutex
	high int64
}

func (pw *progressWriterAt) WriteAt(p []byte, off int64) (int, error) {
	n, err := pw.w.WriteAt(p, off)
	if err != nil {
		return n, err
	}
	pw.mu.Lock()
	if end := off + int64(n); end > pw.high {
		pw.gp.add(end - pw.high)
		pw.high = end
	}
	pw.mu.Unlock()
	pw.gp.render(false)
	return n, nil
}
