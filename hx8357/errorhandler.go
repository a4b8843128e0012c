// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// errorHandler latches the first transport error. Once set, every following
// send is a no-op.
type errorHandler struct {
	t   Transport
	err error
}

func (eh *errorHandler) command(c Command) {
	if eh.err != nil {
		return
	}
	if eh.err = eh.t.SetCommandMode(); eh.err != nil {
		return
	}
	eh.err = eh.t.WriteByte(byte(c))
}

func (eh *errorHandler) data(b ...byte) {
	if eh.err != nil {
		return
	}
	if eh.err = eh.t.SetDataMode(); eh.err != nil {
		return
	}
	for _, v := range b {
		if eh.err = eh.t.WriteByte(v); eh.err != nil {
			return
		}
	}
}

// color sends n copies of the big endian color word c.
func (eh *errorHandler) color(c uint16, n int) {
	if eh.err != nil {
		return
	}
	if eh.err = eh.t.SetDataMode(); eh.err != nil {
		return
	}
	hi, lo := byte(c>>8), byte(c)
	for ; n > 0; n-- {
		if eh.err = eh.t.WriteByte(hi); eh.err != nil {
			return
		}
		if eh.err = eh.t.WriteByte(lo); eh.err != nil {
			return
		}
	}
}

// sleep flushes pending bytes then blocks for d.
func (eh *errorHandler) sleep(clock clockwork.Clock, d time.Duration) {
	eh.flush()
	if eh.err != nil {
		return
	}
	clock.Sleep(d)
}

func (eh *errorHandler) flush() {
	if eh.err != nil {
		return
	}
	eh.err = eh.t.Flush()
}

// result flushes and returns the latched error, if any, as ErrTransmit.
func (eh *errorHandler) result() error {
	eh.flush()
	if eh.err != nil {
		return fmt.Errorf("%w: %w", ErrTransmit, eh.err)
	}
	return nil
}
