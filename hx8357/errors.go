// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hx8357

import "errors"

var (
	// ErrTransportUnavailable is returned when the SPI bus or the D/C pin
	// cannot be acquired.
	ErrTransportUnavailable = errors.New("hx8357: transport unavailable")
	// ErrTransmit is returned when a byte could not be sent to the panel. The
	// operation in progress is aborted and the panel state is undefined.
	ErrTransmit = errors.New("hx8357: transmit failed")
	// ErrNotStarted is returned by drawing calls on a Dev whose Begin did not
	// complete successfully.
	ErrNotStarted = errors.New("hx8357: not started")
)
