// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"fmt"
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// MonitorChannels `error`s & completion status.
//
// Every operation is expected to send exactly one value over either done or errChan. errPrefix
// should be in the singular form.
func MonitorChannels(ctx context.Context, operations int, done <-chan struct{}, errChan <-chan error, errPrefix string) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%s %w: %d", errPrefix, ErrInvalidGoroutineCount, operations)
		return
	}

	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			err = wrap(err, ctx.Err(), errPrefix)
			return
		case <-done:
		case e := <-errChan:
			err = wrap(err, e, errPrefix)
		}
	}

	return
}

func wrap(err, e error, errPrefix string) error {
	if err != nil {
		return fmt.Errorf("%v, %w", err, e)
	}

	return fmt.Errorf("%s %w", errPrefix, e)
}
