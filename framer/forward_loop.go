// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framer

import (
	"context"

	"golang.org/x/time/rate"
)

// RunForwarder repeatedly calls f.ForwardOnce and returns the first error
// it reports other than ErrWouldBlock/ErrMore (including io.EOF, a dst
// write error, or ErrTooLong). On ErrWouldBlock/ErrMore it waits for
// limiter before retrying, pacing the cooperative-retry loop instead of
// spinning or sleeping a fixed delay, and returns the wait's error if it
// fails. ctx is consulted only inside that wait.
func RunForwarder(ctx context.Context, f *Forwarder, limiter *rate.Limiter) error {
	for {
		_, err := f.ForwardOnce()
		switch err {
		case nil:
			continue
		case ErrWouldBlock, ErrMore:
			if werr := limiter.Wait(ctx); werr != nil {
				return werr
			}
			continue
		default:
			return err
		}
	}
}
