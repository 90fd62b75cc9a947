package utils

import (
	"fmt"
	"time"
)

// WaitConfig holds the parameters for the poll-until-condition strategy used
// to let asynchronously loaded page content settle before it is read.
type WaitConfig struct {
	Timeout  time.Duration
	Interval time.Duration
	Logger   *Logger
}

// Until polls cond until it reports true or the timeout elapses. A cond error
// counts as "not ready yet" and polling continues; the last error seen is
// wrapped into the timeout error so the log shows why the page never settled.
func (w *WaitConfig) Until(conditionName string, cond func() (bool, error)) error {
	deadline := time.Now().Add(w.Timeout)
	var lastErr error

	for {
		ok, err := cond()
		if err == nil && ok {
			return nil
		}
		if err != nil {
			lastErr = err
		}

		if time.Now().After(deadline) {
			if w.Logger != nil {
				w.Logger.Debug("[wait] %s still not ready after %v — giving up", conditionName, w.Timeout)
			}
			if lastErr != nil {
				return fmt.Errorf("%s not ready within %v: %w", conditionName, w.Timeout, lastErr)
			}
			return fmt.Errorf("%s not ready within %v", conditionName, w.Timeout)
		}

		time.Sleep(w.Interval)
	}
}
