package checklib

import (
	"fmt"
	"time"
)

// NavigationError reports that the target address could not be loaded.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigate %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// LocatorTimeoutError reports that fewer overlay elements than required
// matched the selector within the wait budget.
type LocatorTimeoutError struct {
	Selector string
	Want     int
	Got      int
	Budget   time.Duration
}

func (e *LocatorTimeoutError) Error() string {
	return fmt.Sprintf("locator %q: found %d of %d element(s) within %s", e.Selector, e.Got, e.Want, e.Budget)
}

// StaleElementError reports that a located element was detached from the
// document before its parent style could be read.
type StaleElementError struct {
	Selector string
	Index    int
}

func (e *StaleElementError) Error() string {
	return fmt.Sprintf("element %q[%d] detached before its parent style was read", e.Selector, e.Index)
}
