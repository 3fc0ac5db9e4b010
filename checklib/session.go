package checklib

import (
	"context"
	"log"

	"github.com/chromedp/chromedp"
)

// Session owns one browser context for the lifetime of one scenario.
// Handles and snapshots produced through it are invalid after Close.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
	options *CheckOptions
}

// NewSession starts the browser using dir as the user data directory.
// The caller must Close the session on every exit path.
func NewSession(options *CheckOptions, dir string) (*Session, error) {
	opts, err := DefaultOpts(options, dir)
	if err != nil {
		return nil, err
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	taskCtx, taskCancel := chromedp.NewContext(
		allocCtx,
		chromedp.WithLogf(log.Printf))

	s := &Session{
		ctx:     taskCtx,
		cancels: []context.CancelFunc{taskCancel, allocCancel},
		options: options,
	}

	if err := chromedp.Run(taskCtx); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// Close is safe to call more than once.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
