package checklib

import (
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// VerifyOverlayLayoutNeutrality navigates the session to targetURL, waits
// for at least instanceIndex+1 elements matching markerSelector, and
// checks the selected element's layout parent for the margin-based hide
// contract: a compensating margin-bottom and a display that is not
// "none". Both predicates are evaluated without short-circuiting; on
// success the result always has exactly two entries in that order.
func (s *Session) VerifyOverlayLayoutNeutrality(targetURL, markerSelector string, instanceIndex int) ([]AssertionResult, error) {
	if err := RunWithTimeout(s.ctx, s.options.WaitBudget,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return nil, &NavigationError{URL: targetURL, Err: err}
	}

	node, err := s.waitForInstance(markerSelector, instanceIndex)
	if err != nil {
		return nil, err
	}

	snap, err := s.parentStyleSnapshot(node, markerSelector, instanceIndex)
	if err != nil {
		return nil, err
	}

	return EvaluateLayoutNeutrality(snap), nil
}

// waitForInstance polls for selector matches until index+1 are present
// or WaitBudget has elapsed.
func (s *Session) waitForInstance(selector string, index int) (*cdp.Node, error) {
	deadline := time.Now().Add(s.options.WaitBudget)
	interval := s.options.PollInterval

	for {
		var nodes []*cdp.Node
		if err := chromedp.Run(s.ctx,
			chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
		); err != nil {
			return nil, err
		}
		if len(nodes) > index {
			return nodes[index], nil
		}
		if time.Now().After(deadline) {
			return nil, &LocatorTimeoutError{
				Selector: selector,
				Want:     index + 1,
				Got:      len(nodes),
				Budget:   s.options.WaitBudget,
			}
		}
		if err := chromedp.Run(s.ctx, chromedp.Sleep(interval)); err != nil {
			return nil, err
		}
		interval *= 2
		if interval > s.options.MaxPollInterval {
			interval = s.options.MaxPollInterval
		}
	}
}
