package checklib

import (
	"context"
	"errors"
	"strings"

	"github.com/chromedp/cdproto"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// ComputedStyleSnapshot maps CSS property names to their browser-resolved
// values for one element at one point in time. Snapshots are taken fresh
// per element and never reused.
type ComputedStyleSnapshot map[string]string

// parentStyleSnapshot reads the computed style of the node's immediate
// layout parent. A node detached between lookup and read yields a
// StaleElementError, never an empty snapshot.
func (s *Session) parentStyleSnapshot(node *cdp.Node, selector string, index int) (ComputedStyleSnapshot, error) {
	var raw map[string]string
	err := chromedp.Run(s.ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return callFunctionOnNode(ctx, node, parentStyleJS, &raw)
	}))
	if err != nil {
		if isNoSuchNodeError(err) {
			return nil, &StaleElementError{Selector: selector, Index: index}
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, &StaleElementError{Selector: selector, Index: index}
	}

	snap := make(ComputedStyleSnapshot, len(raw))
	for k, v := range raw {
		snap[k] = v
	}
	return snap, nil
}

func callFunctionOnNode(ctx context.Context, node *cdp.Node, function string, res interface{}, args ...interface{}) error {
	r, err := dom.ResolveNode().WithNodeID(node.NodeID).Do(ctx)
	if err != nil {
		return err
	}
	err = chromedp.CallFunctionOn(function, res,
		func(p *runtime.CallFunctionOnParams) *runtime.CallFunctionOnParams {
			return p.WithObjectID(r.ObjectID)
		},
		args...,
	).Do(ctx)

	if err != nil {
		return err
	}

	// release is best-effort; it fails once the page navigates or closes
	_ = runtime.ReleaseObject(r.ObjectID).Do(ctx)

	return nil
}

// isNoSuchNodeError matches the protocol error DOM.resolveNode returns
// when the backing node was removed from the document.
func isNoSuchNodeError(err error) bool {
	var e *cdproto.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == -32000 && strings.Contains(e.Message, "given id")
}
