// Package fake provides a scripted in-memory dispatch handler for
// testing parameter containers without an instrument.
package fake

import (
	"fmt"

	"github.com/scope-control/scc/scope"
)

// Handler implements scope.Handler against an in-memory value store.
// Writes are recorded and stored; reads return the seeded or last
// written value. Every dispatch call is appended to Requests so tests
// can assert on the exact traffic.
type Handler struct {
	values map[string]string
	fail   map[scope.Param]error

	// Requests records every dispatch in call order.
	Requests []scope.Request
}

// New creates an empty fake handler.
func New() *Handler {
	return &Handler{
		values: make(map[string]string),
		fail:   make(map[scope.Param]error),
	}
}

// Seed installs the value a read of (p, channel) will return.
func (h *Handler) Seed(p scope.Param, channel int, value string) {
	h.values[key(p, channel)] = value
}

// FailWith makes every dispatch of p fail with err until cleared.
func (h *Handler) FailWith(p scope.Param, err error) {
	h.fail[p] = err
}

// ClearFailure removes an injected failure for p.
func (h *Handler) ClearFailure(p scope.Param) {
	delete(h.fail, p)
}

// ResetRequests clears the recorded request log.
func (h *Handler) ResetRequests() {
	h.Requests = nil
}

// LastRequest returns the most recent dispatch, or a zero Request if
// none occurred.
func (h *Handler) LastRequest() scope.Request {
	if len(h.Requests) == 0 {
		return scope.Request{}
	}
	return h.Requests[len(h.Requests)-1]
}

// Dispatch implements scope.Handler.
func (h *Handler) Dispatch(req scope.Request) (string, error) {
	h.Requests = append(h.Requests, req)

	if err := h.fail[req.Param]; err != nil {
		return "", err
	}

	k := key(req.Param, req.Channel)
	if req.Write {
		if req.Param == scope.TrigHoldoff {
			h.values[k] = fmt.Sprint(req.Arg)
		} else {
			h.values[k] = req.Value
		}
		return "", nil
	}

	v, ok := h.values[k]
	if !ok {
		return "", fmt.Errorf("fake: no value for %s channel %d", req.Param, req.Channel)
	}
	return v, nil
}

var _ scope.Handler = (*Handler)(nil)

func key(p scope.Param, channel int) string {
	return fmt.Sprintf("%s/%d", p, channel)
}
