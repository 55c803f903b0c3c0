// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serverutil

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/btcsuite/btcd/btcjson"
)

var (
	// ErrCommandRegistered is returned when registering a method name
	// that is already taken.
	ErrCommandRegistered = errors.New("rpc command already registered")
)

// CommandHandler executes one RPC method. Params are the raw JSON
// parameters; the returned value is marshalled by the transport layer.
type CommandHandler func(ctx *NodeContext, params []json.RawMessage) (
	interface{}, error)

// HandlerToken keeps an RPC command registered for as long as it is
// held. Done unregisters the command exactly once.
type HandlerToken struct {
	once   sync.Once
	cancel func()
}

// Done unregisters the command this token was returned for.
func (t *HandlerToken) Done() {
	t.once.Do(t.cancel)
}

// Registry maps RPC method names to their handlers. Commands are
// registered scoped: dropping the returned token removes them, which is
// how wallet clients tear down their command tables on unload.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]CommandHandler
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]CommandHandler)}
}

// Register binds a method name to a handler and returns the token that
// keeps it registered.
func (r *Registry) Register(method string,
	handler CommandHandler) (*HandlerToken, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[method]; ok {
		return nil, ErrCommandRegistered
	}
	r.handlers[method] = handler

	return &HandlerToken{cancel: func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.handlers, method)
	}}, nil
}

// Dispatch resolves and executes a method. Unknown methods yield the
// standard method-not-found RPC error.
func (r *Registry) Dispatch(ctx *NodeContext, method string,
	params []json.RawMessage) (interface{}, error) {

	r.mu.RLock()
	handler, ok := r.handlers[method]
	r.mu.RUnlock()

	if !ok {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCMethodNotFound.Code,
			"Method not found: "+method)
	}
	return handler(ctx, params)
}

// Methods returns the currently registered method names.
func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.handlers))
	for m := range r.handlers {
		out = append(out, m)
	}
	return out
}
