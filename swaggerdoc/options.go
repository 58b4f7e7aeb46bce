// Package swaggerdoc registers an OpenAPI document for every known API version.
package swaggerdoc

import (
	"sync"

	"github.com/swaggest/openapi-go/openapi3"
)

// Registry receives document registrations.
type Registry interface {
	RegisterDocument(key string, info openapi3.Info)
}

// Options is a Registry that keeps documents in order of first registration.
//
// Registering an existing key replaces its info in place.
type Options struct {
	mu   sync.Mutex
	keys []string
	docs map[string]openapi3.Info
}

// NewOptions creates an empty document registry.
func NewOptions() *Options {
	return &Options{
		docs: make(map[string]openapi3.Info),
	}
}

// RegisterDocument implements Registry.
func (o *Options) RegisterDocument(key string, info openapi3.Info) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.docs == nil {
		o.docs = make(map[string]openapi3.Info)
	}

	if _, ok := o.docs[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.docs[key] = info
}

// Document returns registered document info.
func (o *Options) Document(key string) (openapi3.Info, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	info, ok := o.docs[key]

	return info, ok
}

// Keys returns document keys.
func (o *Options) Keys() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.keys...)
}

// Len returns number of registered documents.
func (o *Options) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.keys)
}

// Each iterates documents in registration order.
func (o *Options) Each(f func(key string, info openapi3.Info)) {
	for _, key := range o.Keys() {
		if info, ok := o.Document(key); ok {
			f(key, info)
		}
	}
}
