package swaggerdoc

import (
	"context"

	"github.com/bool64/ctxd"
	"github.com/library-api/apidocs/apiversion"
	"github.com/swaggest/openapi-go/openapi3"
)

// Configurer populates document registry.
type Configurer interface {
	Configure(r Registry)
}

// Apply runs configurers against registry in order.
func Apply(r Registry, configurers ...Configurer) {
	for _, c := range configurers {
		c.Configure(r)
	}
}

// Option customizes ConfigureOptions.
type Option func(c *ConfigureOptions)

// WithDeprecationNotice enables InfoForVersion so that deprecated versions
// get DeprecationNotice appended to document description.
func WithDeprecationNotice() Option {
	return func(c *ConfigureOptions) {
		c.infoFor = InfoForVersion
	}
}

// WithLogger sets a logger for registrations.
func WithLogger(l ctxd.Logger) Option {
	return func(c *ConfigureOptions) {
		c.logger = l
	}
}

// ConfigureOptions defines a document per API version after versions are
// discovered by apiversion.DescriptionProvider.
type ConfigureOptions struct {
	provider apiversion.DescriptionProvider
	infoFor  func(d apiversion.Description) openapi3.Info
	logger   ctxd.Logger
}

var _ Configurer = &ConfigureOptions{}

// NewConfigureOptions creates document configurer for API versions of provider.
func NewConfigureOptions(provider apiversion.DescriptionProvider, options ...Option) *ConfigureOptions {
	c := &ConfigureOptions{
		provider: provider,
		infoFor:  info,
		logger:   ctxd.NoOpLogger{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Configure registers a document for each discovered API version.
//
// Deprecated versions are documented the same way as others unless
// WithDeprecationNotice is used.
func (c *ConfigureOptions) Configure(r Registry) {
	ctx := context.Background()

	for _, d := range c.provider.APIVersionDescriptions() {
		key := DocumentKey(d.GroupName)

		r.RegisterDocument(key, c.infoFor(d))

		c.logger.Debug(ctx, "registered API document",
			"key", key, "version", d.APIVersion.String(), "deprecated", d.IsDeprecated)
	}
}
