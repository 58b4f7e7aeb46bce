package apiversion

import (
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// Description describes a single API version as it should be documented.
type Description struct {
	APIVersion   Version
	GroupName    string
	IsDeprecated bool
}

// DescriptionProvider exposes known API versions.
type DescriptionProvider interface {
	APIVersionDescriptions() []Description
}

// DescriptionProviderFunc implements DescriptionProvider with a function.
type DescriptionProviderFunc func() []Description

// APIVersionDescriptions returns descriptions.
func (f DescriptionProviderFunc) APIVersionDescriptions() []Description {
	return f()
}

// DefaultGroupName formats version as "v1", "v1.1" or "v2-beta".
func DefaultGroupName(v Version) string {
	s := "v" + strconv.Itoa(v.Major)

	if v.Minor != 0 {
		s += "." + strconv.Itoa(v.Minor)
	}

	if v.Status != "" {
		s += "-" + v.Status
	}

	return s
}

// Provider is a static DescriptionProvider built from a list of supported versions.
type Provider struct {
	versions   []Version
	deprecated map[string]bool
	groupName  func(Version) string
}

// WithDeprecated marks versions as deprecated.
func WithDeprecated(versions ...Version) func(p *Provider) {
	return func(p *Provider) {
		for _, v := range versions {
			p.deprecated[v.String()] = true
		}
	}
}

// WithGroupNameFormat overrides DefaultGroupName.
func WithGroupNameFormat(format func(Version) string) func(p *Provider) {
	return func(p *Provider) {
		p.groupName = format
	}
}

// NewProvider creates a provider of distinct versions ordered from oldest to newest.
func NewProvider(versions []Version, options ...func(p *Provider)) *Provider {
	p := &Provider{
		versions:   lo.UniqBy(versions, Version.String),
		deprecated: make(map[string]bool),
		groupName:  DefaultGroupName,
	}

	sort.SliceStable(p.versions, func(i, j int) bool {
		return p.versions[i].Compare(p.versions[j]) < 0
	})

	for _, option := range options {
		option(p)
	}

	return p
}

// APIVersionDescriptions implements DescriptionProvider.
func (p *Provider) APIVersionDescriptions() []Description {
	return lo.Map(p.versions, func(v Version, _ int) Description {
		return Description{
			APIVersion:   v,
			GroupName:    p.groupName(v),
			IsDeprecated: p.deprecated[v.String()],
		}
	})
}
