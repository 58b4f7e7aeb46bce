package apiversion_test

import (
	"testing"

	"github.com/library-api/apidocs/apiversion"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGroupName(t *testing.T) {
	assert.Equal(t, "v1", apiversion.DefaultGroupName(apiversion.MustParse("1.0")))
	assert.Equal(t, "v1.1", apiversion.DefaultGroupName(apiversion.MustParse("1.1")))
	assert.Equal(t, "v2-beta", apiversion.DefaultGroupName(apiversion.MustParse("2.0-beta")))
}

func TestNewProvider(t *testing.T) {
	p := apiversion.NewProvider(
		[]apiversion.Version{
			apiversion.MustParse("2.0"),
			apiversion.MustParse("1.0"),
			apiversion.MustParse("v1"),
			apiversion.MustParse("2.0-beta"),
		},
		apiversion.WithDeprecated(apiversion.MustParse("1.0")),
	)

	assert.Equal(t, []apiversion.Description{
		{APIVersion: apiversion.New(1, 0), GroupName: "v1", IsDeprecated: true},
		{APIVersion: apiversion.MustParse("2.0-beta"), GroupName: "v2-beta"},
		{APIVersion: apiversion.New(2, 0), GroupName: "v2"},
	}, p.APIVersionDescriptions())
}

func TestNewProvider_groupNameFormat(t *testing.T) {
	p := apiversion.NewProvider(
		[]apiversion.Version{apiversion.New(1, 0)},
		apiversion.WithGroupNameFormat(func(v apiversion.Version) string {
			return "version-" + v.String()
		}),
	)

	d := p.APIVersionDescriptions()
	assert.Len(t, d, 1)
	assert.Equal(t, "version-1.0", d[0].GroupName)
	assert.False(t, d[0].IsDeprecated)
}

func TestNewProvider_empty(t *testing.T) {
	assert.Empty(t, apiversion.NewProvider(nil).APIVersionDescriptions())
}

func TestDescriptionProviderFunc(t *testing.T) {
	var p apiversion.DescriptionProvider = apiversion.DescriptionProviderFunc(func() []apiversion.Description {
		return []apiversion.Description{{APIVersion: apiversion.New(3, 0), GroupName: "v3"}}
	})

	assert.Equal(t, "v3", p.APIVersionDescriptions()[0].GroupName)
}
