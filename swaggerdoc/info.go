package swaggerdoc

import (
	"github.com/library-api/apidocs/apiversion"
	"github.com/swaggest/openapi-go/openapi3"
)

// DocumentKeyPrefix is prepended to version group name to form a document key.
const DocumentKeyPrefix = "LibraryOpenAPISpecification"

// Document metadata shared by all versions.
const (
	Title             = "Library API"
	Description       = "Through this API you can access authors and books."
	DeprecationNotice = " This API version has been deprecated."
	ContactEmail      = "kevin.dockx@gmail.com"
	ContactName       = "Kevin Dockx"
	ContactURL        = "https://www.twitter.com/KevinDockx"
	LicenseName       = "MIT License"
	LicenseURL        = "https://opensource.org/licenses/MIT"
)

// DocumentKey returns registry key of API version group.
func DocumentKey(groupName string) string {
	return DocumentKeyPrefix + groupName
}

// info builds document metadata, deprecation is not reflected.
func info(d apiversion.Description) openapi3.Info {
	i := openapi3.Info{
		Title:   Title,
		Version: d.APIVersion.String(),
	}

	i.WithDescription(Description)
	i.WithContact(*(&openapi3.Contact{}).WithEmail(ContactEmail).WithName(ContactName).WithURL(ContactURL))
	i.WithLicense(*(&openapi3.License{Name: LicenseName}).WithURL(LicenseURL))

	return i
}

// InfoForVersion builds document metadata and appends DeprecationNotice to
// description of a deprecated version.
func InfoForVersion(d apiversion.Description) openapi3.Info {
	i := info(d)

	if d.IsDeprecated {
		i.WithDescription(Description + DeprecationNotice)
	}

	return i
}
