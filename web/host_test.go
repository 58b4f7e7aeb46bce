package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bool64/ctxd"
	"github.com/library-api/apidocs/apiversion"
	"github.com/library-api/apidocs/render"
	"github.com/library-api/apidocs/swaggerdoc"
	"github.com/library-api/apidocs/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/assertjson"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/usecase"
)

type document struct {
	Info struct {
		Title       string `json:"title"`
		Version     string `json:"version"`
		Description string `json:"description"`
		Contact     struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Email string `json:"email"`
		} `json:"contact"`
		License struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"license"`
	} `json:"info"`
	Servers []struct {
		URL string `json:"url"`
	} `json:"servers"`
	Paths map[string]json.RawMessage `json:"paths"`
}

func options(t *testing.T) *swaggerdoc.Options {
	t.Helper()

	o := swaggerdoc.NewOptions()

	swaggerdoc.NewConfigureOptions(apiversion.NewProvider(
		[]apiversion.Version{apiversion.MustParse("2.0"), apiversion.MustParse("1.0")},
		apiversion.WithDeprecated(apiversion.MustParse("1.0")),
	)).Configure(o)

	return o
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rw := httptest.NewRecorder()
	r, err := http.NewRequest(http.MethodGet, "http://localhost"+path, nil)
	require.NoError(t, err)

	h.ServeHTTP(rw, r)

	return rw
}

func TestNewHost(t *testing.T) {
	var uiTitle, uiSchemaURL, uiBasePath string

	h := web.NewHost(options(t), web.WithSwaggerUI(func(title, schemaURL, basePath string) http.Handler {
		uiTitle, uiSchemaURL, uiBasePath = title, schemaURL, basePath

		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			if r.URL.Path != basePath && r.URL.Path != basePath+"/" {
				http.NotFound(rw, r)

				return
			}

			_, _ = rw.Write([]byte("ui"))
		})
	}))

	assert.Equal(t, []string{"LibraryOpenAPISpecificationv1", "LibraryOpenAPISpecificationv2"}, h.Keys())
	assert.Equal(t, "Library API", uiTitle)
	assert.Equal(t, "/docs/LibraryOpenAPISpecificationv2/openapi.json", uiSchemaURL)
	assert.Equal(t, "/docs", uiBasePath)

	rw := get(t, h, "/docs/LibraryOpenAPISpecificationv1/openapi.json")
	require.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "application/json", rw.Header().Get("Content-Type"))

	var doc document

	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &doc))
	assert.Equal(t, "Library API", doc.Info.Title)
	assert.Equal(t, "1.0", doc.Info.Version)
	assert.Equal(t, "Through this API you can access authors and books.", doc.Info.Description)
	assert.Equal(t, "Kevin Dockx", doc.Info.Contact.Name)
	assert.Equal(t, "kevin.dockx@gmail.com", doc.Info.Contact.Email)
	assert.Equal(t, "https://www.twitter.com/KevinDockx", doc.Info.Contact.URL)
	assert.Equal(t, "MIT License", doc.Info.License.Name)
	assert.Equal(t, "https://opensource.org/licenses/MIT", doc.Info.License.URL)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "/api/v1", doc.Servers[0].URL)

	assert.NoError(t, render.Validate(context.Background(), rw.Body.Bytes()))

	rw = get(t, h, "/docs/LibraryOpenAPISpecificationv2/openapi.yaml")
	require.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "application/yaml", rw.Header().Get("Content-Type"))
	assert.Contains(t, rw.Body.String(), `version: "2.0"`)
	assert.Contains(t, rw.Body.String(), "url: /api/v2")

	rw = get(t, h, "/docs")
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Equal(t, "ui", rw.Body.String())

	assert.Equal(t, http.StatusNotFound, get(t, h, "/docs/LibraryOpenAPISpecificationv3/openapi.json").Code)
}

func TestHost_API(t *testing.T) {
	h := web.NewHost(options(t))

	_, ok := h.API("LibraryOpenAPISpecificationv3")
	assert.False(t, ok)

	api, ok := h.API("LibraryOpenAPISpecificationv2")
	require.True(t, ok)

	u := usecase.NewInteractor(func(ctx context.Context, input struct{}, output *[]string) error {
		*output = []string{"Kevin Dockx"}

		return nil
	})
	u.SetTags("Authors")

	api.Get("/authors", u)

	rw := get(t, h, "/api/v2/authors")
	require.Equal(t, http.StatusOK, rw.Code)
	assertjson.Equal(t, []byte(`["Kevin Dockx"]`), rw.Body.Bytes())

	var doc document

	rw = get(t, h, "/docs/LibraryOpenAPISpecificationv2/openapi.json")
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &doc))
	assert.Contains(t, doc.Paths, "/authors")

	doc = document{}

	rw = get(t, h, "/docs/LibraryOpenAPISpecificationv1/openapi.json")
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &doc))
	assert.NotContains(t, doc.Paths, "/authors")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v1/authors").Code)
}

func TestHost_paths(t *testing.T) {
	h := web.NewHost(options(t), web.WithAPIPrefix("/library/"), web.WithDocsPath("openapi/"))

	assert.Equal(t, "/library/v1", h.BasePath("LibraryOpenAPISpecificationv1"))
	assert.Equal(t, "/library/custom", h.BasePath("custom"))
	assert.Equal(t, "/openapi/LibraryOpenAPISpecificationv1/openapi.yaml",
		h.SpecURL("LibraryOpenAPISpecificationv1", render.YAML))

	assert.Equal(t, http.StatusOK, get(t, h, "/openapi/LibraryOpenAPISpecificationv2/openapi.json").Code)

	h = web.NewHost(options(t), web.WithAPIPrefix("/"), web.WithDocsPath(""))

	assert.Equal(t, "/v2", h.BasePath("LibraryOpenAPISpecificationv2"))
	assert.Equal(t, "/docs/LibraryOpenAPISpecificationv2/openapi.json",
		h.SpecURL("LibraryOpenAPISpecificationv2", render.JSON))
}

func TestNewHost_defaultUI(t *testing.T) {
	h := web.NewHost(options(t))

	rw := get(t, h, "/docs/")
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Body.String(), "LibraryOpenAPISpecificationv1")
	assert.Contains(t, rw.Body.String(), "LibraryOpenAPISpecificationv2")

	assert.Equal(t, http.StatusNotFound, get(t, h, "/docs/LibraryOpenAPISpecificationv3/openapi.json").Code)
}

func TestNewHost_basePathTaken(t *testing.T) {
	o := options(t)
	o.RegisterDocument("v1", openapi3.Info{Title: "Legacy", Version: "0.9"})
	o.RegisterDocument("custom", openapi3.Info{Title: "Custom", Version: "1.0"})

	logger := &ctxd.LoggerMock{}

	var h *web.Host

	require.NotPanics(t, func() {
		h = web.NewHost(o, web.WithLogger(logger))
	})

	assert.Equal(t, []string{
		"LibraryOpenAPISpecificationv1",
		"LibraryOpenAPISpecificationv2",
		"custom",
	}, h.Keys())

	_, ok := h.API("v1")
	assert.False(t, ok)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/docs/v1/openapi.json").Code)
	assert.Equal(t, http.StatusOK, get(t, h, "/docs/custom/openapi.json").Code)

	var doc document

	rw := get(t, h, "/docs/LibraryOpenAPISpecificationv1/openapi.json")
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &doc))
	assert.Equal(t, "1.0", doc.Info.Version)

	assert.Contains(t, logger.String(), "warn: API document skipped, base path is taken "+
		`{"base":"/api/v1","key":"v1","mountedKey":"LibraryOpenAPISpecificationv1"}`)
}

func TestNewHost_empty(t *testing.T) {
	h := web.NewHost(swaggerdoc.NewOptions())

	assert.Empty(t, h.Keys())
	assert.Equal(t, http.StatusOK, get(t, h, "/docs/").Code)
}
