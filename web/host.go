// Package web hosts versioned API documents.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/bool64/ctxd"
	"github.com/library-api/apidocs/render"
	"github.com/library-api/apidocs/swaggerdoc"
	"github.com/samber/lo"
	"github.com/swaggest/openapi-go/openapi3"
	"github.com/swaggest/rest/web"
	swg "github.com/swaggest/swgui"
	swgui "github.com/swaggest/swgui/v5emb"
)

// Default paths.
const (
	DefaultAPIPrefix = "/api"
	DefaultDocsPath  = "/docs"
)

// Host serves an API sub-service and OpenAPI document per registered document key.
type Host struct {
	*web.Service

	apiPrefix string
	docsPath  string
	logger    ctxd.Logger
	swgui     func(title, schemaURL, basePath string) http.Handler

	keys []string
	apis map[string]*web.Service
}

// WithAPIPrefix sets URL prefix of versioned APIs, default "/api".
func WithAPIPrefix(prefix string) func(h *Host) {
	return func(h *Host) {
		h.apiPrefix = prefix
	}
}

// WithDocsPath sets URL path of documentation, default "/docs".
func WithDocsPath(path string) func(h *Host) {
	return func(h *Host) {
		h.docsPath = path
	}
}

// WithLogger sets logger.
func WithLogger(l ctxd.Logger) func(h *Host) {
	return func(h *Host) {
		h.logger = l
	}
}

// WithSwaggerUI overrides Swagger UI handler constructor.
//
// Default UI lists all documents and selects the newest one, custom constructor
// receives URL of the newest (last registered) document as schemaURL.
func WithSwaggerUI(swgui func(title, schemaURL, basePath string) http.Handler) func(h *Host) {
	return func(h *Host) {
		h.swgui = swgui
	}
}

// NewHost creates a web service with a versioned API for each document in docs.
func NewHost(docs *swaggerdoc.Options, options ...func(h *Host)) *Host {
	h := &Host{
		apiPrefix: DefaultAPIPrefix,
		docsPath:  DefaultDocsPath,
		logger:    ctxd.NoOpLogger{},
		apis:      make(map[string]*web.Service),
	}

	for _, option := range options {
		option(h)
	}

	h.apiPrefix = cleanPath(h.apiPrefix)

	if h.docsPath = cleanPath(h.docsPath); h.docsPath == "" {
		h.docsPath = DefaultDocsPath
	}

	ctx := context.Background()
	title := "API"

	// Root service to host versioned APIs.
	h.Service = web.NewService(openapi3.NewReflector())

	mounted := make(map[string]string)

	docs.Each(func(key string, info openapi3.Info) {
		base := h.BasePath(key)

		if other, ok := mounted[base]; ok {
			h.logger.Warn(ctx, "API document skipped, base path is taken",
				"key", key, "base", base, "mountedKey", other)

			return
		}

		mounted[base] = key

		if len(h.keys) == 0 && info.Title != "" {
			title = info.Title
		}

		// Each versioned API is exposed with its own OpenAPI schema.
		r := openapi3.NewReflector()
		r.SpecEns().WithInfo(info).WithServers(openapi3.Server{URL: base})
		api := web.NewService(r)

		h.keys = append(h.keys, key)
		h.apis[key] = api

		spec := api.OpenAPICollector.SpecSchema()
		h.Method(http.MethodGet, h.SpecURL(key, render.JSON), render.Handler(spec, render.JSON))
		h.Method(http.MethodGet, h.SpecURL(key, render.YAML), render.Handler(spec, render.YAML))
		h.Mount(base, api)

		h.logger.Info(ctx, "API document mounted",
			"key", key, "version", info.Version, "base", base, "spec", h.SpecURL(key, render.JSON))
	})

	h.OpenAPISchema().SetTitle(title)
	h.Docs(h.docsPath, h.ui())

	return h
}

func (h *Host) ui() func(title, schemaURL, basePath string) http.Handler {
	if h.swgui != nil {
		return func(title, schemaURL, basePath string) http.Handler {
			if len(h.keys) > 0 {
				schemaURL = h.SpecURL(h.keys[len(h.keys)-1], render.JSON)
			}

			return h.swgui(title, schemaURL, basePath)
		}
	}

	type docURL struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	}

	urls, err := json.Marshal(lo.Map(h.keys, func(key string, _ int) docURL {
		return docURL{URL: h.SpecURL(key, render.JSON), Name: key}
	}))
	if err != nil {
		panic(err)
	}

	settings := map[string]string{
		// When "urls" are configured, Swagger UI ignores "url" and switches to multi API mode.
		"urls": string(urls),
	}

	if len(h.keys) > 0 {
		// Newest version is primary.
		settings[`"urls.primaryName"`] = strconv.Quote(h.keys[len(h.keys)-1])
	}

	return swgui.NewWithConfig(swg.Config{
		ShowTopBar: true,
		SettingsUI: settings,
	})
}

// cleanPath returns path with leading slash and without trailing slash, root path is empty.
func cleanPath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}

	return "/" + p
}

// Keys returns hosted document keys.
func (h *Host) Keys() []string {
	return append([]string(nil), h.keys...)
}

// API returns versioned API service of document key.
//
// Use cases added to the service are documented in its OpenAPI document.
func (h *Host) API(key string) (*web.Service, bool) {
	api, ok := h.apis[key]

	return api, ok
}

// BasePath returns URL path of versioned API.
func (h *Host) BasePath(key string) string {
	group := strings.TrimPrefix(key, swaggerdoc.DocumentKeyPrefix)
	if group == "" {
		group = key
	}

	return h.apiPrefix + "/" + group
}

// SpecURL returns URL path of document in format.
func (h *Host) SpecURL(key string, f render.Format) string {
	return h.docsPath + "/" + key + "/openapi." + string(f)
}
