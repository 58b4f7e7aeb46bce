package main

import (
	"context"
	"os"

	"github.com/bool64/ctxd"
	"github.com/library-api/apidocs/config"
	"github.com/library-api/apidocs/logging"
	"github.com/library-api/apidocs/swaggerdoc"
	"github.com/library-api/apidocs/web"
	"github.com/spf13/cobra"
)

type app struct {
	cfg    config.Config
	logger ctxd.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "library-api",
		Short:        "Serves OpenAPI documents of Library API versions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringSlice("versions", nil, "supported API versions, e.g. 1.0,2.0 (env LIBRARY_API_API_VERSIONS)")
	f.StringSlice("deprecated", nil, "deprecated API versions (env LIBRARY_API_DEPRECATED_VERSIONS)")
	f.Bool("deprecation-notice", false, "append deprecation notice to descriptions of deprecated versions")
	f.String("log-level", "", "log level: debug, info, warn, error (env LIBRARY_API_LOG_LEVEL)")

	cmd.AddCommand(a.serveCmd(), a.docsCmd(), a.validateCmd())

	return cmd
}

// init loads config from environment and applies explicitly set flags on top.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f := cmd.Flags()

	if f.Changed("versions") {
		if cfg.APIVersions, err = f.GetStringSlice("versions"); err != nil {
			return err
		}
	}

	if f.Changed("deprecated") {
		if cfg.DeprecatedVersions, err = f.GetStringSlice("deprecated"); err != nil {
			return err
		}
	}

	if f.Changed("deprecation-notice") {
		if cfg.DeprecationNotice, err = f.GetBool("deprecation-notice"); err != nil {
			return err
		}
	}

	if f.Changed("log-level") {
		if cfg.LogLevel, err = f.GetString("log-level"); err != nil {
			return err
		}
	}

	if f.Lookup("port") != nil && f.Changed("port") {
		if cfg.HTTPPort, err = f.GetInt("port"); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = logging.New(os.Stderr, cfg.LogLevel)

	return nil
}

// documents registers a document for every configured API version.
func (a *app) documents(ctx context.Context) (*swaggerdoc.Options, error) {
	p, err := a.cfg.Provider()
	if err != nil {
		return nil, ctxd.WrapError(ctx, err, "configure API versions")
	}

	options := []swaggerdoc.Option{swaggerdoc.WithLogger(a.logger)}

	if a.cfg.DeprecationNotice {
		options = append(options, swaggerdoc.WithDeprecationNotice())
	}

	docs := swaggerdoc.NewOptions()
	swaggerdoc.NewConfigureOptions(p, options...).Configure(docs)

	return docs, nil
}

func (a *app) host(ctx context.Context) (*web.Host, error) {
	docs, err := a.documents(ctx)
	if err != nil {
		return nil, err
	}

	return web.NewHost(docs,
		web.WithAPIPrefix(a.cfg.APIPrefix),
		web.WithDocsPath(a.cfg.DocsPath),
		web.WithLogger(a.logger),
	), nil
}
