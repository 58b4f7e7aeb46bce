package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/library-api/apidocs/render"
	"github.com/library-api/apidocs/web"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) docsCmd() *cobra.Command {
	var (
		format string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "docs [key]",
		Short: "Print OpenAPI document of a key, or all documents",
		Long: "Print OpenAPI document of a key, or all documents when key is omitted.\n" +
			"All documents are printed as a JSON array, or as YAML documents separated by \"---\".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			h, err := a.host(cmd.Context())
			if err != nil {
				return err
			}

			if list {
				for _, key := range h.Keys() {
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}

				return nil
			}

			var doc []byte

			if len(args) == 0 {
				doc, err = allDocs(h, f)
			} else {
				api, ok := h.API(args[0])
				if !ok {
					return fmt.Errorf("unknown document %q, available: %v", args[0], h.Keys())
				}

				doc, err = render.Marshal(api.OpenAPISchema(), f)
			}

			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(append(doc, '\n'))

			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&list, "list", false, "list document keys instead of printing documents")

	return cmd
}

// allDocs renders documents of all keys in order.
func allDocs(h *web.Host, f render.Format) ([]byte, error) {
	specs := lo.Map(h.Keys(), func(key string, _ int) any {
		api, _ := h.API(key)

		return api.OpenAPISchema()
	})

	if f == render.JSON {
		return render.Marshal(specs, f)
	}

	docs := make([][]byte, 0, len(specs))

	for _, spec := range specs {
		doc, err := render.Marshal(spec, f)
		if err != nil {
			return nil, err
		}

		docs = append(docs, bytes.TrimSuffix(doc, []byte("\n")))
	}

	return bytes.Join(docs, []byte("\n---\n")), nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate OpenAPI documents of all versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			h, err := a.host(ctx)
			if err != nil {
				return err
			}

			var errs []error

			for _, key := range h.Keys() {
				api, _ := h.API(key)

				doc, err := render.Marshal(api.OpenAPISchema(), render.JSON)
				if err == nil {
					err = render.Validate(ctx, doc)
				}

				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", key, err))

					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), "valid:", key)
			}

			return errors.Join(errs...)
		},
	}
}
