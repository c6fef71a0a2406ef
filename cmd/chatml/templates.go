package chatml

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/chatml/pkg/component"
	"github.com/arthur-debert/chatml/pkg/datafile"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/logging"
	"github.com/arthur-debert/chatml/pkg/template"
	"github.com/arthur-debert/chatml/pkg/template/builtin"
	"github.com/spf13/cobra"
)

// manager builds a template manager over the built-in templates and the
// configured override directory.
func (a *app) manager() (*template.Manager, error) {
	loc, err := a.cfg.Templates.Location()
	if err != nil {
		return nil, err
	}
	provider := template.NewResourceProvider(builtin.FS, a.cfg.Templates.Dir())
	return template.NewManager(provider, template.Options{
		CacheTTL:      a.cfg.Templates.CacheTTL,
		Location:      loc,
		StoreDefaults: a.cfg.Templates.StoreDefaults,
	}), nil
}

// templateNamesCompletion provides shell completion for template names
func (a *app) templateNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if a.cfg == nil {
		if err := a.loadConfig(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	m, err := a.manager()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := m.Provider().List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var completions []string
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			completions = append(completions, name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// parseSetPairs turns key=value flags into template data.
func parseSetPairs(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBadSetPair, pair).
				WithDetail("value", pair)
		}
		values[key] = value
	}
	return values, nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		dataFiles []string
		setPairs  []string
		rawMarkup bool
	)

	cmd := &cobra.Command{
		Use:               "render <template>",
		Short:             MsgRenderShort,
		Long:              MsgRenderLong,
		Example:           MsgRenderExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.templateNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")
			name := args[0]

			var data []any
			for _, path := range dataFiles {
				values, err := datafile.Load(path)
				if err != nil {
					return err
				}
				data = append(data, values)
			}
			values, err := parseSetPairs(setPairs)
			if err != nil {
				return err
			}
			data = append(data, values)

			m, err := a.manager()
			if err != nil {
				return err
			}

			logger.Info().
				Str("template", name).
				Int("dataFiles", len(dataFiles)).
				Bool("markup", rawMarkup).
				Msg("Rendering template")

			if rawMarkup {
				out, err := m.FormatXML(name, data...)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			lines, err := template.Format[[]*component.Styled](m, name, a.converter(), data...)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return r.RenderLines(lines)
		},
	}

	cmd.Flags().StringArrayVarP(&dataFiles, "data", "d", nil, MsgFlagData)
	cmd.Flags().StringArrayVarP(&setPairs, "set", "s", nil, MsgFlagSet)
	cmd.Flags().BoolVar(&rawMarkup, "markup", false, MsgFlagMarkup)

	return cmd
}

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Short:   MsgTemplatesShort,
		GroupID: "config",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgTemplatesListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			provider := m.Provider()
			names, err := provider.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, MsgAvailableTemplates)
			for _, name := range names {
				format := MsgTemplateItem
				if isOverridden(provider, name) {
					format = MsgTemplateOverridden
				}
				_, _ = fmt.Fprintf(out, format, name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "show <template>",
		Short:             MsgTemplatesShowShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.templateNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			source, err := m.Provider().Get(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), source)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "store-defaults",
		Short: MsgTemplatesStoreShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			provider := m.Provider()
			if err := provider.StoreDefaults(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgTemplatesStored, provider.OverrideDir)
			return nil
		},
	})

	return cmd
}

// isOverridden reports whether name has a file in the override directory.
func isOverridden(p *template.ResourceProvider, name string) bool {
	if p.OverrideDir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(p.OverrideDir, filepath.FromSlash(name+template.Ext)))
	return err == nil
}
