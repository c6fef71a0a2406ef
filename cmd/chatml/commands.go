package chatml

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/chatml/internal/version"
	"github.com/arthur-debert/chatml/pkg/cobrax/topics"
	"github.com/arthur-debert/chatml/pkg/config"
	"github.com/arthur-debert/chatml/pkg/errors"
	"github.com/arthur-debert/chatml/pkg/logging"
	"github.com/arthur-debert/chatml/pkg/markup"
	"github.com/arthur-debert/chatml/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// skipConfigAnnotation marks commands that must run even when the
// configuration cannot be loaded.
const skipConfigAnnotation = "chatml/skip-config"

// app carries the global flags and the configuration they resolve to.
type app struct {
	verbosity     int
	configFile    string
	format        string
	noColor       bool
	width         int
	keepLinefeeds bool
	strict        bool

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "chatml",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.Setup(logging.Options{Verbosity: a.verbosity, NoColor: a.noColor})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if cmd.Name() == "help" || cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configFile, "config", "", MsgFlagConfig)
	flags.StringVarP(&a.format, "format", "f", "auto", MsgFlagFormat+strings.Join(ui.FormatNames(), ", "))
	flags.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	flags.IntVar(&a.width, "width", 0, MsgFlagWidth)
	flags.BoolVar(&a.keepLinefeeds, "keep-linefeeds", false, MsgFlagKeepLinefeeds)
	flags.BoolVar(&a.strict, "strict", false, MsgFlagStrict)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newTemplatesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system from the embedded topics
	opts := topics.Options{
		Extensions: []string{".txt", ".md", ".chat"},
		Renderer:   newHelpRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, helpTopics(), opts); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize help topics")
	}

	return rootCmd
}

// loadConfig layers the configuration and applies explicitly set flags
// on top of it.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{File: a.configFile})
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = a.noColor
	}
	if flags.Changed("width") {
		cfg.Output.Width = a.width
	}
	if flags.Changed("keep-linefeeds") {
		cfg.Converter.KeepLinefeeds = a.keepLinefeeds
	}
	if flags.Changed("strict") {
		cfg.Converter.Strict = a.strict
	}

	log.Debug().
		Str("format", cfg.Output.Format).
		Bool("keepLinefeeds", cfg.Converter.KeepLinefeeds).
		Bool("strict", cfg.Converter.Strict).
		Int("maxDepth", cfg.Converter.MaxDepth).
		Msg("Configuration resolved")

	a.cfg = cfg
	return nil
}

// converter builds a markup converter from the converter settings.
func (a *app) converter() *markup.Converter {
	opts := markup.Options{
		KeepLinefeeds: a.cfg.Converter.KeepLinefeeds,
		MaxDepth:      a.cfg.Converter.MaxDepth,
	}
	if a.cfg.Converter.Strict {
		opts.Tokenizer = markup.XMLTokenizer{}
	}
	return markup.New(opts)
}

// renderer builds the output renderer from the output settings.
func (a *app) renderer(out io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	width := a.cfg.Output.Width
	if width < 0 {
		width = terminalWidth(out)
	}
	return ui.NewRenderer(format, out, ui.Options{
		Width:   width,
		NoColor: a.cfg.Output.NoColor,
	})
}

// terminalWidth returns the column count of out, or 0 when out is not a
// terminal.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func newConvertCmd(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:     "convert [file|-]",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := text
			if !cmd.Flags().Changed("text") {
				var err error
				input, err = readInput(cmd, args)
				if err != nil {
					return err
				}
			}

			lines, err := a.converter().Convert(input)
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

	cmd.Flags().StringVarP(&text, "text", "t", "", MsgFlagText)

	return cmd
}

// readInput reads markup from the named file, or from stdin for "-" or no
// argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, MsgErrReadInput).
				WithDetail("path", "-")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, MsgErrReadInput).
			WithDetail("path", args[0])
	}
	return string(data), nil
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.String(cmd.Root().Name()))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
