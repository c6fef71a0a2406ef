package chatml

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort           = "Convert chat markup into styled chat components"
	MsgConvertShort        = "Convert markup and render the resulting lines"
	MsgRenderShort         = "Render a markup template"
	MsgTemplatesShort      = "Inspect and customize templates"
	MsgTemplatesListShort  = "List available templates"
	MsgTemplatesShowShort  = "Print the source of a template"
	MsgTemplatesStoreShort = "Copy the default templates into the override directory"
	MsgConfigShort         = "Inspect and create the configuration file"
	MsgConfigInitShort     = "Write a commented configuration file"
	MsgConfigShowShort     = "Print the effective configuration"
	MsgTopicsShort         = "Display available documentation topics"
	MsgTopicsLong          = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort        = "Print version information"
	MsgCompletionShort     = "Generate shell completion script"

	// Status messages
	MsgTemplateItem       = "  %s\n"
	MsgTemplateOverridden = "  %s (overridden)\n"
	MsgAvailableTemplates = "Available templates:"
	MsgTemplatesStored    = "Stored default templates in %s\n"
	MsgConfigWritten      = "Wrote configuration to %s\n"

	// Error messages
	MsgErrReadInput  = "failed to read markup"
	MsgErrBadSetPair = "invalid --set value %q, expected key=value"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Configuration file (default $XDG_CONFIG_HOME/chatml/config.toml)"
	MsgFlagFormat        = "Output format: "
	MsgFlagNoColor       = "Disable colors in terminal output"
	MsgFlagWidth         = "Wrap terminal output at this width (0 disables, -1 uses the terminal width)"
	MsgFlagKeepLinefeeds = "Keep <lf/> as a literal line feed instead of starting a new line"
	MsgFlagStrict        = "Reject markup that is not well-formed XML"
	MsgFlagText          = "Markup to convert instead of reading a file"
	MsgFlagData          = "Template data file (.json, .yaml, .yml, .toml); repeatable"
	MsgFlagSet           = "Template value as key=value; repeatable"
	MsgFlagMarkup        = "Print the template's markup instead of converting it"
	MsgFlagForce         = "Overwrite an existing file"
	MsgFlagPath          = "Where to write the configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
