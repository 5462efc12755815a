package sawkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install and drive Chainsaw with the Sigma rules"
	MsgInstallShort    = "Install Chainsaw, the Sigma rules and the shell integration"
	MsgUpdateShort     = "Pull both repositories and rebuild Chainsaw"
	MsgUninstallShort  = "Remove the installation and the shell integration"
	MsgStatusShort     = "Show what is installed and where"
	MsgRunShort        = "Run the installed chainsaw binary with any arguments"
	MsgHuntShort       = "Hunt event logs with Sigma rules"
	MsgSearchShort     = "Run chainsaw search"
	MsgAnalyseShort    = "Run chainsaw analyse"
	MsgDumpShort       = "Run chainsaw dump"
	MsgRulesShort      = "Browse the installed Sigma rules"
	MsgRulesPathShort  = "Print the Sigma rules directory"
	MsgRulesListShort  = "List the top-level rule categories"
	MsgRulesSearch     = "List rules whose content contains a term"
	MsgRulesCountShort = "Count the rule files"
	MsgRulesShowShort  = "Show the metadata of one rule"
	MsgRulesStatsShort = "Show rule counts per category"
	MsgShellShort      = "Manage the generated shell functions"
	MsgShellInstall    = "Write the shell block and source it from the startup file"
	MsgShellRemove     = "Remove the shell block from the alias file"
	MsgShellSnippet    = "Print the line that sources the alias file"
	MsgConfigShort     = "Show or create the configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigInitShort = "Print a commented default configuration"
	MsgGuideShort      = "Read the sawkit guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagYes       = "Answer yes to every confirmation"
	MsgFlagConfig    = "Read configuration from this file instead of the default"
	MsgFlagTimeout   = "Abort the whole run after this long (0 disables)"
	MsgFlagOutput    = "Output format: auto, term, text or json"
	MsgFlagLevels    = "Add a column per rule level"
	MsgFlagWrite     = "Write the file into the config directory"
	MsgFlagBlock     = "Print the whole generated block instead"
	MsgFlagShellOnly = "Only remove the shell block"

	// Version output
	MsgVersionFormat = "sawkit version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrPaths     = "failed to resolve paths"
	MsgErrExecPath  = "failed to locate the sawkit executable"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/hunt-long.txt
	msgHuntLongRaw string
	MsgHuntLong    = strings.TrimSpace(msgHuntLongRaw)

	//go:embed msgs/hunt-example.txt
	msgHuntExampleRaw string
	MsgHuntExample    = strings.TrimRight(msgHuntExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/rules-example.txt
	msgRulesExampleRaw string
	MsgRulesExample    = strings.TrimRight(msgRulesExampleRaw, "\n")

	//go:embed msgs/shell-long.txt
	msgShellLongRaw string
	MsgShellLong    = strings.TrimSpace(msgShellLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
