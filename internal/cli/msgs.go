package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Match, synthesize and take items described by expressions"
	MsgMatchShort      = "Check items against an expression"
	MsgSolveShort      = "Build an item that satisfies an expression"
	MsgRemoveShort     = "Take matching items out of an inventory"
	MsgExportShort     = "Print an expression in canonical form"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgMatch          = "[success]match[/success]"
	MsgNoMatch        = "[error]no match[/error]"
	MsgMatchSummary   = "{{stacks}} of {{slots}} slots match ({{items}} items)"
	MsgRemoved        = "Removed [amount]{{amount}}[/amount] items from {{path}}"
	MsgRemovedAll     = "Emptied every matching stack in {{path}}"
	MsgNotWritten     = "[muted]Inventory not written, pass --write to save it[/muted]"
	MsgSolvedWritten  = "Wrote {{path}}"
	MsgInventoryTitle = "Inventory"

	// Errors
	MsgErrNeedTarget   = "one of --item or --inventory is required"
	MsgErrAmountModes  = "--amount and --all can't be combined"
	MsgErrNotEnough    = "%s holds fewer than %d matching items"
	MsgErrExportSource = "give either a selector or --from-item"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/itemexpr/config.toml)"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagItem      = "Single stack document (yaml or toml)"
	MsgFlagInventory = "Inventory document (yaml or toml)"
	MsgFlagSeedItem  = "Stack document to start synthesis from"
	MsgFlagOut       = "Write the solved stack to this file"
	MsgFlagAmount    = "Exact number of items to take"
	MsgFlagAll       = "Take every matching item"
	MsgFlagRandom    = "Draw the amount from the expression's range"
	MsgFlagSeed      = "Random seed (0 uses random.seed from config, then a random one)"
	MsgFlagWrite     = "Save the inventory after removal"
	MsgFlagAs        = "Document format: yaml or toml"
	MsgFlagFromItem  = "Describe this stack instead of loading an expression"
	MsgFlagSimilar   = "With --from-item, accept stacks of any size"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/remove-example.txt
	msgRemoveExampleRaw string
	MsgRemoveExample    = strings.TrimSpace(msgRemoveExampleRaw)

	//go:embed msgs/match-example.txt
	msgMatchExampleRaw string
	MsgMatchExample    = strings.TrimSpace(msgMatchExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
