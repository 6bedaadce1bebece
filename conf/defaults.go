package conf

import "github.com/spf13/viper"

// Default parser and merge limits. The merge distances come from
// measured clause lengths in conversational English; widening them
// trades precision for recall.
const (
	DefaultMaxRecursionDepth   = 3
	DefaultAdjacencyGap        = 30
	DefaultConnectiveLookahead = 50
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("parser.max_recursion_depth", DefaultMaxRecursionDepth)

	v.SetDefault("merge.adjacency_gap", DefaultAdjacencyGap)
	v.SetDefault("merge.connective_lookahead", DefaultConnectiveLookahead)

	v.SetDefault("output.format", "text")
}

// Default returns a Settings populated with the built-in defaults,
// bypassing file and environment lookup. Library callers that never
// touch Load get this.
func Default() *Settings {
	return &Settings{
		Parser: Parser{
			MaxRecursionDepth: DefaultMaxRecursionDepth,
		},
		Merge: Merge{
			AdjacencyGap:        DefaultAdjacencyGap,
			ConnectiveLookahead: DefaultConnectiveLookahead,
		},
		Output: Output{
			Format: "text",
		},
	}
}
