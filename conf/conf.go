// Package conf holds the tempex runtime configuration: parser limits,
// merge engine distances, and output preferences. Values load from TOML
// files and TEMPEX_* environment variables via Viper.
package conf

// Settings represents the tempex configuration.
type Settings struct {
	Parser Parser `mapstructure:"parser"`
	Merge  Merge  `mapstructure:"merge"`
	Output Output `mapstructure:"output"`
}

// Parser bounds the recursive pattern dispatcher.
type Parser struct {
	// MaxRecursionDepth limits nested sub-parses of constituent text.
	// Depth 0 is the top-level call; a sub-parse at this depth fails
	// with a no-match instead of recursing further (default: 3).
	MaxRecursionDepth int `mapstructure:"max_recursion_depth"`
}

// Merge configures the span and signal fusion passes.
type Merge struct {
	// AdjacencyGap is the maximum character distance between two
	// detected items for them to count as adjacent (default: 30).
	AdjacencyGap int `mapstructure:"adjacency_gap"`

	// ConnectiveLookahead is how far past a range-opening span to scan
	// for the connective word and the closing span (default: 50).
	ConnectiveLookahead int `mapstructure:"connective_lookahead"`
}

// Output configures CLI rendering.
type Output struct {
	Format string `mapstructure:"format"` // text, json, yaml
}
