package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tempex"
	"github.com/teranos/tempex/conf"
	"github.com/teranos/tempex/errors"
)

// parseOutput is the machine-readable shape of a parse result.
type parseOutput struct {
	Text        string     `json:"text" yaml:"text"`
	Expression  string     `json:"expression" yaml:"expression"`
	Granularity string     `json:"granularity" yaml:"granularity"`
	Rule        string     `json:"rule,omitempty" yaml:"rule,omitempty"`
	Anchor      time.Time  `json:"anchor" yaml:"anchor"`
	Start       *time.Time `json:"start" yaml:"start"`
	End         *time.Time `json:"end" yaml:"end"`
}

// ParseCmd parses one temporal expression and evaluates it.
var ParseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse a temporal expression and evaluate it against an anchor",
	Long: `Parse a natural-language temporal expression and resolve it against a
reference instant ("anchor", default now) to a concrete interval.

Either interval bound may be open when the expression carries partial
information: "early October" without a year has no concrete bounds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		anchorFlag, _ := cmd.Flags().GetString("anchor")
		format, _ := cmd.Flags().GetString("format")
		configPath, _ := cmd.Flags().GetString("config")

		anchor := time.Now().UTC()
		if anchorFlag != "" {
			parsed, err := time.Parse(time.RFC3339, anchorFlag)
			if err != nil {
				pterm.Error.Printf("Invalid anchor %q: must be RFC 3339 (2023-10-07T12:00:00Z)\n", anchorFlag)
				return errors.Wrapf(errors.ErrInvalidAnchor, "%q", anchorFlag)
			}
			anchor = parsed.UTC()
		}

		settings, err := loadSettings(configPath)
		if err != nil {
			return err
		}

		result, err := tempex.New(settings).Parse(args[0])
		if err != nil {
			if errors.IsNoMatch(err) {
				pterm.Warning.Printf("No temporal interpretation for %q\n", args[0])
				return nil
			}
			pterm.Error.Println(err.Error())
			return err
		}

		iv := result.Expression.Evaluate(anchor)
		out := parseOutput{
			Text:        args[0],
			Expression:  result.Expression.String(),
			Granularity: string(result.Granularity),
			Rule:        result.Rule,
			Anchor:      anchor,
			Start:       iv.Start,
			End:         iv.End,
		}

		switch format {
		case "json":
			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
		case "yaml":
			encoded, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			fmt.Print(string(encoded))
		default:
			renderText(out, iv.IsOpen())
		}
		return nil
	},
}

func loadSettings(configPath string) (*conf.Settings, error) {
	if configPath == "" {
		return conf.Load()
	}
	settings, err := conf.LoadFromFile(configPath)
	if err != nil {
		pterm.Error.Printf("Failed to load config: %v\n", err)
		return nil, err
	}
	return settings, nil
}

func renderText(out parseOutput, open bool) {
	pterm.Success.Printf("Parsed %q\n", out.Text)
	pterm.Printf("  Expression:  %s\n", out.Expression)
	pterm.Printf("  Granularity: %s\n", out.Granularity)
	if out.Rule != "" {
		pterm.Printf("  Rule:        %s\n", out.Rule)
	}
	pterm.Printf("  Anchor:      %s\n", out.Anchor.Format(time.RFC3339))
	pterm.Printf("  Start:       %s\n", formatBound(out.Start))
	pterm.Printf("  End:         %s\n", formatBound(out.End))
	if open {
		pterm.Info.Println("Expression carries partial information; both bounds are open")
	}
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "(open)"
	}
	return t.Format(time.RFC3339)
}

func init() {
	ParseCmd.Flags().String("anchor", "", "Reference instant as RFC 3339 (default: now)")
	ParseCmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml")
}
