package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/imgsupport/pkg/imgsupport"
	"github.com/dmitrymomot/imgsupport/pkg/negotiate"
)

var errUnknownOutput = errors.New("unknown output format")

type checkOptions struct {
	output  string
	require string
}

func newCheckCmd() *cobra.Command {
	opts := checkOptions{output: "text"}
	cmd := &cobra.Command{
		Use:   "check [user-agent...]",
		Short: "Report format support for each User-Agent",
		Long: "Report WebP and AVIF support for each User-Agent argument.\n" +
			"With no arguments, User-Agents are read from stdin, one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			uas := args
			if len(uas) == 0 {
				var err error
				if uas, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			return runCheck(cmd.OutOrStdout(), uas, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.output, "output", "o", "text", "output format: text, json or yaml")
	fs.StringVar(&opts.require, "require", "", "fail unless every User-Agent supports this format (webp or avif)")
	return cmd
}

func runCheck(w io.Writer, uas []string, opts checkOptions) error {
	var required imgsupport.Format
	if opts.require != "" {
		f, ok := imgsupport.ParseFormat(opts.require)
		if !ok {
			return fmt.Errorf("unknown format %q for --require", opts.require)
		}
		required = f
	}

	results := make([]negotiate.Detection, 0, len(uas))
	for _, ua := range uas {
		results = append(results, negotiate.Detect(ua))
	}

	if err := writeResults(w, results, opts.output); err != nil {
		return err
	}

	if opts.require == "" {
		return nil
	}
	missing := 0
	for _, ua := range uas {
		if !imgsupport.Supported([]byte(ua), required) {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d user agents do not support %s", missing, len(uas), required)
	}
	return nil
}

func writeResults(w io.Writer, results []negotiate.Detection, output string) error {
	switch strings.ToLower(output) {
	case "", "text":
		return writeText(w, results)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}
}

func writeText(w io.Writer, results []negotiate.Detection) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BROWSER\tVERSION\tWEBP\tAVIF\tSERVE\tUSER-AGENT")
	for _, d := range results {
		serve := d.Best
		if serve == "" {
			serve = "fallback"
		}
		version := d.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			displayName(d.Browser), version, yesNo(d.WebP), yesNo(d.AVIF), serve, d.UserAgent)
	}
	return tw.Flush()
}

var acronyms = map[string]string{
	"uc": "UC Browser",
	"qq": "QQ Browser",
}

// displayName turns a family name such as "edge-legacy" into "Edge Legacy".
func displayName(family string) string {
	if name, ok := acronyms[family]; ok {
		return name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(family, "-", " "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// readLines returns the non-empty trimmed lines of r.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read user agents: %w", err)
	}
	return lines, nil
}
