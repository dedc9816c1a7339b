// Copyright Loideroi Labs, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [document]",
	Short: "Inspect the inline tags of a generated document",
	Long: `Inspect parses a generated XHTML document and reports its tagging
surface: fact counts by kind, contexts, units, and hidden facts.

Use --element to list every fact tagged with a specific taxonomy
element instead of the summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	element, _ := cmd.Flags().GetString("element")
	if element != "" {
		return inspectElement(doc, element)
	}
	return inspectSummary(doc)
}

func inspectSummary(doc *xmlquery.Node) error {
	counts := []struct {
		label string
		expr  string
	}{
		{"numeric facts", "//ix:nonFraction"},
		{"non-numeric facts", "//ix:nonNumeric[not(ancestor::ix:hidden)]"},
		{"hidden facts", "//ix:hidden/ix:nonNumeric"},
		{"continuations", "//ix:continuation"},
		{"excluded cells", "//ix:exclude"},
		{"contexts", "//xbrli:context"},
		{"units", "//xbrli:unit"},
	}

	for _, c := range counts {
		nodes, err := xmlquery.QueryAll(doc, c.expr)
		if err != nil {
			return fmt.Errorf("querying %s: %w", c.label, err)
		}
		fmt.Fprintf(os.Stdout, "%-18s %d\n", c.label, len(nodes))
	}

	// Per-element tally across visible and hidden facts.
	nodes, err := xmlquery.QueryAll(doc, "//ix:nonFraction | //ix:nonNumeric")
	if err != nil {
		return fmt.Errorf("querying facts: %w", err)
	}

	tally := make(map[string]int)
	for _, n := range nodes {
		if name := n.SelectAttr("name"); name != "" {
			tally[name]++
		}
	}

	names := make([]string, 0, len(tally))
	for name := range tally {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(os.Stdout, "\n%d distinct elements:\n", len(names))
	for _, name := range names {
		fmt.Fprintf(os.Stdout, "  %-50s %d\n", name, tally[name])
	}
	return nil
}

func inspectElement(doc *xmlquery.Node, element string) error {
	expr := fmt.Sprintf(
		"//ix:nonFraction[@name=%q] | //ix:nonNumeric[@name=%q]", element, element)
	nodes, err := xmlquery.QueryAll(doc, expr)
	if err != nil {
		return fmt.Errorf("querying element %s: %w", element, err)
	}

	if len(nodes) == 0 {
		fmt.Fprintf(os.Stdout, "no facts tagged %s\n", element)
		return nil
	}

	for _, n := range nodes {
		value := strings.TrimSpace(n.InnerText())
		if len(value) > 60 {
			value = value[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-14s context=%-14s unit=%-10s %q\n",
			n.Data, n.SelectAttr("contextRef"), n.SelectAttr("unitRef"), value)
	}

	fmt.Fprintf(os.Stdout, "\n%d facts\n", len(nodes))
	return nil
}

func init() {
	inspectCmd.Flags().String("element", "", "list facts tagged with this element (e.g. mica:TotalSupplyOfTokens)")

	rootCmd.AddCommand(inspectCmd)
}
