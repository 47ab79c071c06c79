package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/vitsch/Boolean-GMDH-type-neural-network/ablation"
)

func bits(row []bool) string {
	var sb strings.Builder
	for _, b := range row {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func printBuildReport(out io.Writer, r buildReport) {
	sum := r.Report.Summary
	fmt.Fprintf(out, "\n=== Network Summary ===\n")
	fmt.Fprintf(out, "Target: %s\n", r.Target)
	fmt.Fprintf(out, "Catalog: %s\n", strings.Join(r.Report.Catalog.Names(), ", "))
	fmt.Fprintf(out, "Total Units: %d\n", sum.Units)

	fmt.Fprintf(out, "\nLayers:\n")
	for _, c := range sum.Layers() {
		if c == 0 {
			fmt.Fprintf(out, "  complexity %d: %4d units (inputs)\n", c, sum.UnitsPerLayer[c])
			continue
		}
		fmt.Fprintf(out, "  complexity %d: %4d units, min error %d\n", c, sum.UnitsPerLayer[c], sum.MinErrorPerLayer[c])
	}

	verified := make(map[int]verification, len(r.Verification))
	for _, v := range r.Verification {
		verified[v.Unit] = v
	}

	if !sum.Solved() {
		fmt.Fprintf(out, "\nNo zero-error units found.\n")
	} else {
		fmt.Fprintf(out, "\nZero-error units: %d\n", len(sum.ZeroErrorUnits))
		for _, rule := range sum.Rules {
			status := "verified"
			if v, ok := verified[rule.Unit]; ok && !v.Equivalent {
				status = "differs at " + bits(v.Counterexample)
			}
			fmt.Fprintf(out, "  unit %4d  complexity %d  %-10s %s\n", rule.Unit, rule.Complexity, status, rule.Rule)
		}
	}
	fmt.Fprintf(out, "\nMinimum error: %d\n", sum.MinError)
}

func printAblationReport(out io.Writer, target string, r *ablation.Report) {
	fmt.Fprintf(out, "\n=== Ablation Study ===\n")
	fmt.Fprintf(out, "Target: %s\n", target)
	fmt.Fprintf(out, "Max complexity: %d\n\n", r.MaxComplexity)

	fmt.Fprintf(out, "%-14s %8s %10s %10s  %s\n", "Excluded", "Units", "Zero-err", "Min err", "Complexities")
	for _, res := range append([]ablation.Result{r.Baseline}, r.Ablations...) {
		fmt.Fprintf(out, "%-14s %8d %10d %10d  %v\n", res.ExcludedName, res.Units, res.ZeroErrorUnits, res.MinError, res.Complexities)
		for _, rule := range res.Rules {
			fmt.Fprintf(out, "    unit %4d  complexity %d  %s\n", rule.Unit, rule.Complexity, rule.Rule)
		}
	}

	essential := r.Essential()
	if len(essential) == 0 {
		fmt.Fprintf(out, "\nNo single function is essential.\n")
		return
	}
	names := make([]string, len(essential))
	for i, f := range essential {
		names[i] = f.String()
	}
	fmt.Fprintf(out, "\nEssential functions: %s\n", strings.Join(names, ", "))
}
