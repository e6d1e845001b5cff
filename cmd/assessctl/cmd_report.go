package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
)

var passRateThreshold float64

var passRateCmd = &cobra.Command{
	Use:     "pass-rate <year> <term>",
	Short:   "列出学期内通过率不低于阈值的评估",
	Example: "  assessctl pass-rate 2025 Spring --threshold 80",
	Args:    cobra.ExactArgs(2),
	RunE:    runPassRate,
}

func init() {
	passRateCmd.Flags().Float64Var(&passRateThreshold, "threshold", -1, "通过率阈值（百分比，默认取配置）")
}

func runPassRate(cmd *cobra.Command, args []string) error {
	year, term, err := semesterArgs(args)
	if err != nil {
		return err
	}
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	threshold := a.cfg.Assessment.DefaultPassThreshold
	if cmd.Flags().Changed("threshold") {
		if err := validator.PassThreshold(passRateThreshold); err != nil {
			return err
		}
		threshold = passRateThreshold
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	rows, err := a.svc.Report.SectionsAboveThreshold(ctx, year, term, threshold)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "阈值 %.1f%%，共 %d 条\n", threshold, len(rows))
	fmt.Fprintln(w, "COURSE\tSECTION\tDEGREE\tGOAL\tPASS\tENROLLMENT\tRATE")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.1f%%\n",
			r.CourseNumber, r.SectionID, r.DegreeID, r.GoalCode, r.PassCount, r.EnrollmentCount, r.PassRate)
	}
	return w.Flush()
}
