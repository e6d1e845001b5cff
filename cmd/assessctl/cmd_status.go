package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:     "status <year> <term>",
	Short:   "查看学期内各班级的评估录入状态",
	Example: "  assessctl status 2025 Spring",
	Args:    cobra.ExactArgs(2),
	RunE:    runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "以 JSON 输出")
}

func runStatus(cmd *cobra.Command, args []string) error {
	year, term, err := semesterArgs(args)
	if err != nil {
		return err
	}
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	status, err := a.svc.Evaluation.GetSemesterStatus(ctx, year, term)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statusJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COURSE\tSECTION\tINSTRUCTOR\tENROLLMENT\tSTATUS")
	for _, s := range status.Sections {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.CourseNumber, s.SectionID, s.InstructorID, s.EnrollmentCount, s.Status)
	}
	return w.Flush()
}
