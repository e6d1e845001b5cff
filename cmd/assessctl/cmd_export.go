package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
)

var (
	exportOutDir    string
	exportThreshold float64
)

var exportCmd = &cobra.Command{
	Use:     "export <year> <term>",
	Short:   "导出学期评估报告（xlsx：录入状态 + 通过率）",
	Example: "  assessctl export 2025 Spring -o ./reports",
	Args:    cobra.ExactArgs(2),
	RunE:    runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", ".", "输出目录")
	exportCmd.Flags().Float64Var(&exportThreshold, "threshold", -1, "通过率阈值（百分比，默认取配置）")
}

func runExport(cmd *cobra.Command, args []string) error {
	year, term, err := semesterArgs(args)
	if err != nil {
		return err
	}

	var threshold *float64
	if cmd.Flags().Changed("threshold") {
		if err := validator.PassThreshold(exportThreshold); err != nil {
			return err
		}
		threshold = &exportThreshold
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	buf, filename, err := a.svc.Export.ExportSemester(ctx, year, term, threshold)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	path := filepath.Join(exportOutDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入文件失败: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "已导出 %s\n", path)
	return nil
}
