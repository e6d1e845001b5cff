package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Keaton-Harvey/DatabasesProject/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "执行数据库迁移（建表与约束）",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		sqlDB, err := a.db.DB()
		if err != nil {
			return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
		}
		if err := database.RunMigrations(sqlDB, a.logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "迁移完成")
		return nil
	},
}
