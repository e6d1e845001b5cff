// assessctl 评估系统运维命令行：迁移、录入状态、通过率报表与 Excel 导出
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Keaton-Harvey/DatabasesProject/config"
	"github.com/Keaton-Harvey/DatabasesProject/internal/repository"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	"github.com/Keaton-Harvey/DatabasesProject/internal/validator"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/database"
	applogger "github.com/Keaton-Harvey/DatabasesProject/pkg/logger"
)

var (
	configPath string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "assessctl",
	Short:         "学位目标评估系统运维工具",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找 ./config/config.yaml）")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "单条命令超时时间")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(passRateCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// app 命令执行所需的依赖
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	svc    *service.Service
}

// bootstrap 加载配置并连接数据库；调用方负责 close
func bootstrap() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}
	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		svc:    service.NewService(cfg, repository.NewRepository(db), logger),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}

// semesterArgs 解析位置参数 <year> <term>
func semesterArgs(args []string) (int, string, error) {
	if err := validator.YearString(args[0]); err != nil {
		return 0, "", err
	}
	if err := validator.Term(args[1]); err != nil {
		return 0, "", err
	}
	year, _ := strconv.Atoi(args[0])
	return year, args[1], nil
}
