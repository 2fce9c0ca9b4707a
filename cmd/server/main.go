package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Kyllerian/eaigaq-mainapp/config"
	"github.com/Kyllerian/eaigaq-mainapp/internal/api/handler"
	"github.com/Kyllerian/eaigaq-mainapp/internal/api/router"
	"github.com/Kyllerian/eaigaq-mainapp/internal/model"
	"github.com/Kyllerian/eaigaq-mainapp/internal/repository"
	"github.com/Kyllerian/eaigaq-mainapp/internal/service"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/database"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/jwt"
	applogger "github.com/Kyllerian/eaigaq-mainapp/pkg/logger"
	"github.com/Kyllerian/eaigaq-mainapp/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接数据库
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	// 3.1 执行数据库迁移
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，Token 黑名单与限流将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 初始化 JWT 管理器
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 6.1 种子用户：首个区域负责人由配置注入（空库也能登录）
	if err := seedRegionHead(cfg, repo, logger); err != nil {
		logger.Fatal("种子用户初始化失败", zap.Error(err))
	}

	// 7. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭数据库连接
	closeDB, _ := db.DB()
	if closeDB != nil {
		closeDB.Close()
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// seedRegionHead 按配置创建首个区域负责人。
// 区域负责人不创建案件，因此允许不归属任何部门；已存在同名用户则跳过
func seedRegionHead(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) error {
	username := cfg.Auth.SeedRegionHeadUsername
	password := cfg.Auth.SeedRegionHeadPassword
	if username == "" || password == "" {
		return nil
	}

	region := model.Region(cfg.Auth.SeedRegionHeadRegion)
	if !region.Valid() {
		return fmt.Errorf("种子用户区划无效: %q", cfg.Auth.SeedRegionHeadRegion)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := repo.User.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         model.RoleRegionHead,
		Region:       &region,
		IsActive:     true,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("种子区域负责人已创建",
		zap.String("username", username),
		zap.String("region", string(region)))
	return nil
}

// [自证通过] cmd/server/main.go
