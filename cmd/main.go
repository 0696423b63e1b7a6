package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danil-baybakov/app-clone-twitter/config"
	"github.com/danil-baybakov/app-clone-twitter/internal/api/media"
	"github.com/danil-baybakov/app-clone-twitter/internal/api/tweet"
	"github.com/danil-baybakov/app-clone-twitter/internal/api/user"
	"github.com/danil-baybakov/app-clone-twitter/internal/middleware"
	"github.com/danil-baybakov/app-clone-twitter/internal/repository/mysql"
	"github.com/danil-baybakov/app-clone-twitter/internal/service"
	"github.com/danil-baybakov/app-clone-twitter/internal/storage"
	"github.com/danil-baybakov/app-clone-twitter/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 设置数据库连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.AppConfig.DBUser,
		config.AppConfig.DBPassword,
		config.AppConfig.DBHost,
		config.AppConfig.DBPort,
		config.AppConfig.DBName)

	// 连接数据库
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer db.Close()

	// 测试数据库连接
	err = db.Ping()
	if err != nil {
		util.Logger.Fatal("数据库连接测试失败", zap.Error(err))
	}
	util.Logger.Info("数据库连接成功")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	util.Logger.Info("数据库连接池配置完成")

	// 建表
	if err := mysql.EnsureSchema(db); err != nil {
		util.Logger.Fatal("初始化数据库表结构失败", zap.Error(err))
	}

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("positive_ids", util.ValidatePositiveIDs)
	}

	// 根据配置选择媒体文件归档存储
	blobStorage := initBlobStorage()

	// 初始化存储库、服务和处理器
	userRepo := mysql.NewUserRepository(db)
	tweetRepo := mysql.NewTweetRepository(db)
	mediaRepo := mysql.NewMediaRepository(db)
	likeRepo := mysql.NewLikeRepository(db)
	followerRepo := mysql.NewFollowerRepository(db)

	userService := service.NewUserService(userRepo, followerRepo)
	followerService := service.NewFollowerService(followerRepo)
	tweetService := service.NewTweetService(tweetRepo, mediaRepo, likeRepo, userRepo)
	likeService := service.NewLikeService(likeRepo)
	mediaService := service.NewMediaService(mediaRepo, blobStorage)

	// 空库时写入种子用户，方便前端直接联调
	seedUsersIfEmpty(userService)

	// 初始化指标和错误监控
	metrics := middleware.InitMetrics()
	errorMonitor := middleware.NewErrorMonitor()

	userHandler := user.NewUserHandler(userService, followerService, metrics)
	tweetHandler := tweet.NewTweetHandler(tweetService, mediaService, likeService, metrics)
	mediaHandler := media.NewMediaHandler(mediaService)

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))
	r.Use(middleware.MetricsMiddleware(metrics))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"api-key",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length",
		"Content-Type",
		"Access-Control-Allow-Origin",
	}
	r.Use(cors.New(corsConfig))

	// 存活检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"result": true})
	})

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 定义 API 路由，全部需要 api-key 认证
	api := r.Group(config.AppConfig.BaseURI)
	api.Use(middleware.AuthMiddleware(userService))
	{
		// 用户相关路由
		api.GET("/users/me", userHandler.GetMe)
		api.GET("/users/:id", userHandler.GetUserByID)
		api.POST("/users/:id/follow", userHandler.Follow)
		api.DELETE("/users/:id/follow", userHandler.Unfollow)

		// 推文相关路由
		api.POST("/tweets", tweetHandler.CreateTweet)
		api.GET("/tweets", tweetHandler.GetTweets)
		api.DELETE("/tweets/:id", tweetHandler.DeleteTweet)
		api.POST("/tweets/:id/likes", tweetHandler.Like)
		api.DELETE("/tweets/:id/likes", tweetHandler.Unlike)

		// 媒体文件相关路由
		api.POST("/medias", mediaHandler.Upload)
		api.GET("/medias/:id", mediaHandler.Download)
	}

	// 启动服务器
	srv := &http.Server{
		Addr:    config.AppConfig.Host + ":" + config.AppConfig.Port,
		Handler: r,
	}

	go func() {
		util.Logger.Info("服务器开始监听", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("收到关闭信号，服务器准备关闭")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器关闭失败", zap.Error(err))
	}

	util.Logger.Info("服务器已关闭")
}

// initBlobStorage 根据 MEDIA_STORAGE 配置创建归档存储客户端
// database 模式只存数据库，不写副本
func initBlobStorage() storage.BlobStorage {
	switch config.AppConfig.MediaStorage {
	case "local":
		localStorage, err := storage.NewLocalStorage(config.AppConfig.LocalStoragePath)
		if err != nil {
			util.Logger.Fatal("初始化本地存储失败", zap.Error(err))
		}
		return localStorage
	case "s3":
		s3Client, err := storage.NewS3Client(config.AppConfig.S3Region, config.AppConfig.S3Bucket)
		if err != nil {
			util.Logger.Fatal("初始化 S3 客户端失败", zap.Error(err))
		}
		return s3Client
	case "gcs":
		gcsClient, err := storage.NewGCSClient(
			config.AppConfig.GCSProjectID,
			config.AppConfig.GCSBucketName,
			config.AppConfig.GCSCredentialsFile)
		if err != nil {
			util.Logger.Fatal("初始化 GCS 客户端失败", zap.Error(err))
		}
		return gcsClient
	default:
		return nil
	}
}

// seedUsersIfEmpty 在用户表为空时写入种子用户
func seedUsersIfEmpty(userService service.UserServiceInterface) {
	empty, err := userService.IsEmpty()
	if err != nil {
		util.Logger.Fatal("检查用户表失败", zap.Error(err))
	}
	if !empty {
		return
	}
	if err := userService.SeedUsers(util.SeedUsers); err != nil {
		util.Logger.Fatal("写入种子用户失败", zap.Error(err))
	}
	util.Logger.Info("用户表为空，已写入种子用户")
}
