package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-service/apperrors"
	"admin-service/controllers"
	"admin-service/logger"
	"admin-service/notify"
	"admin-service/repository"
	"admin-service/routes"
	"admin-service/services"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// --- 1. Infrastructure clients ---

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "redis:6379", DB: 0}
	}
	redisClient := redis.NewClient(redisOpts)

	cfgOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.AWSRegion),
	}
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKey != "" || secretKey != "" {
		cfgOpts = append(cfgOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}
	// Custom endpoint resolver for LocalStack
	if cfg.AWSEndpoint != "" {
		cfgOpts = append(cfgOpts, awscfg.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: cfg.AWSEndpoint, SigningRegion: cfg.AWSRegion}, nil
			}),
		))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(), cfgOpts...)
	if err != nil {
		zap.L().Fatal("Failed to load AWS config", zap.Error(err))
	}

	ddbClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
		}
	})

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	presignClient := s3.NewPresignClient(s3Client)

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.SNSTopicARN != "" {
		snsClient := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			if cfg.AWSEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.AWSEndpoint)
			}
		})
		notifier = notify.NewSNSNotifier(snsClient, cfg.SNSTopicARN)
	}

	// --- 2. Dependency injection ---

	customerRepo := repository.NewDynamoCustomerAdapter(ddbClient, cfg.TableCustomers)
	orderRepo := repository.NewDynamoOrderAdapter(ddbClient, cfg.TableOrders)
	productRepo := repository.NewDynamoProductAdapter(ddbClient, cfg.TableProducts)
	categoryRepo := repository.NewDynamoCategoryAdapter(ddbClient, cfg.TableCategories)
	tagRepo := repository.NewDynamoTagAdapter(ddbClient, cfg.TableTags)
	addressRepo := repository.NewDynamoAddressAdapter(ddbClient, cfg.TableAddresses)

	imageStore := services.NewImageStore(s3Client, presignClient, cfg.S3Bucket, cfg.S3Prefix, cfg.S3Endpoint, cfg.CloudfrontDomain)

	customerService := services.NewCustomerService(customerRepo, orderRepo, addressRepo, notifier)
	productService := services.NewProductService(productRepo, categoryRepo, tagRepo, imageStore, notifier)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, notifier)
	tagService := services.NewTagService(tagRepo, notifier)
	orderService := services.NewOrderService(orderRepo, notifier)
	addressService := services.NewAddressService(addressRepo, notifier)

	cacheManager := controllers.NewCacheManager(redisClient)

	customerController := controllers.NewCustomerController(customerService)
	productController := controllers.NewProductController(productService, cacheManager)
	categoryController := controllers.NewCategoryController(categoryService, cacheManager)
	tagController := controllers.NewTagController(tagService, cacheManager)
	orderController := controllers.NewOrderController(orderService)
	addressController := controllers.NewAddressController(addressService)

	// --- 3. HTTP server & middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(apperrors.Middleware())

	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), controllers.DefaultContextTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, customerController, productController, categoryController, tagController, orderController, addressController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// --- 4. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Admin Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Admin Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}

	zap.L().Info("Admin Service stopped gracefully")
}
