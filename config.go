package main

import "os"

// Config holds all environment variables for the admin service.
type Config struct {
	Env  string // "production" or "development"
	Port string // Service port (default: 8086)

	AWSRegion   string
	AWSEndpoint string // e.g. http://localstack:4566

	S3Bucket         string
	S3Prefix         string
	S3Endpoint       string
	CloudfrontDomain string

	RedisURL    string
	SNSTopicARN string // empty means log-only notifications

	TableCustomers  string
	TableOrders     string
	TableProducts   string
	TableCategories string
	TableTags       string
	TableAddresses  string
}

// LoadConfig reads environment variables into a Config, applying the
// defaults used by the local compose setup.
func LoadConfig() *Config {
	cfg := &Config{
		Env:              os.Getenv("APP_ENV"),
		Port:             getEnv("PORT", "8086"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:      os.Getenv("AWS_ENDPOINT"),
		S3Bucket:         getEnv("AWS_S3_BUCKET", "shopswift"),
		S3Prefix:         getEnv("AWS_S3_PREFIX", "products/"),
		S3Endpoint:       os.Getenv("AWS_S3_ENDPOINT"),
		CloudfrontDomain: os.Getenv("AWS_CLOUDFRONT_DOMAIN"),
		RedisURL:         getEnv("REDIS_URL", "redis://redis:6379"),
		SNSTopicARN:      os.Getenv("SNS_ADMIN_EVENTS_TOPIC_ARN"),
		TableCustomers:   getEnv("DDB_TABLE_CUSTOMERS", "Customers"),
		TableOrders:      getEnv("DDB_TABLE_ORDERS", "Orders"),
		TableProducts:    getEnv("DDB_TABLE_PRODUCTS", "Products"),
		TableCategories:  getEnv("DDB_TABLE_CATEGORIES", "Categories"),
		TableTags:        getEnv("DDB_TABLE_TAGS", "Tags"),
		TableAddresses:   getEnv("DDB_TABLE_ADDRESSES", "Addresses"),
	}
	if cfg.S3Endpoint == "" {
		cfg.S3Endpoint = cfg.AWSEndpoint
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
