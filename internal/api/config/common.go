package config

// Config 配置主体
type Config struct {
	Server     ServerConfig       `mapstructure:"server"`
	DB         DBConfig           `mapstructure:"database"`
	Redis      RedisConfig        `mapstructure:"redis"`
	Storage    StorageConfig      `mapstructure:"storage"`
	Feed       FeedConfig         `mapstructure:"feed"`
	RateLimit  RateLimitConfig    `mapstructure:"rate_limit"`
	Cron       CronConfig         `mapstructure:"cron"`
	Logstash   LogstashConfig     `mapstructure:"logstash"`
	Kafka      KafkaConfig        `mapstructure:"kafka"`
	KafkaCanal KafkaCanalConsumer `mapstructure:"kafka_canal_consumer"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"` // gin 运行模式 debug | release | test
	LogLevel    string   `mapstructure:"log_level"`
	CORSOrigins []string `mapstructure:"cors_origins"` // 为空时允许任意来源
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver      string `mapstructure:"driver"` // mysql | postgres | sqlite
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	LogLevel    string `mapstructure:"log_level"`
}

type RedisConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// StorageConfig 媒体存储配置
type StorageConfig struct {
	Driver   string      `mapstructure:"driver"` // local | minio
	LocalDir string      `mapstructure:"local_dir"`
	MinIO    MinIOConfig `mapstructure:"minio"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
}

// FeedConfig Feed 缓存配置，单位秒，0 表示不缓存
type FeedConfig struct {
	CacheTTL int `mapstructure:"cache_ttl"`
}

// RateLimitConfig 按 api-key 限流
type RateLimitConfig struct {
	Enable bool    `mapstructure:"enable"`
	RPS    float64 `mapstructure:"rps"`
	Burst  int     `mapstructure:"burst"`
}

// CronConfig 定时任务
type CronConfig struct {
	MediaCleanSpec string `mapstructure:"media_clean_spec"`
	MediaOrphanTTL int    `mapstructure:"media_orphan_ttl"` // 小时
}

// LogstashConfig 远程日志
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaCanalConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
