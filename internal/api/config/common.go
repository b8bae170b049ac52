package config

// Config 配置主体，在进程启动时构造一次，按引用传递给需要的组件
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Feishu FeishuConfig `mapstructure:"feishu"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// FeishuConfig 飞书多维表格配置
type FeishuConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	AppToken    string `mapstructure:"app_token"`
	TableID     string `mapstructure:"table_id"`
	AccessToken string `mapstructure:"access_token"`
	PageSize    int    `mapstructure:"page_size"`
	MaxRecords  int    `mapstructure:"max_records"`
}
