package structures

type Server struct {
	Host      string `yaml:"host" validate:"required"`
	Port      int    `yaml:"port" validate:"required|uint|min:1"`
	StaticDir string `yaml:"staticDir"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type FileStoreConfig struct {
	Path string `yaml:"path"`
}

type StoreConfig struct {
	Backend string          `yaml:"backend" validate:"required|in:redis,file"`
	Key     string          `yaml:"key" validate:"required"`
	Redis   RedisConfig     `yaml:"redis"`
	File    FileStoreConfig `yaml:"file"`
}

type PaymentConfig struct {
	SecretKey     string `yaml:"secretKey" validate:"required"`
	WebhookSecret string `yaml:"webhookSecret" validate:"required"`
	Currency      string `yaml:"currency" validate:"required"`
	SiteURL       string `yaml:"siteUrl" validate:"required"`
}

type AdminConfig struct {
	Token string `yaml:"token"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Store     StoreConfig   `yaml:"store"`
	Payment   PaymentConfig `yaml:"payment"`
	Admin     AdminConfig   `yaml:"admin"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
