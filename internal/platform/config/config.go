package config

import (
	"errors"
	"fmt"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

type Server struct {
	Host string `validate:"required"`
	Port int    `validate:"required|uint|min:1"`
}

type Session struct {
	// Firma las cookies de sesión. El default "dev" existe solo para
	// levantar el sitio sin configurar nada; en deploy viene por env.
	Secret string `validate:"required"`
}

type Admin struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type Storage struct {
	// DataDir contiene pets.json y adopters.json.
	DataDir string `validate:"required"`
	// DSN opcional: si viene, se usa Postgres en vez de archivos.
	DSN string
}

type LoggerConfig struct {
	Level string `validate:"required|in:debug,info,warn,error"`
}

type Metrics struct {
	Enabled bool
}

type Config struct {
	AppName string

	Server  Server
	Session Session
	Admin   Admin
	Storage Storage
	Logger  LoggerConfig
	Metrics Metrics
}

// Load arma la configuración con defaults, un config.yaml opcional en
// el directorio de trabajo, y overrides por variables de entorno.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("session.secret", "dev")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin")
	v.SetDefault("storage.datadir", "data")
	v.SetDefault("logger.level", "info")
	v.SetDefault("metrics.enabled", true)

	_ = v.BindEnv("server.host", "HOST")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("session.secret", "SESSION_SECRET")
	_ = v.BindEnv("admin.username", "ADMIN_USER")
	_ = v.BindEnv("admin.password", "ADMIN_PASS")
	_ = v.BindEnv("storage.datadir", "DATA_DIR")
	_ = v.BindEnv("storage.dsn", "DB_DSN")
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("metrics.enabled", "METRICS_ENABLED")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Sin config.yaml se sirve con defaults + env.
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	conf.AppName = "shelter-admin"

	if err := Validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func Validate(conf *Config) error {
	vd := validate.Struct(conf)
	if !vd.Validate() {
		return vd.Errors.OneError()
	}
	return nil
}
