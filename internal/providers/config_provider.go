package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"fitbook/internal/structures"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	// secrets never live in the config file
	viper.BindEnv("admin.token", "FITBOOK_ADMIN_TOKEN")
	viper.BindEnv("payment.secretKey", "STRIPE_SECRET_KEY")
	viper.BindEnv("payment.webhookSecret", "STRIPE_WEBHOOK_SECRET")
	viper.BindEnv("store.redis.addr", "FITBOOK_REDIS_ADDR")
	viper.BindEnv("store.redis.password", "FITBOOK_REDIS_PASSWORD")
	viper.BindEnv("logger.level", "FITBOOK_LOG_LEVEL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "TrainerBookingService"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
