package app

import (
	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/utils"
)

type Config struct {
	RedisAddr string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		RedisAddr: utils.GetEnv("REDIS_ADDR", "", log),
	}
}
