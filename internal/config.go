package internal

import "time"

// Config carries the simulation constants: 300ms history load, 1s echo,
// 15s presence interval by default.
type Config struct {
	LoadDelay        time.Duration `env:"LOAD_DELAY,default=300ms"`
	EchoDelay        time.Duration `env:"ECHO_DELAY,default=1s"`
	PresenceInterval time.Duration `env:"PRESENCE_INTERVAL,default=15s"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
}
