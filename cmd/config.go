package main

import "time"

type Config struct {
	BadgerFilepath   string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	PlatformAPIURL   string        `env:"PLATFORM_API_URL,required=true"`
	PlatformAPIToken string        `env:"PLATFORM_API_TOKEN"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL,default=1m"`
}
