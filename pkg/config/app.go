package config

import "time"

var AppVersion = "DEVELOPMENT"

const (
	AppName        = "applaunch"
	LogFile        = "core.log"
	CfgFile        = "config.toml"
	CommandTimeout = 5 * time.Second
)
