package config

import "os"

func IsDebug() bool {
	return os.Getenv("RAGCONF_DEBUG") == "1"
}
