package main

import (
	"tzconv/config"
	"tzconv/di"
	"tzconv/shared/logger"
	"tzconv/shared/timezone"
)

// @title           tzconv API
// @version         1.0
// @description     Convert datetimes between IANA timezones.
// @BasePath        /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.UseJSONOutput(cfg)

	timezone.Init(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
