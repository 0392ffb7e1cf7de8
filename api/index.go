package handler

import (
	"carrental/config"
	"carrental/di"
	"carrental/shared/logger"
	"carrental/shared/timezone"
	"net/http"
	"sync"
)

var (
	handler http.Handler
	once    sync.Once
)

// Handler serves the API as a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		timezone.Init(cfg.App.Timezone)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
