package handler

import (
	"net/http"
	"serenity/config"
	"serenity/di"
	"serenity/shared/logger"
	httpTransport "serenity/transport/http"
	"sync"
)

var (
	once    sync.Once
	gateway *httpTransport.HTTP
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		gateway = di.InitializeService()
	})

	gateway.ServeHTTP(w, r)
}
