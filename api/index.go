package handler

import (
	"net/http"
	"proccms/config"
	"proccms/di"
	"proccms/shared/logger"
	"sync"
)

// app is built once per warm instance and reused across invocations.
var app = sync.OnceValue(func() http.Handler {
	logger.InitLogger()
	logger.SetLogLevel(config.Get())

	return di.InitializeService().Adaptor()
})

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	app().ServeHTTP(w, r)
}
