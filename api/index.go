// Package handler exposes the front desk API as a single serverless function.
package handler

import (
	"net/http"
	"suitespot/config"
	"suitespot/di"
	"suitespot/shared/logger"
	"sync"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler serves one request. The dependency graph is built on the first call and
// reused while the function instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		app = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
