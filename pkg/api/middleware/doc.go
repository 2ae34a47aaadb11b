// Package middleware provides the HTTP middleware used by the routerank API.
//
// Every middleware has the shape func(http.Handler) http.Handler so it can be
// passed to a gorilla/mux router with Use, or wrapped by hand:
//
//	router := mux.NewRouter()
//	router.Use(middleware.PanicRecovery(logger))
//	router.Use(middleware.RequestID())
//	router.Use(middleware.Logging(logger, middleware.GetRequestID))
//	router.Use(middleware.Metrics(registry, middleware.RouteTemplate))
package middleware
