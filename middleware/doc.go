// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers shared by
every handler in the service.

# Request Logging

WithLogging wraps a handler function and emits structured slog entries when a
request starts and when it completes, including the method, path, and elapsed
time in milliseconds. It is applied per-route in the router rather than
globally so that routes can opt out if they ever need to.

# JSON Helpers

JSONResponse and ErrorResponse centralize response encoding. ErrorResponse
wraps the message in a models.ErrorResponse envelope so clients always see the
same error shape:

	{"error": "Not Found", "message": "unknown prabhag: 99"}

ParseJSONBody decodes a request body into the given destination and closes the
body. Handlers translate a decode failure into a 400.

# CORS

CORS is an http.Handler wrapper applied once around the whole mux in main. It
echoes the request Origin, permits GET and POST, and answers OPTIONS preflight
requests directly. The dashboard frontend is served from a different origin
during development, which is the only reason this exists.
*/
package middleware
