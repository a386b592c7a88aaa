// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Sessions

WithSession assigns the bookpoll_session cookie to visitors that lack one
and stores the session ID in the request context:

	handler := middleware.WithSession(cfg.SecureCookies, mux)
	sessionID := middleware.SessionID(r)

# CORS Middleware

Enable cross-origin requests for frontend access:

	handler := middleware.CORS(cfg.AllowedOrigin, mux)

With no configured origin any origin may call the API as "*" and no
credentials are allowed. A configured origin also gets credentials, so
the browser sends the session cookie.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (limited to 1 MiB):

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
