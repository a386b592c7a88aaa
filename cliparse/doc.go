// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadEnvFile reads a .env file first, if present. Values already set in the
environment win over the file.

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreBackend: memory, badger, postgres or sqlite (default: memory)
  - DatabaseURL: connection string for the postgres and sqlite backends
  - BadgerPath: data directory for the badger backend
  - AllowedOrigin: CORS origin (default: "*" without credentials)
  - SecureCookies: mark the session cookie Secure

# CLI Flags

	-p               Server port
	-s               Store backend
	-d               Database URL
	-badger-path     Badger data directory
	-origin          Allowed CORS origin
	-secure-cookies  Secure session cookie

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_BACKEND  → -s
	DATABASE_URL   → -d
	BADGER_PATH    → -badger-path
	ALLOWED_ORIGIN → -origin
	SECURE_COOKIES → -secure-cookies

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if the backend is unknown or its location is
missing:

  - badger requires BADGER_PATH
  - postgres and sqlite require DATABASE_URL
*/
package cliparse
