// Package config provides centralized application configuration.
//
// Configuration is assembled from partial configs owned by the packages they
// describe (server, logger, fetch, snapshot, search, database, storage).
// Values come from environment variables, optionally seeded from a .env file,
// with defaults declared as struct tags on the partial configs.
//
// Environment variables map to nested keys by underscore, e.g.
// SOURCE_BASE_URL -> source.base_url, CACHE_BACKEND -> cache.backend.
package config
