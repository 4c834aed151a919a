// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. It exposes strongly typed settings, including
// the initial item catalog, to the rest of the application.
//
// The exact strategy costs time exponential in catalog size and a running search
// is not cancelled by WriteTimeout. max_exact_items bounds stored catalogs and
// max_inline_exact_items bounds catalogs posted with a request; every extra item
// doubles the worst-case CPU time per request, which the rate limit multiplies.
package config
