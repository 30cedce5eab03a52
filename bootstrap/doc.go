// Package bootstrap wires the application together: logger, configuration,
// dataset load, analytics engine, and the API server lifecycle.
package bootstrap
