// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this
// package only defines the configuration structure embedded by
// core/config (listen port and the optional API key).
package server
