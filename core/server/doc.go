// Package server holds the HTTP listener settings of the picker service: the port
// the start command binds to and the API key the auth middleware checks.
package server
