// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers and middleware of the JSON API.
// The access gate, session authentication, trace ids and access logging run
// here before a request reaches the service layer.
package http
