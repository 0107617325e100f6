// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients
// and the store layer, translating HTTP concerns to storage operations.
package api
