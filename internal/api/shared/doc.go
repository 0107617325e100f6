// Package shared contains the HTTP plumbing common to every resource:
// response envelopes, error responses, request decoding, trace-ID
// context, and the query-parameter processors that normalize pagination
// and filter input.
package shared
