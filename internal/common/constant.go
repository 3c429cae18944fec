// Package common holds constants shared by the client and the front server.
package common

// APIPrefix is the versioned path prefix of the backend REST API. The front
// server proxies it and the client addresses the API below it.
const APIPrefix = "/v1"

// RequestIDHeader carries the request id assigned by the front server.
const RequestIDHeader = "X-Request-Id"
