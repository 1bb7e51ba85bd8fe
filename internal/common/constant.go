package common

// AuthorizationHeaderName carries the bearer token on HTTP API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in the Authorization header value.
const BearerPrefix = "Bearer "
