// Package common contains shared constants and sentinel errors used across
// signly components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// ErrorDomain identifies signly in structured error details.
const ErrorDomain = "signly"
