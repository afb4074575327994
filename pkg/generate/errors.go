package generate

import "errors"

// ErrUpstream wraps every failure talking to the model provider: network
// errors, non-success responses, and malformed or empty replies. Callers
// surface it as a generic service failure; nothing here is retried.
var ErrUpstream = errors.New("upstream generation failed")
