// Package api exposes graph parsing, rule enumeration, rule application,
// diagram rendering, and derivation sessions over HTTP.
//
// All endpoints are versioned under /v1 and exchange JSON, except
// /v1/render which returns image bytes. Errors carry the coded error's
// code and message in a JSON body, with the HTTP status derived from the
// code (MALFORMED_INPUT and INVALID_* map to 400, *_NOT_FOUND to 404,
// everything else to 500).
package api
