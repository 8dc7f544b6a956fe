// Package server exposes the analysis pipeline over a small HTTP API.
//
// Routes:
//
//	GET  /healthz      liveness check with build version
//	POST /v1/analyze   analyze an inline manifest document
//	POST /v1/diagram   render an inline manifest as diagram text
//
// Both POST routes take a JSON body {"manifest": {...}, "target": "..."};
// /v1/diagram additionally honors the format, detailed, and refresh query
// parameters and returns plain text with X-Cache and X-Graph-Hash headers.
//
// Errors come back as {"code": "...", "message": "..."} with the
// structured error code mapped to an HTTP status.
package server
