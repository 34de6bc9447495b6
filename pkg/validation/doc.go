// Package validation holds the FastAPI error envelope every toolbox
// server answers with on a 422: the HTTPValidationError detail list, the
// per-error record, and the loc path fragment that is either an object
// key or an array index.
package validation
