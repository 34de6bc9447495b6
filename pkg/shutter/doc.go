// Package shutter holds the wire types of the shutter toolbox server:
// the REST resources under /shutter plus the WebSocket command
// acknowledgement. The field lists mirror schemas/shutter.openapi.json;
// run cmd/toolbox-modelcheck after editing either side.
package shutter
