// Package stage holds the wire types of the linear stage toolbox server:
// motion quantities with their unit vocabularies, the composite operation
// payload, and the server reports. Field lists mirror
// schemas/stage.openapi.json.
package stage
