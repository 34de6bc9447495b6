// Package sensor holds the wire types of the sensor toolbox server:
// measurement quantities with unit vocabularies, the data and parameter
// reports, and the parameter-set operation. Field lists mirror
// schemas/sensor.openapi.json.
package sensor
