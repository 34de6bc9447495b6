// Package wire defines the object contract shared by every generated
// toolbox API type: per-field presence and validity flags, lenient JSON
// extraction, and the emission rules that keep unset fields off the wire.
// Parsing never returns an error; malformed payloads leave fields unset
// and callers query IsValid (or FieldStates) to find out what happened.
// Concrete types live in the device packages (shutter, stage, sensor,
// spectrometer) and in validation; this package only holds the building
// blocks they share.
package wire
