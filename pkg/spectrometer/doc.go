// Package spectrometer holds the wire types the spectrometer toolbox
// server exchanges: the wavelength axis and captured spectrum reports,
// the hardware parameter report, and the parameter update operation.
package spectrometer
