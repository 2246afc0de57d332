// Package config reads the YAML description of a mesh run: dimensions, BTU
// physics, cell states, terminals, wavelength sweep and log level.
//
// Example:
//
//	mesh:
//	  rows: 2
//	  cols: 2
//	btu:
//	  loss: 0.5
//	states:
//	  V0_0: [bar]
//	  H1_0: [coupler, 0.5]
//	sources: [0]
//	detectors: [5, 9]
//	sweep:
//	  start: 1.54e-6
//	  stop: 1.56e-6
//	  points: 201
//	log:
//	  level: debug
//
// A frequency-offset sweep replaces start/stop with a GHz window around a
// center frequency, "wl0" (c/wl0, default) or "fc" (c/(ng·wl0)):
//
//	sweep:
//	  center: fc
//	  offset_ghz: [0, 50]
//	  points: 1001
//
// Omitted keys keep their defaults (see Default); unknown keys are
// rejected. Struct tags drive validation through go-playground/validator.
package config
