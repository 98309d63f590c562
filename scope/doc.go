// Package scope models an oscilloscope as a set of validated,
// typed parameter containers.
//
// The Channel, Timebase, and Trigger containers own setting
// primitives configured by a concrete driver with the valid-value
// universe of one instrument model. Every read or write of a
// parameter is mediated by the driver's Handler: reads fetch the
// authoritative value from the instrument and validate it before
// returning, writes validate locally and only then reach the
// instrument. A validation failure never produces hardware traffic.
package scope
