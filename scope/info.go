package scope

// Info carries the identity a concrete driver reads from the
// instrument after attaching. It is embedded by Oscilloscope the way
// drivers embed their transport handle: populated once, then
// read-only.
type Info struct {
	manufacturer string
	model        string
	serial       string
	firmware     string
}

// SetInfo records the instrument identity. Drivers call it from
// Attach after parsing the identification response.
func (i *Info) SetInfo(manufacturer, model, serial, firmware string) {
	i.manufacturer = manufacturer
	i.model = model
	i.serial = serial
	i.firmware = firmware
}

// Manufacturer returns the instrument manufacturer string.
func (i *Info) Manufacturer() string {
	return i.manufacturer
}

// Model returns the instrument model string.
func (i *Info) Model() string {
	return i.model
}

// Serial returns the instrument serial number string.
func (i *Info) Serial() string {
	return i.serial
}

// Firmware returns the instrument firmware revision string.
func (i *Info) Firmware() string {
	return i.firmware
}
