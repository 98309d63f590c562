package sds2000

import (
	"github.com/scope-control/scc/scope"
	"github.com/scope-control/scc/setting"
)

// Valid-value universe of the SDS2000X HD series. Values match the
// front panel; labels are the spellings the SCPI vocabulary accepts.

var instrumentModes = []string{"YT"}

var channelUnits = []string{"V", "A"}

// channelAttens indexes channelScales and channelOffsets.
var channelAttens = []string{"10X", "1X", "0.1X"}

var channelScales = [][]setting.Pair{
	{ // 10X
		{Label: "5M", Num: 0.005}, {Label: "10M", Num: 0.01}, {Label: "20M", Num: 0.02}, {Label: "50M", Num: 0.05},
		{Label: "100M", Num: 0.1}, {Label: "200M", Num: 0.2}, {Label: "500M", Num: 0.5}, {Label: "1", Num: 1.0},
		{Label: "2", Num: 2.0}, {Label: "5", Num: 5.0}, {Label: "10", Num: 10.0}, {Label: "20", Num: 20.0},
		{Label: "50", Num: 50.0}, {Label: "100", Num: 100.0},
	},
	{ // 1X
		{Label: "500U", Num: 0.0005}, {Label: "1M", Num: 0.001}, {Label: "2M", Num: 0.002}, {Label: "5M", Num: 0.005},
		{Label: "10M", Num: 0.01}, {Label: "20M", Num: 0.02}, {Label: "50M", Num: 0.05}, {Label: "100M", Num: 0.1},
		{Label: "200M", Num: 0.2}, {Label: "500M", Num: 0.5}, {Label: "1", Num: 1.0}, {Label: "2", Num: 2.0},
		{Label: "5", Num: 5.0}, {Label: "10", Num: 10.0},
	},
	{ // 0.1X
		{Label: "50U", Num: 50.0e-6}, {Label: "100U", Num: 0.0001}, {Label: "200U", Num: 0.0002}, {Label: "500U", Num: 0.0005},
		{Label: "1M", Num: 0.001}, {Label: "2M", Num: 0.002}, {Label: "5M", Num: 0.005}, {Label: "10M", Num: 0.01},
		{Label: "20M", Num: 0.02}, {Label: "50M", Num: 0.05}, {Label: "100M", Num: 0.1}, {Label: "200M", Num: 0.2},
		{Label: "500M", Num: 0.5}, {Label: "1", Num: 1.0},
	},
}

var channelOffsets = []setting.RangeSpec{
	{0.0, -10.0, 10.0}, // 10X
	{0.0, -10.0, 10.0}, // 1X
	{0.0, -10.0, 10.0}, // 0.1X
}

var channelBandwidths = []string{"FULL", "20M", "200M"}

var channelCouplings = []string{"DC", "AC", "GND"}

// timebaseScales indexes timebaseDelays.
var timebaseScales = []setting.Pair{
	{Label: "1N", Num: 1.0e-9}, {Label: "2N", Num: 2.0e-9}, {Label: "5N", Num: 5.0e-9},
	{Label: "10N", Num: 10.0e-9}, {Label: "20N", Num: 20.0e-9}, {Label: "50N", Num: 50.0e-9},
	{Label: "100N", Num: 100.0e-9}, {Label: "200N", Num: 200.0e-9}, {Label: "500N", Num: 500.0e-9},
	{Label: "1U", Num: 1.0e-6}, {Label: "2U", Num: 2.0e-6}, {Label: "5U", Num: 5.0e-6},
	{Label: "10U", Num: 10.0e-6}, {Label: "20U", Num: 20.0e-6}, {Label: "50U", Num: 50.0e-6},
	{Label: "100U", Num: 100.0e-6}, {Label: "200U", Num: 200.0e-6}, {Label: "500U", Num: 500.0e-6},
	{Label: "1M", Num: 1.0e-3}, {Label: "2M", Num: 2.0e-3}, {Label: "5M", Num: 5.0e-3},
	{Label: "10M", Num: 10.0e-3}, {Label: "20M", Num: 20.0e-3}, {Label: "50M", Num: 50.0e-3},
	{Label: "100M", Num: 100.0e-3}, {Label: "200M", Num: 200.0e-3}, {Label: "500M", Num: 500.0e-3},
	{Label: "1", Num: 1.0}, {Label: "2", Num: 2.0}, {Label: "5", Num: 5.0},
	{Label: "10", Num: 10.0}, {Label: "20", Num: 20.0}, {Label: "50", Num: 50.0},
	{Label: "100", Num: 100.0}, {Label: "200", Num: 200.0}, {Label: "500", Num: 500.0},
	{Label: "1000", Num: 1000.0},
}

// timebaseDelays mirrors timebaseScales position for position. The
// instrument accepts the same delay window at every time scale.
func timebaseDelays() []setting.RangeSpec {
	delays := make([]setting.RangeSpec, len(timebaseScales))
	for i := range delays {
		delays[i] = setting.RangeSpec{0.0, -100.0, 100.0}
	}
	return delays
}

var (
	triggerModes        = []string{"AUTO", "NORM", "SINGLE"}
	triggerTypes        = []string{"EDGE"}
	triggerSlopes       = []string{"RISING", "FALLING", "ALTERNATE"}
	triggerLevels       = setting.RangeSpec{0.0, -4.1, 4.1}
	triggerCouplings    = []string{"DC", "AC", "LFREJECT", "HFREJECT"}
	triggerNoiseRejects = []string{"OFF", "ON"}
)

const numChannels = 4

// newOscilloscope assembles the SDS2000 universe around the driver's
// own dispatch handler.
func newOscilloscope(h scope.Handler) *scope.Oscilloscope {
	o := scope.NewOscilloscope(h, instrumentModes)
	for n := 1; n <= numChannels; n++ {
		o.AddChannel(scope.NewChannel(channelName(n), h, scope.ChannelConfig{
			Units:      channelUnits,
			Attens:     channelAttens,
			Scales:     channelScales,
			Offsets:    channelOffsets,
			Bandwidths: channelBandwidths,
			Couplings:  channelCouplings,
		}))
	}
	o.SetTimebase(scope.NewTimebase(h, scope.TimebaseConfig{
		Scales: timebaseScales,
		Delays: timebaseDelays(),
	}))
	o.SetTrigger(scope.NewTrigger(h, scope.TriggerConfig{
		Modes:        triggerModes,
		Sources:      append(o.Channels(), "LINE"),
		Types:        triggerTypes,
		Polarities:   triggerSlopes,
		Levels:       triggerLevels,
		Couplings:    triggerCouplings,
		NoiseRejects: triggerNoiseRejects,
	}))
	return o
}
