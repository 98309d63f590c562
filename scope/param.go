package scope

// Param identifies which logical instrument parameter a dispatch call
// concerns. The set is closed: a new controllable parameter means a
// new tag here and a new branch in each driver's Dispatch, not a new
// container type.
type Param int

const (
	Mode Param = iota
	ChanState
	ChanVisible
	ChanUnit
	ChanScale
	ChanOffset
	ChanBandwidth
	ChanCoupling
	ChanAtten
	TimeScale
	TimeDelay
	TrigMode
	TrigSource
	TrigType
	TrigPolarity
	TrigLevel
	TrigCoupling
	TrigNoiseReject
	TrigHoldoff
	TrigHoldoffs
)

var paramNames = map[Param]string{
	Mode:            "mode",
	ChanState:       "ch.state",
	ChanVisible:     "ch.visible",
	ChanUnit:        "ch.unit",
	ChanScale:       "ch.scale",
	ChanOffset:      "ch.offset",
	ChanBandwidth:   "ch.bandwidth",
	ChanCoupling:    "ch.coupling",
	ChanAtten:       "ch.atten",
	TimeScale:       "time.scale",
	TimeDelay:       "time.delay",
	TrigMode:        "trigger.mode",
	TrigSource:      "trigger.source",
	TrigType:        "trigger.type",
	TrigPolarity:    "trigger.polarity",
	TrigLevel:       "trigger.level",
	TrigCoupling:    "trigger.coupling",
	TrigNoiseReject: "trigger.noiseReject",
	TrigHoldoff:     "trigger.holdoff",
	TrigHoldoffs:    "trigger.holdoffs",
}

func (p Param) String() string {
	if s, ok := paramNames[p]; ok {
		return s
	}
	return "unknown"
}
