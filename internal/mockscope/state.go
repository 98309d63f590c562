package mockscope

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// channelState holds the vertical settings of one emulated channel.
// Everything is kept as the textual value the SCPI vocabulary
// exchanges.
type channelState struct {
	swit    string
	visible string
	unit    string
	scale   string
	offset  string
	bwl     string
	coup    string
	probe   string
}

func defaultChannelState() channelState {
	return channelState{
		swit:    "ON",
		visible: "ON",
		unit:    "V",
		scale:   "1",
		offset:  "0",
		bwl:     "FULL",
		coup:    "DC",
		probe:   "10X",
	}
}

// State is the emulated instrument state machine. All access is
// mutex-guarded; connections execute commands concurrently.
type State struct {
	mu sync.Mutex

	identity IdentityConfig
	channels []channelState

	timeScale string
	timeDelay string

	trigMode    string
	trigType    string
	trigSource  string
	trigSlope   string
	trigLevel   string
	trigCoup    string
	trigNrej    string
	holdMode    string // OFF, TIME, EVENts
	holdTime    string
	holdEvents  string
	holdStart   string
	running     bool
	measEnabled bool
	measLines   string
	measStyle   string
}

// NewState builds the power-on state of an instrument with the
// configured channel count and identity.
func NewState(cfg *Config) *State {
	s := &State{identity: cfg.Identity}
	s.channels = make([]channelState, cfg.Channels)
	s.reset()
	return s
}

// reset restores power-on defaults. Callers hold no lock; *RST takes
// it through Execute.
func (s *State) reset() {
	for i := range s.channels {
		s.channels[i] = defaultChannelState()
	}
	s.timeScale = "1U"
	s.timeDelay = "0"
	s.trigMode = "AUTO"
	s.trigType = "EDGE"
	s.trigSource = "CH1"
	s.trigSlope = "RISING"
	s.trigLevel = "0"
	s.trigCoup = "DC"
	s.trigNrej = "OFF"
	s.holdMode = "OFF"
	s.holdTime = "8E-09"
	s.holdEvents = "1"
	s.holdStart = "LAST_TRIG"
	s.running = true
	s.measEnabled = false
	s.measLines = "5"
	s.measStyle = "M1"
}

var (
	chanCmdPattern = regexp.MustCompile(`^:CHAN([0-9]+):([A-Z]+)(\?| .*)?$`)
)

// Execute runs one SCPI line and returns the response text and
// whether a response should be written. Writes produce no response;
// unknown queries answer "ERR" the way the real instrument flags a
// vocabulary error.
func (s *State) Execute(line string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := strings.TrimSpace(line)
	switch {
	case cmd == "":
		return "", false
	case cmd == "*IDN?":
		id := s.identity
		return fmt.Sprintf("%s,%s,%s,%s", id.Manufacturer, id.Model, id.Serial, id.Firmware), true
	case cmd == "*OPC?":
		return "1", true
	case cmd == "*RST":
		s.reset()
		return "", false
	case strings.HasPrefix(cmd, ":CHAN"):
		return s.executeChannel(cmd)
	case strings.HasPrefix(cmd, ":TIM:"):
		return s.executeTimebase(cmd)
	case strings.HasPrefix(cmd, ":TRIG:"):
		return s.executeTrigger(cmd)
	case strings.HasPrefix(cmd, ":MEAS"):
		return s.executeMeasure(cmd)
	default:
		return s.unknown(cmd)
	}
}

// unknown answers queries with an error marker and swallows writes.
func (s *State) unknown(cmd string) (string, bool) {
	if strings.HasSuffix(cmd, "?") {
		return "ERR", true
	}
	return "", false
}

func (s *State) executeChannel(cmd string) (string, bool) {
	m := chanCmdPattern.FindStringSubmatch(cmd)
	if m == nil {
		return s.unknown(cmd)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > len(s.channels) {
		return s.unknown(cmd)
	}
	ch := &s.channels[n-1]

	var field *string
	switch m[2] {
	case "SWIT":
		field = &ch.swit
	case "VIS":
		field = &ch.visible
	case "UNIT":
		field = &ch.unit
	case "SCAL":
		field = &ch.scale
	case "OFFS":
		field = &ch.offset
	case "BWL":
		field = &ch.bwl
	case "COUP":
		field = &ch.coup
	case "PROB":
		field = &ch.probe
	default:
		return s.unknown(cmd)
	}

	arg := m[3]
	if arg == "?" {
		return *field, true
	}
	val := strings.TrimSpace(arg)
	if val == "" {
		return s.unknown(cmd)
	}
	// Probe writes carry the VAL, prefix.
	if m[2] == "PROB" {
		val = strings.TrimPrefix(val, "VAL,")
	}
	*field = val
	return "", false
}

func (s *State) executeTimebase(cmd string) (string, bool) {
	switch {
	case cmd == ":TIM:SCAL?":
		return s.timeScale, true
	case strings.HasPrefix(cmd, ":TIM:SCAL "):
		s.timeScale = strings.TrimPrefix(cmd, ":TIM:SCAL ")
		return "", false
	case cmd == ":TIM:DEL?":
		return s.timeDelay, true
	case strings.HasPrefix(cmd, ":TIM:DEL "):
		s.timeDelay = strings.TrimPrefix(cmd, ":TIM:DEL ")
		return "", false
	default:
		return s.unknown(cmd)
	}
}

func (s *State) executeTrigger(cmd string) (string, bool) {
	switch {
	case cmd == ":TRIG:RUN":
		s.running = true
		return "", false
	case cmd == ":TRIG:STOP":
		s.running = false
		return "", false
	case cmd == ":TRIG:STAT?":
		if s.running {
			return "Run", true
		}
		return "Stop", true
	}

	fields := map[string]*string{
		":TRIG:MODE":      &s.trigMode,
		":TRIG:TYPE":      &s.trigType,
		":TRIG:EDGE:SOUR": &s.trigSource,
		":TRIG:EDGE:SLOP": &s.trigSlope,
		":TRIG:EDGE:LEV":  &s.trigLevel,
		":TRIG:EDGE:COUP": &s.trigCoup,
		":TRIG:EDGE:NREJ": &s.trigNrej,
		":TRIG:EDGE:HLDT": &s.holdTime,
	}
	for prefix, field := range fields {
		if cmd == prefix+"?" {
			return *field, true
		}
		if strings.HasPrefix(cmd, prefix+" ") {
			*field = strings.TrimPrefix(cmd, prefix+" ")
			return "", false
		}
	}

	switch {
	case cmd == ":TRIG:EDGE:HOLD?":
		return s.holdMode, true
	case strings.HasPrefix(cmd, ":TRIG:EDGE:HOLD "):
		mode := strings.TrimPrefix(cmd, ":TRIG:EDGE:HOLD ")
		switch strings.ToUpper(mode) {
		case "EVEN", "EVENTS":
			s.holdMode = "EVENts"
		case "TIME":
			s.holdMode = "TIME"
		case "OFF":
			s.holdMode = "OFF"
		default:
			return s.unknown(cmd)
		}
		return "", false
	case cmd == ":TRIG:EDGE:HLDEV?":
		return s.holdEvents, true
	case strings.HasPrefix(cmd, ":TRIG:EDGE:HLDEV "):
		s.holdEvents = strings.TrimPrefix(cmd, ":TRIG:EDGE:HLDEV ")
		return "", false
	case cmd == ":TRIG:EDGE:HST?":
		return s.holdStart, true
	case strings.HasPrefix(cmd, ":TRIG:EDGE:HST "):
		s.holdStart = strings.TrimPrefix(cmd, ":TRIG:EDGE:HST ")
		return "", false
	default:
		return s.unknown(cmd)
	}
}

var measValPattern = regexp.MustCompile(`^:MEAS:ADV:P([0-9]+):VAL\?$`)

func (s *State) executeMeasure(cmd string) (string, bool) {
	switch {
	case cmd == ":MEAS ON":
		s.measEnabled = true
		return "", false
	case cmd == ":MEAS OFF":
		s.measEnabled = false
		return "", false
	case strings.HasPrefix(cmd, ":MEAS:MODE "):
		return "", false
	case strings.HasPrefix(cmd, ":MEAS:ADV:LIN "):
		s.measLines = strings.TrimPrefix(cmd, ":MEAS:ADV:LIN ")
		return "", false
	case cmd == ":MEAS:ADV:LIN?":
		return s.measLines, true
	case strings.HasPrefix(cmd, ":MEAS:ADV:STYL "):
		s.measStyle = strings.TrimPrefix(cmd, ":MEAS:ADV:STYL ")
		return "", false
	case cmd == ":MEAS:ADV:STYL?":
		return s.measStyle, true
	case measValPattern.MatchString(cmd):
		if !s.measEnabled {
			return "ERR", true
		}
		return "0.00E+00", true
	default:
		return s.unknown(cmd)
	}
}
