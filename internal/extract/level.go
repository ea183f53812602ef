package extract

// Level is a support-ticket severity tier.
type Level string

const (
	L1      Level = "L1"
	L2      Level = "L2"
	L3      Level = "L3"
	Unknown Level = "Unknown"
)

// ParseLevel maps s to a Level. Anything that is not an exact tier name is Unknown.
func ParseLevel(s string) Level {
	switch Level(s) {
	case L1, L2, L3:
		return Level(s)
	default:
		return Unknown
	}
}

func (l Level) String() string { return string(l) }
