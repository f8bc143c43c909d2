package datemath

// Canonical layouts for stored event fields.
const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	ShortTimeLayout = "15:04"
)

// fragmentSeparator joins inference fragments so no pattern can span two of them.
const fragmentSeparator = " | "

// Result is the outcome of running both inferrers over the same input.
// An empty field means no confident match.
type Result struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// HasDate reports whether a date was inferred.
func (r Result) HasDate() bool { return r.Date != "" }

// HasTime reports whether a time was inferred.
func (r Result) HasTime() bool { return r.Time != "" }

// ValueKind tags the shape of a loosely typed date/time field.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindNativeDate
	KindNativeTime
	KindRaw
)

func (k ValueKind) String() string {
	switch k {
	case KindNativeDate:
		return "native_date"
	case KindNativeTime:
		return "native_time"
	case KindRaw:
		return "raw"
	default:
		return "empty"
	}
}
