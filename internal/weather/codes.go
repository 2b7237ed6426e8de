package weather

// Condition is a human description of a WMO weather code.
type Condition struct {
	Text  string
	Emoji string
}

func (c Condition) String() string {
	return c.Text + " " + c.Emoji
}

// Describe maps a WMO weather interpretation code to a Condition.
func Describe(code int) Condition {
	switch {
	case code == 0:
		return Condition{"Clear Sky", "☀️"}
	case code >= 1 && code <= 3:
		return Condition{"Partly Cloudy", "🌤️"}
	case code >= 45 && code <= 48:
		return Condition{"Foggy", "🌫️"}
	case code >= 51 && code <= 67:
		return Condition{"Rain", "🌧️"}
	case code >= 71 && code <= 77:
		return Condition{"Snow", "❄️"}
	case code >= 80 && code <= 82:
		return Condition{"Rain Showers", "☔"}
	case code >= 95 && code <= 99:
		return Condition{"Thunderstorm", "⛈️"}
	default:
		return Condition{"Unknown", "❓"}
	}
}
