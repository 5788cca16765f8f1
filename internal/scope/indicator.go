package scope

// Deterministic lookup for status-light questions. A question qualifies when
// it mentions an indicator-context word and exactly one recognized color; a
// state word is optional. Combinations without a table entry fall through to
// retrieval instead of guessing.

type color int

const (
	colorGreen color = iota
	colorBlue
	colorRed
	colorAmber
)

type state int

const (
	stateSolid state = iota
	stateFlashing
)

var indicatorContext = toSet([]string{"light", "led", "lamp", "indicator", "status"})

var colorWords = map[string]color{
	"green":  colorGreen,
	"blue":   colorBlue,
	"red":    colorRed,
	"amber":  colorAmber,
	"orange": colorAmber,
}

var stateWords = map[string]state{
	"solid":      stateSolid,
	"steady":     stateSolid,
	"constant":   stateSolid,
	"continuous": stateSolid,
	"flashing":   stateFlashing,
	"blinking":   stateFlashing,
	"blink":      stateFlashing,
	"pulsing":    stateFlashing,
	"flickering": stateFlashing,
}

type indicatorKey struct {
	c color
	s state
}

var indicatorMeanings = map[indicatorKey]string{
	{colorGreen, stateSolid}:    "A solid green light means the Somnair device is fully charged and ready to use.",
	{colorGreen, stateFlashing}: "A flashing green light means the device is charging; leave it on the base until the light turns solid.",
	{colorBlue, stateSolid}:     "A solid blue light means the device is connected to the Somnair app over Bluetooth.",
	{colorBlue, stateFlashing}:  "A flashing blue light means the device is in pairing mode and waiting for the app to connect.",
	{colorRed, stateSolid}:      "A solid red light indicates a device fault. Please stop using the device and contact Somnair support.",
	{colorRed, stateFlashing}:   "A flashing red light means the battery is critically low; charge the device before your next session.",
	{colorAmber, stateSolid}:    "A solid amber light means the battery is low; charge the device soon.",
	{colorAmber, stateFlashing}: "A flashing amber light means a firmware update is in progress; keep the device on its base until it finishes.",
}

// lookupIndicator resolves a (color, state) question to its fixed answer.
// With no recognized state word, both known meanings for the color are
// returned together. The second result reports whether the lookup applies.
func lookupIndicator(tokens []string) (string, bool) {
	hasContext := false
	colors := map[color]struct{}{}
	var c color
	st, hasState := state(0), false
	for _, tok := range tokens {
		if _, ok := indicatorContext[tok]; ok {
			hasContext = true
		}
		if col, ok := colorWords[tok]; ok {
			colors[col] = struct{}{}
			c = col
		}
		if s, ok := stateWords[tok]; ok {
			st, hasState = s, true
		}
	}
	if !hasContext || len(colors) != 1 {
		return "", false
	}
	if hasState {
		answer, ok := indicatorMeanings[indicatorKey{c, st}]
		return answer, ok
	}
	solid, okSolid := indicatorMeanings[indicatorKey{c, stateSolid}]
	flashing, okFlashing := indicatorMeanings[indicatorKey{c, stateFlashing}]
	if !okSolid || !okFlashing {
		return "", false
	}
	return solid + " " + flashing, true
}
