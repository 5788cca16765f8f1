// Package hints holds the degraded-answer lookup used when the generator
// fails or reports that it found no usable context. Patterns here are keyed
// on question phrasing and are deliberately separate from the scope
// vocabulary: the scope gate decides whether to try, hints decide what to
// say when trying failed.
package hints

import "regexp"

type hint struct {
	pattern *regexp.Regexp
	text    string
}

// Table matches questions against an ordered list of topic patterns; the
// first match wins.
type Table struct {
	hints []hint
}

// DefaultTable covers the topics users most often ask about when the
// generator is unavailable.
func DefaultTable() *Table {
	return &Table{hints: []hint{
		{
			regexp.MustCompile(`(?i)\b(charg\w*|battery|power)\b`),
			"To charge the Somnair device, place it on its base and connect the supplied USB-C charger. The light turns solid green when fully charged.",
		},
		{
			regexp.MustCompile(`(?i)\b(pair\w*|bluetooth|connect\w*|app)\b`),
			"To pair the device, open the Somnair app, enable Bluetooth, and hold the device button for three seconds until the light flashes blue.",
		},
		{
			regexp.MustCompile(`(?i)\b(clean\w*|wash\w*|hygien\w*|maintain\w*|maintenance)\b`),
			"Clean the mouthpiece after each session with warm water and mild soap, and let it air-dry before placing it back on the base.",
		},
		{
			regexp.MustCompile(`(?i)\b(appointment|book\w*|reschedul\w*|cancel\w*|clinic)\b`),
			"To book, reschedule, or cancel an appointment, contact Somnair support on 0800 555 0199 (Mon-Fri, 9am-5pm) or use the app's Support tab.",
		},
		{
			regexp.MustCompile(`(?i)\b(warranty|replac\w*|spare|parts)\b`),
			"The device carries a two-year warranty; replacement mouthpieces and spare parts are available through Somnair support.",
		},
	}}
}

// Lookup returns the hint for the first pattern the question matches.
func (t *Table) Lookup(question string) (string, bool) {
	for _, h := range t.hints {
		if h.pattern.MatchString(question) {
			return h.text, true
		}
	}
	return "", false
}
