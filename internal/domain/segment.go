package domain

// Span is a half-open interval [From, To) of route positions.
type Span struct {
	From int
	To   int
}

// Conflicts reports whether two spans share any stretch of road. Touching
// endpoints do not conflict: a passenger alighting at a stop frees the berth
// for one boarding there.
func (s Span) Conflicts(other Span) bool {
	return !(other.To <= s.From || other.From >= s.To)
}

// AvailableFor reports whether req conflicts with none of the booked spans.
func AvailableFor(booked []Span, req Span) bool {
	for _, b := range booked {
		if b.Conflicts(req) {
			return false
		}
	}
	return true
}
