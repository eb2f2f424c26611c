package models

// Clone returns a deep copy of the aggregate. Export freezes the session's
// itinerary through this; the pipeline only ever sees the copy.
func (it Itinerary) Clone() Itinerary {
	out := it
	out.Days = append([]Day(nil), it.Days...)
	out.Flights = append([]Flight(nil), it.Flights...)
	out.Hotels = append([]Hotel(nil), it.Hotels...)
	out.Installments = append([]Installment(nil), it.Installments...)
	out.ImportantNotes = append([]Note(nil), it.ImportantNotes...)
	out.ScopeOfService = append([]Service(nil), it.ScopeOfService...)
	out.Inclusions = append([]Inclusion(nil), it.Inclusions...)
	out.Activities = append([]Activity(nil), it.Activities...)
	return out
}
