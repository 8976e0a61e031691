package views

import (
	"time"

	"github.com/agentstation/catchlog/pkg/catches"
)

// CardView is the display form of one catch.
type CardView struct {
	ID         string
	Species    string
	LengthCm   string
	WeightKg   string
	CapturedAt string
	Released   string
	Technique  string
	Location   string
	Weather    string
	WaterTempC string
	Notes      []string
}

// Card formats c for display. Timestamps are shown in loc (time.Local when
// nil); unparsable ones are shown as received.
func Card(c catches.Catch, loc *time.Location) CardView {
	if loc == nil {
		loc = time.Local
	}
	at := c.CapturedAt
	if t, err := catches.ParseTimestamp(at, loc); err == nil {
		at = t.In(loc).Format("02/01/2006 15:04")
	}
	released := "Non"
	if c.Released {
		released = "Oui"
	}
	return CardView{
		ID:         c.ID,
		Species:    c.Species,
		LengthCm:   catches.FormatDecimal(c.LengthCm),
		WeightKg:   catches.FormatDecimal(c.WeightKg),
		CapturedAt: at,
		Released:   released,
		Technique:  c.Technique,
		Location:   c.Location,
		Weather:    c.Weather,
		WaterTempC: catches.FormatDecimal(c.WaterTempC),
		Notes:      c.Notes,
	}
}

// Cards formats a list of catches.
func Cards(list []catches.Catch, loc *time.Location) []CardView {
	cards := make([]CardView, 0, len(list))
	for _, c := range list {
		cards = append(cards, Card(c, loc))
	}
	return cards
}
