package output

import (
	"fmt"
	"io"

	"github.com/mobil-koeln/flights-cli/internal/models"
)

// TableOptions configures the table output
type TableOptions struct {
	Colors *Colors
}

func (o TableOptions) colors() *Colors {
	if o.Colors == nil {
		return NewColors(ColorNever)
	}
	return o.Colors
}

// RenderSummary renders the "JFK → LAX" header with date and passengers
func RenderSummary(w io.Writer, q models.SearchQuery, opts TableOptions) {
	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("%s → %s", q.Origin, q.Destination))

	details := models.FormatDate(q.DepartDate)
	if q.TripType != models.TripOneWay && q.ReturnDate != "" {
		details += " - " + models.FormatDate(q.ReturnDate)
	}
	details += " • " + models.PassengerLabel(q.Passengers) + " • " + q.TripType.Label()
	_, _ = fmt.Fprintln(w, c.Muted(details))
	_, _ = fmt.Fprintln(w)
}

// RenderOffers renders flight offers as a formatted table
func RenderOffers(w io.Writer, offers []models.FlightOffer, opts TableOptions) {
	if len(offers) == 0 {
		_, _ = fmt.Fprintln(w, "No flights found.")
		return
	}

	c := opts.colors()

	noun := "flights"
	if len(offers) == 1 {
		noun = "flight"
	}
	_, _ = fmt.Fprintln(w, c.Header("%d %s found", len(offers), noun))
	_, _ = fmt.Fprintln(w)

	for _, o := range offers {
		// Airline and flight number (pad to 20 chars)
		airline := truncate(o.Airline, 20)

		// Format: DEP AIRPORT → ARR AIRPORT  DURATION  STOPS  AIRLINE  NUMBER  RATING  PRICE
		_, _ = fmt.Fprintf(w, "%s %s → %s %s  %s  %s  %s %s  %s  %s\n",
			c.Time("%-5s", o.Departure.Time),
			c.Airport("%-3s", o.Departure.Airport),
			c.Time("%-5s", o.Arrival.Time),
			c.Airport("%-3s", o.Arrival.Airport),
			fmt.Sprintf("%-7s", o.Duration),
			c.Stops("%-8s", o.Stops),
			c.Airline("%-20s", airline),
			c.Muted("%-7s", o.FlightNumber),
			c.Rating("★ %s", FormatRating(o.Rating)),
			c.Price("%7s", FormatPrice(o.Price)),
		)
	}
}

// RenderDestinations renders the popular destination list
func RenderDestinations(w io.Writer, dests []models.Destination, opts TableOptions) {
	if len(dests) == 0 {
		_, _ = fmt.Fprintln(w, "No destinations available.")
		return
	}

	c := opts.colors()

	_, _ = fmt.Fprintln(w, c.Header("Popular destinations:"))
	_, _ = fmt.Fprintln(w)

	for _, d := range dests {
		_, _ = fmt.Fprintf(w, "  %s  %-10s %s %s\n",
			c.Airport("%-3s", d.Code),
			d.City,
			c.Muted("%-10s", d.Country),
			c.Price("from %s", FormatPrice(d.Price)),
		)
	}
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
