package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/mobil-koeln/flights-cli/internal/models"
	"github.com/mobil-koeln/flights-cli/internal/search"
	"github.com/mobil-koeln/flights-cli/internal/session"
	"github.com/mobil-koeln/flights-cli/internal/testutil"
)

func newTestModel() Model {
	m := New(Options{Searcher: search.NewCatalogSearcher(search.WithDelay(0))})
	m.width = 120
	m.height = 60
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var newModel tea.Model
		newModel, cmd = m.Update(k)
		m = newModel.(Model)
	}
	return m, cmd
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fillForm types a complete query into the form.
func fillForm(t *testing.T, m Model) Model {
	t.Helper()
	m.setFocus(focusOrigin)
	m, _ = press(t, m, runes("JFK"))
	m.setFocus(focusDestination)
	m, _ = press(t, m, runes("LAX"))
	m.setFocus(focusDepart)
	m, _ = press(t, m, runes("2025-06-01"))
	return m
}

func TestNew(t *testing.T) {
	m := New(Options{})

	testutil.AssertTrue(t, m.searcher != nil)
	testutil.AssertTrue(t, m.log != nil)
	testutil.AssertEqual(t, m.timeout, defaultSearchTimeout)
	testutil.AssertEqual(t, m.focus, focusOrigin)
	testutil.AssertTrue(t, m.originInput.Focused())
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
	testutil.AssertEqual(t, m.state.Query.Passengers, 1)
	testutil.AssertEqual(t, m.state.Query.TripType, models.TripRoundTrip)
	testutil.AssertLen(t, m.destinations, 6)
}

func TestModel_Init(t *testing.T) {
	m := New(Options{})
	cmd := m.Init()
	testutil.AssertTrue(t, cmd != nil)
}

func TestModel_WindowSize(t *testing.T) {
	m := New(Options{})
	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = newModel.(Model)
	testutil.AssertEqual(t, m.width, 80)
	testutil.AssertEqual(t, m.height, 24)
}

func TestModel_TypingSyncsQuery(t *testing.T) {
	m := fillForm(t, newTestModel())

	testutil.AssertEqual(t, m.state.Query.Origin, "JFK")
	testutil.AssertEqual(t, m.state.Query.Destination, "LAX")
	testutil.AssertEqual(t, m.state.Query.DepartDate, "2025-06-01")
}

func TestModel_DigitsTypedIntoInputs(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusDepart)

	// Digits are text here, not tab shortcuts
	m, _ = press(t, m, runes("3"))
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
	testutil.AssertEqual(t, m.state.Query.DepartDate, "3")
}

func TestModel_FocusCycle(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusTrip)

	want := []focusField{focusOrigin, focusSwap, focusDestination, focusDepart, focusReturn, focusPassengers, focusSubmit, focusTiles, focusTrip}
	for _, f := range want {
		m, _ = press(t, m, key(tea.KeyTab))
		testutil.AssertEqual(t, m.focus, f)
	}

	m, _ = press(t, m, key(tea.KeyShiftTab))
	testutil.AssertEqual(t, m.focus, focusTiles)
}

func TestModel_FocusSkipsReturnForOneWay(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusTrip)
	m, _ = press(t, m, runes("l"), key(tea.KeyEnter))
	testutil.AssertEqual(t, m.state.Query.TripType, models.TripOneWay)

	m.setFocus(focusDepart)
	m, _ = press(t, m, key(tea.KeyTab))
	testutil.AssertEqual(t, m.focus, focusPassengers)
}

func TestModel_TripTypeToggle(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusTrip)
	testutil.AssertEqual(t, m.tripCursor, 0)

	m, _ = press(t, m, runes("l"), runes(" "))
	testutil.AssertEqual(t, m.state.Query.TripType, models.TripOneWay)

	m, _ = press(t, m, runes("h"), key(tea.KeyEnter))
	testutil.AssertEqual(t, m.state.Query.TripType, models.TripRoundTrip)
}

func TestModel_SwapLocations(t *testing.T) {
	m := fillForm(t, newTestModel())

	m, _ = press(t, m, key(tea.KeyCtrlX))
	testutil.AssertEqual(t, m.state.Query.Origin, "LAX")
	testutil.AssertEqual(t, m.state.Query.Destination, "JFK")
	testutil.AssertEqual(t, m.originInput.Value(), "LAX")
	testutil.AssertEqual(t, m.destInput.Value(), "JFK")

	m.setFocus(focusSwap)
	m, _ = press(t, m, key(tea.KeyEnter))
	testutil.AssertEqual(t, m.state.Query.Origin, "JFK")
	testutil.AssertEqual(t, m.destInput.Value(), "LAX")
}

func TestModel_Passengers(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusPassengers)

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, runes("+"))
	}
	testutil.AssertEqual(t, m.state.Query.Passengers, models.MaxPassengers)

	m, _ = press(t, m, runes("h"))
	testutil.AssertEqual(t, m.state.Query.Passengers, models.MaxPassengers-1)

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, runes("-"))
	}
	testutil.AssertEqual(t, m.state.Query.Passengers, models.MinPassengers)
}

func TestModel_SelectTile(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusTiles)

	m, _ = press(t, m, runes("l"), runes("j"), key(tea.KeyEnter))
	testutil.AssertEqual(t, m.tileCursor, 4)
	testutil.AssertEqual(t, m.state.Query.Destination, "DXB")
	testutil.AssertEqual(t, m.destInput.Value(), "DXB")
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
}

func TestNew_StartView(t *testing.T) {
	m := New(Options{StartView: session.ViewExplore})
	testutil.AssertEqual(t, m.state.View, session.ViewExplore)

	m = New(Options{StartView: session.ViewResults})
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
}

func TestModel_SubmitIncomplete(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusOrigin)
	m, _ = press(t, m, runes("JFK"))

	m, cmd := press(t, m, key(tea.KeyEnter))
	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
	testutil.AssertTrue(t, m.state.Status.Failed())
	testutil.AssertEqual(t, m.state.Status.Message, models.MissingFieldsMessage)
	testutil.AssertFalse(t, m.state.Searched())
}

func TestModel_SubmitStartsSearch(t *testing.T) {
	m := fillForm(t, newTestModel())

	m, cmd := press(t, m, key(tea.KeyEnter))
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.cancel != nil)
	testutil.AssertEqual(t, m.state.View, session.ViewResults)
	testutil.AssertTrue(t, m.state.Status.Loading())
	testutil.AssertEqual(t, m.submitted.Origin, "JFK")
	testutil.AssertEqual(t, m.state.Seq(), 1)
}

func TestModel_SubmitFromButton(t *testing.T) {
	m := fillForm(t, newTestModel())
	m.setFocus(focusSubmit)

	m, cmd := press(t, m, key(tea.KeyEnter))
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertEqual(t, m.state.View, session.ViewResults)
}

func TestModel_SearchResult(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))

	newModel, _ := m.Update(searchResultMsg{seq: 1, offers: search.DefaultOffers()})
	m = newModel.(Model)

	testutil.AssertEqual(t, m.state.Status.Phase, session.PhaseSuccess)
	testutil.AssertLen(t, m.state.Status.Offers, 3)
	testutil.AssertTrue(t, m.cancel == nil)
}

func TestModel_SearchResultError(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))

	newModel, _ := m.Update(searchResultMsg{seq: 1, err: errors.New("boom")})
	m = newModel.(Model)

	testutil.AssertTrue(t, m.state.Status.Failed())
	testutil.AssertEqual(t, m.state.Status.Message, session.SearchFailedMessage)
	testutil.AssertEqual(t, m.state.View, session.ViewResults)
}

func TestModel_StaleResultIgnored(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))
	m.state.SetView(session.ViewSearch)
	m.setFocus(focusSubmit)
	m, _ = press(t, m, key(tea.KeyEnter))
	testutil.AssertEqual(t, m.state.Seq(), 2)

	newModel, _ := m.Update(searchResultMsg{seq: 1, offers: search.DefaultOffers()})
	m = newModel.(Model)
	testutil.AssertTrue(t, m.state.Status.Loading())

	newModel, _ = m.Update(searchResultMsg{seq: 2, offers: []models.FlightOffer{}})
	m = newModel.(Model)
	testutil.AssertEqual(t, m.state.Status.Phase, session.PhaseSuccess)
	testutil.AssertLen(t, m.state.Status.Offers, 0)
}

func TestModel_NewSearchCancelsPrevious(t *testing.T) {
	m := fillForm(t, newTestModel())

	cancelled := false
	m.cancel = func() { cancelled = true }

	m.setFocus(focusSubmit)
	m, _ = press(t, m, key(tea.KeyEnter))
	testutil.AssertTrue(t, cancelled)
	testutil.AssertTrue(t, m.cancel != nil)
}

func TestModel_IncompleteSubmitCancelsInFlight(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))
	testutil.AssertTrue(t, m.state.Status.Loading())

	cancelled := false
	m.cancel = func() { cancelled = true }

	m.state.SetView(session.ViewSearch)
	m.setFocus(focusOrigin)
	m.originInput.SetValue("")
	m.setFocus(focusSubmit)
	m, cmd := press(t, m, key(tea.KeyEnter))

	testutil.AssertTrue(t, cmd == nil)
	testutil.AssertTrue(t, cancelled)
	testutil.AssertTrue(t, m.cancel == nil)
	testutil.AssertTrue(t, m.state.Status.Failed())
}

func TestModel_QuitDisposes(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))

	cancelled := false
	m.cancel = func() { cancelled = true }

	m, cmd := press(t, m, key(tea.KeyCtrlC))
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, cancelled)
	testutil.AssertTrue(t, m.state.Disposed())

	// A late result is not applied
	newModel, _ := m.Update(searchResultMsg{seq: 1, offers: search.DefaultOffers()})
	m = newModel.(Model)
	testutil.AssertTrue(t, m.state.Status.Loading())
}

func TestModel_QuitKeyOutsideInputs(t *testing.T) {
	m := newTestModel()
	m.setFocus(focusPassengers)

	m, cmd := press(t, m, runes("q"))
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.state.Disposed())
}

func TestModel_TabKeys(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, key(tea.KeyF3))
	testutil.AssertEqual(t, m.state.View, session.ViewExplore)

	m, _ = press(t, m, runes("4"))
	testutil.AssertEqual(t, m.state.View, session.ViewTrips)

	m, _ = press(t, m, key(tea.KeyF1))
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
	testutil.AssertTrue(t, m.originInput.Focused())
}

func TestModel_ResultsTabRequiresSearch(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, key(tea.KeyF2))
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)

	m = fillForm(t, m)
	m, _ = press(t, m, key(tea.KeyEnter), key(tea.KeyF3), key(tea.KeyF2))
	testutil.AssertEqual(t, m.state.View, session.ViewResults)
}

func TestModel_ResultsKeys(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))
	newModel, _ := m.Update(searchResultMsg{seq: 1, offers: search.DefaultOffers()})
	m = newModel.(Model)

	m, _ = press(t, m, runes("j"), runes("j"), runes("j"))
	testutil.AssertEqual(t, m.resultCursor, 2)

	m, _ = press(t, m, runes("k"))
	testutil.AssertEqual(t, m.resultCursor, 1)

	m, _ = press(t, m, runes("s"))
	testutil.AssertEqual(t, m.sortOrder, models.SortCheapest)
	testutil.AssertEqual(t, m.resultCursor, 0)
	testutil.AssertEqual(t, m.sortedOffers()[0].FlightNumber, "UA9012")

	m, _ = press(t, m, runes("s"))
	testutil.AssertEqual(t, m.sortOrder, models.SortFastest)
	testutil.AssertEqual(t, m.sortedOffers()[0].FlightNumber, "AA1234")

	m, _ = press(t, m, runes("e"))
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
	// The stored offers keep catalog order
	testutil.AssertEqual(t, m.state.Status.Offers[0].FlightNumber, "AA1234")
}

func TestModel_RetryAfterFailure(t *testing.T) {
	m := fillForm(t, newTestModel())
	m, _ = press(t, m, key(tea.KeyEnter))
	newModel, _ := m.Update(searchResultMsg{seq: 1, err: errors.New("boom")})
	m = newModel.(Model)

	m, cmd := press(t, m, runes("r"))
	testutil.AssertTrue(t, cmd != nil)
	testutil.AssertTrue(t, m.state.Status.Loading())
	testutil.AssertEqual(t, m.state.Seq(), 2)
}

func TestModel_ExploreSelect(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, key(tea.KeyF3), runes("l"), runes("l"), key(tea.KeyEnter))

	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
	testutil.AssertEqual(t, m.state.Query.Destination, "PAR")
	testutil.AssertEqual(t, m.destInput.Value(), "PAR")
	testutil.AssertEqual(t, m.focus, focusDepart)
}

func TestModel_TripsBackToSearch(t *testing.T) {
	m := newTestModel()
	m, _ = press(t, m, key(tea.KeyF4), key(tea.KeyEnter))
	testutil.AssertEqual(t, m.state.View, session.ViewSearch)
}

func TestModel_SpinnerStopsWhenIdle(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(m.spinner.Tick())
	testutil.AssertTrue(t, cmd == nil)
}

func TestRunSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := search.NewMockSearcher(ctrl)

	q := models.SearchQuery{Origin: "JFK", Destination: "LAX", DepartDate: "2025-06-01", Passengers: 1, TripType: models.TripOneWay}
	mock.EXPECT().Search(gomock.Any(), q).Return(search.DefaultOffers(), nil)

	msg := runSearch(context.Background(), mock, session.Ticket{Seq: 7, Query: q})()
	result, ok := msg.(searchResultMsg)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, result.seq, 7)
	testutil.AssertLen(t, result.offers, 3)
	testutil.AssertNil(t, result.err)
}

func TestRunSearch_Cancelled(t *testing.T) {
	s := search.NewCatalogSearcher(search.WithDelay(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := runSearch(ctx, s, session.Ticket{Seq: 1})().(searchResultMsg)
	testutil.AssertErrorIs(t, msg.err, context.Canceled)
}

func TestModel_EndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := search.NewMockSearcher(ctrl)
	mock.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.SearchQuery) ([]models.FlightOffer, error) {
			testutil.AssertEqual(t, q.Origin, "JFK")
			return search.DefaultOffers(), nil
		},
	)

	m := New(Options{Searcher: mock})
	m.width, m.height = 120, 60
	m = fillForm(t, m)
	m, _ = press(t, m, key(tea.KeyEnter))

	msg := runSearch(context.Background(), m.searcher, session.Ticket{Seq: m.state.Seq(), Query: m.submitted})()
	newModel, _ := m.Update(msg)
	m = newModel.(Model)

	testutil.AssertEqual(t, m.state.Status.Phase, session.PhaseSuccess)
	testutil.AssertContains(t, m.View(), "3 flights found")
}
