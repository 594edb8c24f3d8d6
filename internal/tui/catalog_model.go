package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/pokecatch/internal/catalog"
	"github.com/rshade/pokecatch/internal/logging"
	listview "github.com/rshade/pokecatch/internal/tui/list"
	"github.com/rshade/pokecatch/internal/view"
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyLoadMore = "m"
	keyPlus     = "+"
	keyReload   = "r"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 40
	// chromeHeight is the lines used by title, search box, status and footer.
	chromeHeight = 9
	// progressBuffer bounds queued progress updates; extra ones are dropped.
	progressBuffer = 64
)

// ViewState represents the current screen of the catalog view.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the latest cycle is outstanding.
	ViewStateLoading ViewState = iota
	// ViewStateGrid shows the card grid.
	ViewStateGrid
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

// Fetcher runs one full fetch cycle for a limit.
type Fetcher interface {
	Fetch(ctx context.Context, limit int, progress catalog.ProgressFunc) ([]catalog.Pokemon, error)
}

// Options configures a CatalogModel.
type Options struct {
	// Limit is the initial page size.
	Limit int
	// Step is how much "load more" grows the page size.
	Step int
	// Query pre-fills the search box.
	Query string
}

// cycleDoneMsg carries the result of a fetch cycle.
type cycleDoneMsg struct {
	generation uint64
	cycleID    string
	records    []catalog.Pokemon
	err        error
}

// cycleProgressMsg reports resolved detail records of a cycle.
type cycleProgressMsg struct {
	generation uint64
	done       int
	total      int
	updates    <-chan cycleProgressMsg
}

// CatalogModel is the Bubble Tea model for the searchable card grid.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type CatalogModel struct {
	ctx     context.Context
	fetcher Fetcher
	step    int

	state     view.State
	viewState ViewState

	search    textinput.Model
	searching bool
	spinner   spinner.Model
	grid      *listview.Model[GridRow]

	width  int
	height int

	// Latest cycle bookkeeping.
	cycleID     string
	cancelCycle context.CancelFunc
	resolved    int
	total       int
}

// NewCatalogModel creates the model. The first fetch cycle starts from Init.
func NewCatalogModel(ctx context.Context, fetcher Fetcher, opts Options) CatalogModel {
	m := CatalogModel{
		ctx:       ctx,
		fetcher:   fetcher,
		step:      opts.Step,
		state:     view.New(opts.Limit),
		viewState: ViewStateLoading,
		search:    newSearchInput(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(InfoStyle)),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	if opts.Query != "" {
		m.search.SetValue(opts.Query)
		m.state.SetQuery(opts.Query)
	}
	m.grid = listview.New[GridRow](nil, m.visibleRows(), RenderGridRow)
	return m
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search Pokémon..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// Init starts the first fetch cycle (Bubble Tea interface).
func (m CatalogModel) Init() tea.Cmd {
	return func() tea.Msg { return startCycleMsg{} }
}

// startCycleMsg asks the model to begin a cycle at the current limit.
type startCycleMsg struct{}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildGrid()
		return m, nil

	case startCycleMsg:
		cycle := m.state.Begin()
		return m, m.startCycle(cycle)

	case cycleProgressMsg:
		return m.handleProgress(msg)

	case cycleDoneMsg:
		return m.handleCycleDone(msg)

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m CatalogModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyCtrlC {
		return m.quit()
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case keyQuit:
		return m.quit()
	case keyLoadMore, keyPlus:
		cycle := m.state.LoadMore(m.step)
		return m, m.startCycle(cycle)
	}

	if m.viewState == ViewStateLoading {
		return m, nil
	}

	switch msg.String() {
	case keySlash:
		m.searching = true
		return m, m.search.Focus()
	case keyReload:
		cycle := m.state.Begin()
		return m, m.startCycle(cycle)
	case keyEsc:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyQuery()
		}
		return m, nil
	default:
		m.grid.HandleKey(msg)
		return m, nil
	}
}

// handleSearchKey feeds keys to the search box and refilters on every change.
func (m CatalogModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEnter, keyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyQuery()
	return m, cmd
}

func (m CatalogModel) quit() (tea.Model, tea.Cmd) {
	if m.cancelCycle != nil {
		m.cancelCycle()
	}
	m.viewState = ViewStateQuitting
	return m, tea.Quit
}

// applyQuery stores the search box value and regroups the visible cards.
func (m *CatalogModel) applyQuery() {
	m.state.SetQuery(m.search.Value())
	m.rebuildGrid()
}

// startCycle cancels any superseded cycle and launches a fetch for cycle.
func (m *CatalogModel) startCycle(cycle view.Cycle) tea.Cmd {
	if m.cancelCycle != nil {
		m.cancelCycle()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelCycle = cancel
	m.cycleID = logging.NewID()
	m.resolved, m.total = 0, cycle.Limit
	m.viewState = ViewStateLoading

	logging.FromContext(m.ctx).Info().
		Str("cycle_id", m.cycleID).
		Uint64("generation", cycle.Generation).
		Int("limit", cycle.Limit).
		Msg("fetch cycle started")

	updates := make(chan cycleProgressMsg, progressBuffer)
	return tea.Batch(
		m.spinner.Tick,
		fetchCmd(ctx, m.fetcher, cycle, m.cycleID, updates),
		waitForProgress(updates),
	)
}

// fetchCmd runs one cycle off the event loop and reports its result.
func fetchCmd(
	ctx context.Context,
	fetcher Fetcher,
	cycle view.Cycle,
	cycleID string,
	updates chan cycleProgressMsg,
) tea.Cmd {
	return func() tea.Msg {
		defer close(updates)

		records, err := fetcher.Fetch(ctx, cycle.Limit, func(done, total int) {
			select {
			case updates <- cycleProgressMsg{generation: cycle.Generation, done: done, total: total, updates: updates}:
			default:
			}
		})
		return cycleDoneMsg{generation: cycle.Generation, cycleID: cycleID, records: records, err: err}
	}
}

// waitForProgress delivers the next progress update of a cycle, if any.
func waitForProgress(updates <-chan cycleProgressMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return nil
		}
		return msg
	}
}

func (m CatalogModel) handleProgress(msg cycleProgressMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.state.Generation() {
		return m, nil
	}
	m.resolved = max(m.resolved, msg.done)
	m.total = msg.total
	return m, waitForProgress(msg.updates)
}

// handleCycleDone applies a finished cycle. Failures are logged and otherwise
// ignored: the previous cards stay on screen and loading ends.
func (m CatalogModel) handleCycleDone(msg cycleDoneMsg) (tea.Model, tea.Cmd) {
	outcome := m.state.Complete(msg.generation, msg.records, msg.err)
	log := logging.FromContext(m.ctx)

	switch outcome {
	case view.OutcomeStale:
		log.Debug().
			Str("cycle_id", msg.cycleID).
			Uint64("generation", msg.generation).
			Msg("discarded result of superseded fetch cycle")
		return m, nil
	case view.OutcomeFailed:
		log.Error().
			Err(msg.err).
			Str("cycle_id", msg.cycleID).
			Int("limit", m.state.Limit()).
			Msg("error fetching catalog data")
	case view.OutcomeApplied:
		log.Info().
			Str("cycle_id", msg.cycleID).
			Int("records", len(msg.records)).
			Msg("fetch cycle completed")
	}

	if m.cancelCycle != nil {
		m.cancelCycle()
		m.cancelCycle = nil
	}
	m.viewState = ViewStateGrid
	m.rebuildGrid()
	return m, nil
}

// rebuildGrid regroups the currently visible records into card rows.
func (m *CatalogModel) rebuildGrid() {
	rows := BuildGrid(m.state.Visible(), ColumnsFor(m.width))
	m.grid.SetSize(m.visibleRows())
	m.grid.SetItems(rows)
}

// visibleRows returns how many card rows fit below the chrome.
func (m *CatalogModel) visibleRows() int {
	return max((m.height-chromeHeight)/CardHeight(), 1)
}

// State returns the underlying view state.
func (m CatalogModel) State() view.State {
	return m.state
}

// ViewState returns the current screen.
func (m CatalogModel) ViewState() ViewState {
	return m.viewState
}

// VisibleCount returns how many records pass the current filter.
func (m CatalogModel) VisibleCount() int {
	return len(m.state.Visible())
}

// progressLabel describes how far the latest cycle has got.
func (m CatalogModel) progressLabel() string {
	if m.total <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d resolved", m.resolved, m.total)
}
