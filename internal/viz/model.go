package viz

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/runner"
	"github.com/san-kum/sortviz/internal/step"
)

const (
	delayStep     = 100
	defaultWidth  = 80
	defaultHeight = 30
	minBarsHeight = 5
)

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
	StatusCanceled
)

var statusNames = [...]string{"IDLE", "RUNNING", "COMPLETED", "CANCELED"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// FrameMsg delivers a playback frame to the program.
type FrameMsg playback.Frame

type errMsg struct{ err error }

// sequencer keeps coordinator commands in the order Update issued them.
// Bubbletea runs every command on its own goroutine, so a command that
// reaches the coordinator after a newer one is dropped.
type sequencer struct {
	issued atomic.Uint64

	mu  sync.Mutex
	ran uint64
}

func (s *sequencer) next() uint64 { return s.issued.Add(1) }

// do runs fn unless a command issued after ticket already ran.
func (s *sequencer) do(ticket uint64, fn func() error) tea.Msg {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket <= s.ran {
		return nil
	}
	s.ran = ticket
	if err := fn(); err != nil {
		return errMsg{err}
	}
	return nil
}

type Options struct {
	// Values is the initial array. A random array of Size is generated
	// when it is nil.
	Values []int
	Size   int
	Rand   *rand.Rand
	Theme  string
}

// Model is the sorting visualizer. Coordinator calls that block are issued
// from commands, never from Update.
type Model struct {
	coord  *runner.Coordinator
	ctx    context.Context //nolint:containedctx // runs are started from commands
	seq    *sequencer
	newID  func() string
	rng    *rand.Rand
	size   int
	names  []string
	titles map[string]string

	values    []int
	selected  string
	status    Status
	runID     string
	event     step.Event
	hasEvent  bool
	narration string
	steps     int
	counters  []playback.Metric
	history   []float64

	editing  bool
	field    textinput.Model
	inputErr string
	errText  string

	theme         Theme
	showHelp      bool
	width, height int
}

func NewModel(ctx context.Context, coord *runner.Coordinator, opts Options) Model {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	size := opts.Size
	if size <= 0 || size > input.MaxSize {
		size = input.DefaultSize
	}
	values := slices.Clone(opts.Values)
	if values == nil {
		values = input.Random(size, rng)
	}

	names := coord.Registry().Names()
	titles := make(map[string]string, len(names))
	for _, name := range names {
		if alg, err := coord.Registry().Get(name); err == nil {
			titles[name] = alg.Title()
		}
	}

	field := textinput.New()
	field.Placeholder = "Enter numbers separated by commas"
	field.Prompt = "Custom array: "
	field.CharLimit = 1024
	field.Width = 60

	return Model{
		coord:    coord,
		ctx:      ctx,
		seq:      &sequencer{},
		newID:    uuid.NewString,
		rng:      rng,
		size:     size,
		names:    names,
		titles:   titles,
		values:   values,
		selected: coord.Selected(),
		counters: runner.DefaultMetrics(),
		field:    field,
		theme:    GetTheme(opts.Theme),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Attach forwards every frame the coordinator plays to p. Call it before
// the first run starts.
func Attach(p *tea.Program, coord *runner.Coordinator) {
	coord.Controller().AddObserver(playback.ObserverFunc(func(f playback.Frame) {
		p.Send(FrameMsg(f))
	}))
}

// Run shows the visualizer until the user quits or ctx ends.
func Run(ctx context.Context, coord *runner.Coordinator, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, coord, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	Attach(p, coord)
	_, err := p.Run()
	coord.Cancel()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Status() Status   { return m.status }
func (m Model) Values() []int    { return m.values }
func (m Model) Selected() string { return m.selected }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case FrameMsg:
		m.applyFrame(playback.Frame(msg))
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		if m.status == StatusRunning {
			m.status = StatusIdle
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Start):
		return m.start()
	case key.Matches(msg, keys.Next):
		return m.switchAlgorithm(m.coord.Registry().Next(m.selected))
	case key.Matches(msg, keys.Prev):
		return m.switchAlgorithm(m.previous())
	case key.Matches(msg, keys.Random):
		if m.status != StatusRunning {
			m.values = input.Random(m.size, m.rng)
			m.reset()
		}
	case key.Matches(msg, keys.Edit):
		if m.status != StatusRunning {
			m.editing = true
			m.inputErr = ""
			m.field.SetValue(input.Format(m.values))
			m.field.CursorEnd()
			return m, m.field.Focus()
		}
	case key.Matches(msg, keys.Slower):
		m.adjustDelay(delayStep)
	case key.Matches(msg, keys.Faster):
		m.adjustDelay(-delayStep)
	case key.Matches(msg, keys.Theme):
		m.theme = NextTheme(m.theme.Name)
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Apply):
		values, err := input.Parse(m.field.Value())
		if err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.values = values
		m.editing = false
		m.inputErr = ""
		m.field.Blur()
		m.reset()
		return m, nil
	case key.Matches(msg, keys.Discard):
		m.editing = false
		m.inputErr = ""
		m.field.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

// start sorts the displayed array with the selected algorithm. A run in
// flight is superseded. The run ID is chosen here so frames can be matched
// before the command has reached the coordinator.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.supersede()
	m.reset()
	m.status = StatusRunning
	m.runID = m.newID()

	req := runner.Request{
		ID:        m.runID,
		Algorithm: m.selected,
		Input:     slices.Clone(m.values),
	}
	coord, ctx, seq, ticket := m.coord, m.ctx, m.seq, m.seq.next()
	return m, func() tea.Msg {
		return seq.do(ticket, func() error {
			_, err := coord.Launch(ctx, req)
			return err
		})
	}
}

func (m Model) switchAlgorithm(name string) (tea.Model, tea.Cmd) {
	if name == m.selected {
		return m, nil
	}
	m.selected = name
	if m.status == StatusRunning {
		m.supersede()
		m.status = StatusCanceled
	}

	coord, seq, ticket := m.coord, m.seq, m.seq.next()
	return m, func() tea.Msg {
		return seq.do(ticket, func() error {
			return coord.Select(name)
		})
	}
}

func (m *Model) applyFrame(f playback.Frame) {
	if m.status != StatusRunning || f.RunID != m.runID {
		return
	}
	m.values = f.Values
	m.event = f.Event
	m.hasEvent = true
	m.narration = f.Narration
	m.steps = f.Seq
	for _, c := range m.counters {
		c.Observe(f.Event)
		if c.Name() == "comparisons" {
			m.history = append(m.history, c.Value())
		}
	}
	if f.Event.Kind == step.KindComplete {
		m.status = StatusCompleted
	}
}

// supersede forgets the current run so its late frames are dropped.
func (m *Model) supersede() {
	m.runID = ""
}

// reset clears the per-run display state.
func (m *Model) reset() {
	m.status = StatusIdle
	m.hasEvent = false
	m.narration = ""
	m.errText = ""
	m.steps = 0
	m.history = nil
	for _, c := range m.counters {
		c.Reset()
	}
}

func (m *Model) adjustDelay(delta int) {
	ctrl := m.coord.Controller()
	d := ctrl.DelayMs() + delta
	d = max(playback.MinDelay, min(playback.MaxDelay, d))
	_ = ctrl.SetDelay(d)
}

func (m Model) previous() string {
	for i, name := range m.names {
		if name == m.selected {
			return m.names[(i-1+len(m.names))%len(m.names)]
		}
	}
	return m.selected
}

func (m Model) View() string {
	t := m.theme
	var s strings.Builder

	s.WriteString(titleStyle(t).Render("SORTING VISUALIZER") + "\n\n")

	tabs := make([]string, len(m.names))
	for i, name := range m.names {
		tabs[i] = tabStyle(t, name == m.selected).Render(m.titles[name])
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	s.WriteString(statusStyle(t, m.status).Render(m.status.String()))
	s.WriteString(valueStyle(t).Render(fmt.Sprintf("   steps %d   delay %dms   size %d",
		m.steps, m.coord.Controller().DelayMs(), len(m.values))) + "\n")

	narration := m.narration
	if narration == "" {
		narration = " "
	}
	s.WriteString(narrationStyle(t).Render(narration) + "\n\n")

	var highlight map[int]role
	if m.hasEvent {
		highlight = roles(m.event, len(m.values))
	}
	barsHeight := max(minBarsHeight, m.height-24)
	s.WriteString(RenderBars(m.values, highlight, t, barsHeight, m.width-8) + "\n\n")

	for _, c := range m.counters {
		s.WriteString(labelStyle(t).Render(c.Name()) + valueStyle(t).Render(fmt.Sprintf("%.0f", c.Value())) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("comparisons"))
		s.WriteString("\n" + chart + "\n")
	}

	if m.editing {
		s.WriteString("\n" + m.field.View() + "\n")
		if m.inputErr != "" {
			s.WriteString(errorStyle(t).Render(m.inputErr) + "\n")
		}
	}
	if m.errText != "" {
		s.WriteString("\n" + errorStyle(t).Render(m.errText) + "\n")
	}

	s.WriteString("\n" + m.helpView())
	return panelStyle.Render(s.String())
}

func (m Model) helpView() string {
	if m.editing {
		return keyHint.Render(hint(keys.Apply) + "  " + hint(keys.Discard))
	}
	if !m.showHelp {
		parts := make([]string, 0, len(keys.short()))
		for _, b := range keys.short() {
			parts = append(parts, hint(b))
		}
		return keyHint.Render(strings.Join(parts, "  "))
	}
	var b strings.Builder
	for _, k := range keys.full() {
		fmt.Fprintf(&b, "%-14s %s\n", k.Help().Key, k.Help().Desc)
	}
	fmt.Fprintf(&b, "%-14s %s", "theme", m.theme.Name)
	return keyHint.Render(b.String())
}

func hint(b key.Binding) string {
	return b.Help().Key + " " + b.Help().Desc
}
