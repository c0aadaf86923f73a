package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"

	"rangeline/config"
	"rangeline/feedback"
	"rangeline/inspect"
	"rangeline/line"
	"rangeline/log"
	"rangeline/observable"
	"rangeline/ui"
	"rangeline/ui/layout"
)

const title = "rangeline"

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // press, drag and release
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	// -- Configuration --

	appConfig *config.Config
	keys      ui.KeyMap

	// -- State --

	// left and right are the published range endpoints.
	left, right *observable.Scalar
	subs        []*observable.Subscription
	ctrl        *line.Controller
	// ticks records every tick pulse so the status line can count them.
	ticks *feedback.Recorder

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// -- UI Components --

	widget *ui.EditableLine
	menu   *ui.Menu
	errBox *ui.ErrBox

	// -- Host services --

	copyText func(string) error
	bell     io.Writer
}

type option func(*home)

// withClipboard replaces the system clipboard.
func withClipboard(fn func(string) error) option {
	return func(h *home) { h.copyText = fn }
}

// withBell sends BEL feedback to w.
func withBell(w io.Writer) option {
	return func(h *home) { h.bell = w }
}

func newHome(ctx context.Context, cfg *config.Config, opts ...option) *home {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		keys:      ui.DefaultKeyMap(),
		left:      observable.NewScalar(cfg.InitialLeft),
		right:     observable.NewScalar(cfg.InitialRight),
		ticks:     &feedback.Recorder{},
		errBox:    ui.NewErrBox(),
		copyText:  clipboard.WriteAll,
		bell:      stderrBell(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.menu = ui.NewMenu(h.keys)

	// The values are printed on every change.
	h.subs = append(h.subs,
		h.left.Subscribe(func(prev, next float64) {
			log.InfoLog.Printf("left end: %.4f -> %.4f", prev, next)
		}),
		h.right.Subscribe(func(prev, next float64) {
			log.InfoLog.Printf("right end: %.4f -> %.4f", prev, next)
		}),
	)

	factory, err := feedback.FactoryFor(cfg.Haptics, h.bell)
	if err != nil {
		log.WarningLog.Printf("haptics disabled: %v", err)
		factory = feedback.NoopFactory
	}

	h.ctrl = line.NewController(h.left, h.right, line.Options{
		Sensitivity: cfg.Sensitivity,
		Ruler:       cfg.Ruler,
		Feedback:    feedback.MultiFactory(factory, h.ticks.Factory()),
	})
	h.widget = ui.NewEditableLine(h.ctrl, ui.EditableLineOptions{
		CellWidth:     cfg.CellWidth,
		Inset:         cfg.Inset,
		VerticalInset: cfg.VerticalInset,
		Ruler:         cfg.Ruler,
		Palette:       ui.NewPalette(cfg.FrontColor, cfg.RearColor),
	})

	return h
}

// stderrBell returns stderr when it is a terminal that can ring, io.Discard
// otherwise.
func stderrBell() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return os.Stderr
	}
	return io.Discard
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height, m.appConfig.VerticalInset)

	c := m.constraints
	m.widget.SetBounds(c.WidgetX, c.WidgetY, c.WidgetWidth)

	count, step := 0, 1
	if r := m.appConfig.Ruler; r != nil {
		count, step = r.Count, r.Step
	}
	m.degradation = layout.ComputeDegradation(c, m.widget.UsableCells(), count, step)
	m.widget.SetDegradation(m.degradation)

	m.menu.SetSize(c.MenuWidth, c.MenuHeight)
	m.menu.SetSingleLine(m.degradation.SingleLineMenu)
	m.errBox.SetSize(c.ErrBoxWidth, c.ErrBoxHeight)

	log.LayoutTrace("resize %dx%d mode=%s widget=%dx%d@%d,%d",
		msg.Width, msg.Height, c.Mode, c.WidgetWidth, c.WidgetHeight, c.WidgetX, c.WidgetY)
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
	case tea.MouseMsg:
		if !m.widget.HandleMouse(msg) {
			return m, nil
		}
	case tea.KeyMsg:
		var mod tea.Model
		mod, cmd = m.handleKeyPress(msg)
		if mod == nil {
			return m, cmd
		}
	default:
		return m, nil
	}

	m.writeInspect()
	return m, cmd
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Reset):
		m.widget.Cancel()
		m.ctrl.SetRange(line.Range{Left: m.appConfig.InitialLeft, Right: m.appConfig.InitialRight})
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if err := m.copyText(m.ctrl.Range().String()); err != nil {
			return m, m.handleError(fmt.Errorf("failed to copy range: %w", err))
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.widget.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.menu.ToggleHelp()
		return m, nil
	}
	return nil, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	m.widget.Cancel()
	for _, sub := range m.subs {
		sub.Unsubscribe()
	}
	m.subs = nil
	return m, tea.Quit
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// handleError shows err in the error box. The returned tea.Cmd yields a
// hideErrMsg after 3 seconds, or sooner when the app is shutting down.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

// statusText describes the range and the drag.
func (m *home) statusText() string {
	r := m.ctrl.Range()
	status := fmt.Sprintf("left %.3f  right %.3f  span %.3f", r.Left, r.Right, r.Len())
	if m.ctrl.State() == line.StateDragging {
		status += fmt.Sprintf("  dragging %s", m.ctrl.Mode())
	}
	if m.appConfig.Ruler != nil && m.appConfig.Ruler.Count > 0 {
		status += fmt.Sprintf("  ticks %d", m.ticks.Notifies())
	}
	return status
}

func (m *home) statusLine() string {
	text := truncate.StringWithTail(m.statusText(), uint(max(m.width, 0)), "...")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ui.StatusStyle.Render(text))
}

// content renders the rows above the status line. The widget lands exactly on
// the rows and columns the layout gave it, so mouse cells map back onto it.
func (m *home) content() []string {
	c := m.constraints
	rows := make([]string, c.ContentHeight)
	if len(rows) == 0 {
		return rows
	}

	if c.ShowMinWarning {
		warning := fmt.Sprintf("terminal too small: need %dx%d", layout.MinWidth, layout.MinHeight)
		rows[0] = ui.WarnStyle.Render(runewidth.Truncate(warning, m.width, ""))
		if c.WidgetY == 0 {
			// No room for both; the warning wins.
			return rows
		}
	} else if !m.degradation.HideTitle {
		rows[0] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ui.TitleStyle.Render(title))
	}

	pad := strings.Repeat(" ", c.WidgetX)
	for i, row := range strings.Split(m.widget.View(), "\n") {
		if y := c.WidgetY + i; y < len(rows) {
			rows[y] = pad + row
		}
	}
	if values := m.widget.ValuesView(); values != "" {
		if y := c.WidgetY + c.WidgetHeight; y < len(rows) {
			rows[y] = pad + values
		}
	}
	return rows
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if m.width == 0 || m.height == 0 {
		return ""
	}

	sections := m.content()
	sections = append(sections, m.statusLine(), m.errBox.String(), m.menu.String())
	return strings.Join(sections, "\n")
}

// InspectNode implements inspect.Introspectable.
func (m *home) InspectNode() *inspect.Node {
	c := m.constraints
	text := m.statusText()

	status := inspect.NewNode("Status").
		WithBounds(0, c.ContentHeight, c.StatusWidth, c.StatusHeight).
		WithContent(text)
	if w := runewidth.StringWidth(text); w > m.width {
		status.WithTruncation(w, m.width, true)
	}

	errNode := m.errBox.InspectNode()
	errNode.Bounds.Y = c.ContentHeight + c.StatusHeight
	menuNode := m.menu.InspectNode()
	menuNode.Bounds.Y = c.ContentHeight + c.StatusHeight + c.ErrBoxHeight

	return inspect.NewNode("Home").
		WithBounds(0, 0, m.width, m.height).
		AddChild(inspect.NewNode("Title").WithBounds(0, 0, m.width, 1).WithVisible(!m.degradation.HideTitle).WithContent(title)).
		AddChild(m.widget.InspectNode()).
		AddChild(status).
		AddChild(errNode).
		AddChild(menuNode)
}

// Snapshot captures the whole UI state.
func (m *home) Snapshot() *inspect.Snapshot {
	g := m.widget.Geometry()
	r := m.ctrl.Range()
	info := inspect.SliderInfo{
		Left:      r.Left,
		Right:     r.Right,
		State:     m.ctrl.State().String(),
		Mode:      m.ctrl.Mode().String(),
		WidthPx:   g.Width,
		InsetPx:   g.Inset,
		CellWidth: m.appConfig.CellWidth,
		Ticks:     m.ticks.Notifies(),
	}
	if rl := m.appConfig.Ruler; rl != nil {
		info.RulerCount, info.RulerStep = rl.Count, rl.Step
	}

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithSlider(info).
		WithLayout(m.constraints, m.degradation).
		WithError(m.errBox.Message()).
		WithComponents(m.InspectNode())
}

func (m *home) writeInspect() {
	if !inspect.IsEnabled() {
		return
	}
	if err := inspect.WriteSnapshot(m.Snapshot()); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}
