package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/transester/internal/analysis"
	"github.com/san-kum/transester/internal/chart"
	"github.com/san-kum/transester/internal/kinetics"
	"github.com/san-kum/transester/internal/logging"
)

type paramField struct {
	name string
	unit string
	step float64
	get  func(p kinetics.Params) float64
	set  func(p *kinetics.Params, v float64)
}

var paramFields = []paramField{
	{
		name: "oil", unit: "mL", step: 50,
		get: func(p kinetics.Params) float64 { return p.InitialOilVolume },
		set: func(p *kinetics.Params, v float64) { p.InitialOilVolume = v },
	},
	{
		name: "k", unit: "1/h", step: 0.01,
		get: func(p kinetics.Params) float64 { return p.RateConstant },
		set: func(p *kinetics.Params, v float64) { p.RateConstant = v },
	},
	{
		name: "duration", unit: "h", step: 1,
		get: func(p kinetics.Params) float64 { return p.TotalDuration },
		set: func(p *kinetics.Params, v float64) { p.TotalDuration = v },
	},
	{
		name: "dt", unit: "h", step: 0.1,
		get: func(p kinetics.Params) float64 { return p.TimeStep },
		set: func(p *kinetics.Params, v float64) { p.TimeStep = v },
	},
}

// Options configure the interactive app.
type Options struct {
	Params           kinetics.Params
	TargetConversion float64
	Theme            string
}

type model struct {
	params   kinetics.Params
	defaults kinetics.Params
	// plotted holds the parameters of the run currently on the chart.
	plotted kinetics.Params
	target  float64

	cursor  int
	editing bool
	editBuf string

	chart   *chart.Chart
	summary *analysis.Summary
	err     error
	showAll bool

	selection Selection
	theme     int
	st        styles

	width  int
	height int
}

func NewInteractiveApp(opts Options) *model {
	target := opts.TargetConversion
	if target <= 0 || target >= 1 {
		target = 0.95
	}

	theme := themeIndex(opts.Theme)

	m := &model{
		params:    opts.Params,
		defaults:  opts.Params,
		target:    target,
		chart:     chart.New(),
		showAll:   true,
		selection: NewSelection(),
		theme:     theme,
		st:        newStyles(Themes[theme]),
		width:     100,
		height:    32,
	}
	m.simulate()
	return m
}

// simulate recomputes the run for the current parameters. On invalid input
// the error is shown and the chart keeps the last valid run.
func (m *model) simulate() {
	res, err := kinetics.Simulate(m.params)
	if err != nil {
		m.err = err
		logging.Debugw("rejected parameters", "params", m.params.String(), "error", err)
		return
	}
	m.err = nil
	m.plotted = m.params
	m.chart.SetData(res)

	m.summary, err = analysis.Summarize(res, m.target)
	if err != nil {
		logging.Warnw("summary failed", "error", err)
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(paramFields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter":
		m.editing = true
		m.editBuf = strconv.FormatFloat(paramFields[m.cursor].get(m.params), 'g', -1, 64)
	case "tab":
		m.selection.Next()
	case "t", "1":
		m.selection.Select(kinetics.Oil)
	case "e", "2":
		m.selection.Select(kinetics.Ester)
	case "g", "3":
		m.selection.Select(kinetics.Glycerin)
	case "x":
		m.selection.ToggleDevelopment()
	case "d":
		m.selection.ToggleDerivation(m.selection.Active)
	case "a":
		m.showAll = !m.showAll
	case "c":
		m.theme = (m.theme + 1) % len(Themes)
		m.st = newStyles(Themes[m.theme])
	case "r":
		m.params = m.defaults
		m.simulate()
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			paramFields[m.cursor].set(&m.params, v)
			m.simulate()
		} else {
			m.err = fmt.Errorf("not a number: %q", m.editBuf)
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

// adjust moves the selected parameter one slider step and re-simulates.
func (m *model) adjust(dir float64) {
	f := paramFields[m.cursor]
	v := f.get(m.params) + dir*f.step
	// round away accumulated step error so the sliders land on clean values
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	f.set(&m.params, v)
	m.simulate()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + m.st.title.Render("t r a n s e s t e r") + "  " +
		m.st.muted.Render("triglyceride → 3 ester + glycerin") + "\n\n")

	b.WriteString(m.viewParams())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("  " + m.st.err.Render(m.err.Error()) + "\n\n")
	}

	cw := m.width - 20
	if cw < 30 {
		cw = 30
	}
	ch := m.height - 24
	if ch < 8 {
		ch = 8
	}
	var plot string
	if m.showAll {
		plot = m.chart.Render(cw, ch)
	} else {
		plot = m.chart.RenderQuantity(m.selection.Active, cw, ch)
	}
	for _, line := range strings.Split(plot, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.viewSummary())
	b.WriteString(m.viewEquation())

	b.WriteString("\n" + m.st.dim.Render(
		"  ↑↓ param  ←→ adjust  enter edit  tab/t/e/g equation  x development  d derivation  a all/one  c theme  r reset  q quit") + "\n")

	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder
	for i, f := range paramFields {
		val := fmt.Sprintf("%10.4g", f.get(m.params))
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString("  " + m.st.title.Render("▸ ") + m.st.text.Render(fmt.Sprintf("%-10s", f.name)) +
				m.st.accent.Render(val) + " " + m.st.muted.Render(f.unit) + "\n")
		} else {
			b.WriteString("    " + m.st.muted.Render(fmt.Sprintf("%-10s", f.name)) +
				m.st.muted.Render(val) + " " + m.st.dim.Render(f.unit) + "\n")
		}
	}
	return b.String()
}

func (m model) viewSummary() string {
	s := m.summary
	if s == nil {
		return ""
	}

	reached := "not within horizon"
	if s.ReachedAt >= 0 {
		reached = fmt.Sprintf("%.2f h", s.ReachedAt)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		m.st.muted.Render("half-life"), m.st.text.Render(fmt.Sprintf("%.2f h", s.HalfLife)),
		m.st.muted.Render("conversion"), m.st.text.Render(fmt.Sprintf("%.1f%%", s.FinalConversion*100)),
		m.st.muted.Render(fmt.Sprintf("%.0f%% at", s.TargetConversion*100)), m.st.text.Render(reached)))

	for _, st := range s.Series {
		q := st.Quantity
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			m.st.forColor(q.Color()).Render(fmt.Sprintf("%-7s", q.Label())),
			m.st.muted.Render(fmt.Sprintf("%-26s", q.Name())),
			m.st.text.Render(fmt.Sprintf("%9.2f → %9.2f mL", st.Initial, st.Final))))
	}
	return b.String()
}

func (m model) viewEquation() string {
	q := m.selection.Active

	var lines []string
	lines = append(lines, m.st.forColor(q.Color()).Render(q.Label()+" "+q.Name()))
	lines = append(lines, m.st.text.Render(Equation(q)))

	if m.selection.ShowDerivation {
		lines = append(lines, "")
		for _, l := range Development(q, m.plotted) {
			lines = append(lines, m.st.accent.Render(l))
		}
	}
	if m.selection.DerivationVisible(q) {
		lines = append(lines, "")
		for i, l := range Derivation(q) {
			lines = append(lines, m.st.muted.Render(fmt.Sprintf("%d. %s", i+1, l)))
		}
	}

	box := m.st.panel.Render(strings.Join(lines, "\n"))
	var b strings.Builder
	for _, line := range strings.Split(box, "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func RunInteractive(opts Options) error {
	p := tea.NewProgram(NewInteractiveApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
