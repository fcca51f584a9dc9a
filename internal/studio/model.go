package studio

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ozgurkaracam/aytas-flyer/internal/editor"
	"github.com/ozgurkaracam/aytas-flyer/internal/flyer"
	"github.com/ozgurkaracam/aytas-flyer/internal/layout"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
	"github.com/ozgurkaracam/aytas-flyer/internal/render"
	"github.com/ozgurkaracam/aytas-flyer/internal/studio/api"
)

// ViewState represents the current view in the studio.
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewEditor
	ViewNewProduct
	ViewConfirmDelete
)

type rowKind int

const (
	rowText rowKind = iota
	rowCycle
)

// fieldRow is one editable line of the product form. Text rows carry a
// textinput; cycle rows step through a fixed option list with left/right.
type fieldRow struct {
	field   products.Field
	label   string
	kind    rowKind
	input   textinput.Model
	options []string
}

// Messages
type (
	campaignLoadedMsg struct {
		resolved campaigns.Resolved
	}
	captureDoneMsg struct {
		filename string
	}
	errMsg struct {
		err error
	}
)

// Model is the main Bubble Tea model for the flyer studio.
type Model struct {
	// Dependencies
	remote   *api.Client
	renderer render.Renderer
	session  *editor.Session
	logger   *slog.Logger

	// Campaign header
	title     string
	validText string

	// View state
	viewState ViewState
	width     int
	height    int
	styles    Styles

	// Editor form
	rows     []fieldRow
	focusIdx int

	// New product / delete confirm. Bound values live behind pointers so huh's
	// writes survive the model copies Bubble Tea makes on every update.
	newForm    *huh.Form
	newDraft   *draftForm
	deleteForm *huh.Form
	deleteYes  *bool

	// Async work
	loadSpinner spinner.Model
	loading     bool
	capturing   bool

	status string
	err    error
}

// draftForm holds the huh-bound values for the new product form.
type draftForm struct {
	Name        string
	Desc        string
	WeightValue string
	WeightUnit  string
	PriceMain   string
	PriceCents  string
	Theme       string
	Color       string
}

// NewModel creates the studio model. When the remote client is configured the
// product list is fetched from the server and mutations replicate back;
// otherwise the studio runs on local demo data.
func NewModel(remote *api.Client, renderer render.Renderer, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	var syncer editor.Syncer
	if remote != nil && remote.Configured() {
		syncer = remote
	}
	session := editor.NewSession(editor.NewStore(syncer, logger))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m := Model{
		remote:      remote,
		renderer:    renderer,
		session:     session,
		logger:      logger,
		title:       "Aytas Wereld Supermarkt",
		validText:   "Haftanın kampanyaları",
		viewState:   ViewEditor,
		styles:      DefaultStyles(),
		loadSpinner: sp,
	}

	if syncer != nil {
		m.viewState = ViewLoading
		m.loading = true
	} else {
		m.loadLocalDemo()
	}
	m.rebuildRows()
	return m
}

// loadLocalDemo fills the store with the built-in demo products.
func (m *Model) loadLocalDemo() {
	items := make([]products.Product, 0, campaigns.DemoProductCount)
	for i, d := range products.SeedDrafts(campaigns.DemoProductCount) {
		items = append(items, products.Product{
			ID:          fmt.Sprintf("local-%d", i),
			Name:        d.Name,
			Desc:        d.Desc,
			WeightValue: d.WeightValue,
			WeightUnit:  d.WeightUnit,
			PriceMain:   d.PriceMain,
			PriceCents:  d.PriceCents,
			Theme:       d.Theme,
			Color:       d.Color,
			Image:       d.Image,
			Position:    i,
		})
	}
	m.session.Store().Load(items)
	m.session.Refresh()
}

func (m Model) Init() tea.Cmd {
	if m.loading {
		return tea.Batch(m.loadSpinner.Tick, m.loadCampaign())
	}
	return textinput.Blink
}

func (m Model) loadCampaign() tea.Cmd {
	return func() tea.Msg {
		resolved, err := m.remote.FetchCampaign(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return campaignLoadedMsg{resolved}
	}
}

func (m Model) capture() tea.Cmd {
	title, validText := m.title, m.validText
	items := m.session.Store().Products()
	return func() tea.Msg {
		name, err := CapturePNG(context.Background(), m.renderer, title, validText, items)
		if err != nil {
			return errMsg{err}
		}
		return captureDoneMsg{name}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		if m.loading || m.capturing {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case campaignLoadedMsg:
		m.loading = false
		m.viewState = ViewEditor
		m.title = msg.resolved.Title
		m.validText = msg.resolved.ValidText
		m.session.Store().Load(msg.resolved.ProductList())
		m.session.Refresh()
		m.rebuildRows()
		cmds = append(cmds, textinput.Blink)

	case captureDoneMsg:
		m.capturing = false
		m.status = "saved " + msg.filename
		m.err = nil

	case errMsg:
		m.loading = false
		m.capturing = false
		m.viewState = ViewEditor
		m.err = msg.err
	}

	// Forms drive themselves outside key handling too (timers etc).
	switch m.viewState {
	case ViewNewProduct:
		if m.newForm != nil {
			form, cmd := m.newForm.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.newForm = f
			}
			cmds = append(cmds, cmd)
			if m.newForm.State == huh.StateCompleted {
				m.finishNewProduct()
			}
		}
	case ViewConfirmDelete:
		if m.deleteForm != nil {
			form, cmd := m.deleteForm.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.deleteForm = f
			}
			cmds = append(cmds, cmd)
			if m.deleteForm.State == huh.StateCompleted {
				m.finishDelete()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.session.Store().Close()
		return m, tea.Quit
	}

	switch m.viewState {
	case ViewLoading:
		return m, nil
	case ViewEditor:
		return m.handleEditorKeys(msg)
	case ViewNewProduct:
		if key == "esc" {
			m.newForm = nil
			m.viewState = ViewEditor
			return m, nil
		}
		form, cmd := m.newForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.newForm = f
		}
		if m.newForm.State == huh.StateCompleted {
			m.finishNewProduct()
		}
		return m, cmd
	case ViewConfirmDelete:
		if key == "esc" {
			m.deleteForm = nil
			m.viewState = ViewEditor
			return m, nil
		}
		form, cmd := m.deleteForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.deleteForm = f
		}
		if m.deleteForm.State == huh.StateCompleted {
			m.finishDelete()
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.session.Store()

	switch msg.String() {
	case "ctrl+a":
		m.initNewForm()
		m.viewState = ViewNewProduct
		return m, m.newForm.Init()

	case "ctrl+x":
		if m.session.State() == editor.Editing {
			m.initDeleteForm()
			m.viewState = ViewConfirmDelete
			return m, m.deleteForm.Init()
		}
		return m, nil

	case "ctrl+e":
		if !m.capturing {
			m.capturing = true
			m.status = ""
			return m, tea.Batch(m.loadSpinner.Tick, m.capture())
		}
		return m, nil

	case "ctrl+r":
		if m.remote != nil && m.remote.Configured() && !m.loading {
			m.loading = true
			m.viewState = ViewLoading
			return m, tea.Batch(m.loadSpinner.Tick, m.loadCampaign())
		}
		return m, nil

	case "ctrl+k":
		m.session.Select(store.Selected() - 1)
		m.rebuildRows()
		return m, textinput.Blink

	case "ctrl+j":
		m.session.Select(store.Selected() + 1)
		m.rebuildRows()
		return m, textinput.Blink

	case "up", "shift+tab":
		m.moveFocus(-1)
		return m, textinput.Blink

	case "down", "tab", "enter":
		m.moveFocus(1)
		return m, textinput.Blink

	case "left", "right":
		if len(m.rows) > 0 && m.rows[m.focusIdx].kind == rowCycle {
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			m.cycleRow(m.focusIdx, step)
			return m, nil
		}
	}

	// Typing edits the focused text row; every keystroke writes through the
	// session so the preview follows instantly while replication debounces.
	if len(m.rows) > 0 && m.rows[m.focusIdx].kind == rowText && m.session.State() == editor.Editing {
		row := &m.rows[m.focusIdx]
		var cmd tea.Cmd
		row.input, cmd = row.input.Update(msg)
		m.session.SetField(row.field, row.input.Value())
		return m, cmd
	}

	return m, nil
}

func (m *Model) moveFocus(step int) {
	if len(m.rows) == 0 {
		return
	}
	m.rows[m.focusIdx].input.Blur()
	m.focusIdx = (m.focusIdx + step + len(m.rows)) % len(m.rows)
	if m.rows[m.focusIdx].kind == rowText {
		m.rows[m.focusIdx].input.Focus()
	}
}

// cycleRow steps a cycle row's value through its option list and commits the
// new value as a field edit.
func (m *Model) cycleRow(idx, step int) {
	row := &m.rows[idx]
	cur := m.session.Buffer()
	val := draftField(cur, row.field)

	pos := 0
	for i, opt := range row.options {
		if opt == val {
			pos = i
			break
		}
	}
	pos = (pos + step + len(row.options)) % len(row.options)
	m.session.SetField(row.field, row.options[pos])
}

// rebuildRows resets the form rows to mirror the session buffer. Call after
// selection changes, adds, removes, and loads.
func (m *Model) rebuildRows() {
	d := m.session.Buffer()

	text := func(f products.Field, label, value string, limit int) fieldRow {
		ti := textinput.New()
		ti.SetValue(value)
		ti.CharLimit = limit
		ti.Width = 28
		ti.Prompt = ""
		return fieldRow{field: f, label: label, kind: rowText, input: ti}
	}
	cycle := func(f products.Field, label string, options []string) fieldRow {
		return fieldRow{field: f, label: label, kind: rowCycle, options: options}
	}

	m.rows = []fieldRow{
		text(products.FieldName, "Name", d.Name, 80),
		text(products.FieldDesc, "Desc", d.Desc, 120),
		text(products.FieldWeightValue, "Weight", d.WeightValue, 16),
		cycle(products.FieldWeightUnit, "Unit", products.WeightUnits()),
		text(products.FieldPriceMain, "Price €", d.PriceMain, 8),
		text(products.FieldPriceCents, "Cents", d.PriceCents, 4),
		cycle(products.FieldTheme, "Theme", themeOptions()),
		cycle(products.FieldColor, "Text color", colorOptions()),
		text(products.FieldImage, "Image", d.Image, 2048),
	}

	if m.focusIdx >= len(m.rows) {
		m.focusIdx = 0
	}
	if m.rows[m.focusIdx].kind == rowText {
		m.rows[m.focusIdx].input.Focus()
	}
}

func themeOptions() []string {
	ts := products.Themes()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

func colorOptions() []string {
	cs := products.Colors()
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func draftField(d products.Draft, f products.Field) string {
	switch f {
	case products.FieldName:
		return d.Name
	case products.FieldDesc:
		return d.Desc
	case products.FieldWeightValue:
		return d.WeightValue
	case products.FieldWeightUnit:
		return d.WeightUnit
	case products.FieldPriceMain:
		return d.PriceMain
	case products.FieldPriceCents:
		return d.PriceCents
	case products.FieldTheme:
		return string(d.Theme)
	case products.FieldColor:
		return string(d.Color)
	case products.FieldImage:
		return d.Image
	}
	return ""
}

func (m *Model) initNewForm() {
	m.newDraft = &draftForm{
		WeightUnit: "gr",
		Theme:      string(products.ThemeYellow),
		Color:      string(products.ColorGold),
	}

	unitOpts := huh.NewOptions(products.WeightUnits()...)
	themeOpts := huh.NewOptions(themeOptions()...)
	colorOpts := huh.NewOptions(colorOptions()...)

	m.newForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.newDraft.Name),
			huh.NewInput().Title("Description").Value(&m.newDraft.Desc),
			huh.NewInput().Title("Weight").Value(&m.newDraft.WeightValue),
			huh.NewSelect[string]().Title("Unit").Options(unitOpts...).Value(&m.newDraft.WeightUnit),
			huh.NewInput().Title("Price (euros)").Value(&m.newDraft.PriceMain),
			huh.NewInput().Title("Price (cents)").Value(&m.newDraft.PriceCents),
			huh.NewSelect[string]().Title("Theme").Options(themeOpts...).Value(&m.newDraft.Theme),
			huh.NewSelect[string]().Title("Text color").Options(colorOpts...).Value(&m.newDraft.Color),
		),
	)
}

func (m *Model) finishNewProduct() {
	m.session.Add(products.Draft{
		Name:        m.newDraft.Name,
		Desc:        m.newDraft.Desc,
		WeightValue: m.newDraft.WeightValue,
		WeightUnit:  m.newDraft.WeightUnit,
		PriceMain:   m.newDraft.PriceMain,
		PriceCents:  m.newDraft.PriceCents,
		Theme:       products.Theme(m.newDraft.Theme),
		Color:       products.Color(m.newDraft.Color),
	})
	m.newForm = nil
	m.newDraft = nil
	m.viewState = ViewEditor
	m.focusIdx = 0
	m.rebuildRows()
}

func (m *Model) initDeleteForm() {
	m.deleteYes = new(bool)
	name := m.session.Buffer().Name
	m.deleteForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", name)).
				Affirmative("Delete").
				Negative("Keep").
				Value(m.deleteYes),
		),
	)
}

func (m *Model) finishDelete() {
	if m.deleteYes != nil && *m.deleteYes {
		m.session.Remove()
		m.rebuildRows()
	}
	m.deleteForm = nil
	m.viewState = ViewEditor
}

// View renders the studio.
func (m Model) View() string {
	s := m.styles

	switch m.viewState {
	case ViewLoading:
		return s.App.Render(m.loadSpinner.View() + " loading campaign...")
	case ViewNewProduct:
		if m.newForm != nil {
			return s.App.Render(s.Box.Render(m.newForm.View()))
		}
	case ViewConfirmDelete:
		if m.deleteForm != nil {
			return s.App.Render(s.Box.Render(m.deleteForm.View()))
		}
	}

	header := s.Header.Render(lipgloss.JoinHorizontal(lipgloss.Bottom,
		s.HeaderTitle.Render(m.title),
		"  ",
		s.HeaderHelp.Render(m.validText),
	))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Box.Render(m.renderForm()),
		" ",
		s.Box.Render(m.renderPreview()),
	)

	var notes []string
	if m.capturing {
		notes = append(notes, m.loadSpinner.View()+" exporting...")
	}
	if m.status != "" {
		notes = append(notes, s.Success.Render(m.status))
	}
	if m.err != nil {
		notes = append(notes, s.Error.Render(m.err.Error()))
	}

	help := s.HelpBar.Render(
		"ctrl+j/k product • tab field • ←/→ cycle • ctrl+a add • ctrl+x delete • ctrl+e export png • ctrl+c quit")

	parts := []string{header, m.renderPills(), body}
	parts = append(parts, notes...)
	parts = append(parts, help)
	return s.App.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderPills draws the product selector strip.
func (m Model) renderPills() string {
	store := m.session.Store()
	items := store.Products()
	if len(items) == 0 {
		return m.styles.Subtle.Render("no products - ctrl+a to add one")
	}

	selected := store.Selected()
	pills := make([]string, len(items))
	for i, p := range items {
		label := p.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		if i == selected {
			pills[i] = m.styles.PillSelected.Render(label)
		} else {
			pills[i] = m.styles.Pill.Render(label)
		}
	}
	return strings.Join(pills, " ")
}

// renderForm draws the field rows for the selected product.
func (m Model) renderForm() string {
	if m.session.State() == editor.Empty {
		return m.styles.Subtle.Render("nothing to edit")
	}

	d := m.session.Buffer()
	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		label := m.styles.FieldLabel
		if i == m.focusIdx {
			label = m.styles.FieldFocused
		}

		var value string
		switch row.kind {
		case rowText:
			value = row.input.View()
		case rowCycle:
			value = "◂ " + draftField(d, row.field) + " ▸"
		}
		lines = append(lines, label.Render(row.label)+" "+m.styles.FieldValue.Render(value))
	}
	return strings.Join(lines, "\n")
}

// renderPreview draws a coarse terminal rendition of the flyer grid using the
// same column math the HTML document uses.
func (m Model) renderPreview() string {
	store := m.session.Store()
	items := store.Products()
	if len(items) == 0 {
		return m.styles.Subtle.Render("empty flyer")
	}

	metrics := layout.Compute(len(items), flyer.CanvasSize, flyer.HeaderHeight)
	selected := store.Selected()

	cards := make([]string, len(items))
	for i, p := range items {
		style := m.styles.Card
		if i == selected {
			style = m.styles.CardSelected
		}
		if bg, ok := themeColors[p.Theme]; ok {
			style = style.BorderForeground(bg)
		}

		name := p.Name
		if name == "" {
			name = "(untitled)"
		}
		price := fmt.Sprintf("€%s,%s", p.PriceMain, p.PriceCents)
		weight := strings.TrimSpace(p.WeightValue + " " + p.WeightUnit)
		cards[i] = style.Width(16).Render(name + "\n" + weight + "\n" + price)
	}

	var rows []string
	for start := 0; start < len(cards); start += metrics.Columns {
		end := start + metrics.Columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
