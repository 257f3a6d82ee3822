// Package model provides Bubble Tea models for the CLI.
package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/i18n"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/controller"
	"github.com/bnema/tabshell/internal/ui/navigation"
)

const (
	tabBarHeight   = 2
	helpHeight     = 1
	skeletonLines  = 4
	linkBufMaxSize = 4
)

// PageEvents yields page callbacks that must run on the event loop.
type PageEvents interface {
	Next() (func(), bool)
}

// ShellDeps are the collaborators of the shell model.
type ShellDeps struct {
	LoadSchema *usecase.LoadSchemaUseCase
	Builder    *usecase.NavigationTreeBuilder
	Host       *navigation.Host
	Icons      *usecase.IconDispatcher
	Events     PageEvents
	Catalog    *i18n.Catalog
	Theme      *styles.Theme
	IconSize   int
}

type shellState int

const (
	stateLoading shellState = iota
	stateEmpty
	stateReady
)

// Messages
type schemaLoadedMsg struct {
	tree *entity.NavigationTree
	err  error
}

type pageEventMsg struct {
	fn func()
}

type commitMsg struct{}

// listCursor is the selected row of a list screen at a host revision.
type listCursor struct {
	row int
	rev uint64
}

// ShellModel is the navigation shell: a header, the active screen and the
// tab bar.
type ShellModel struct {
	ctx  context.Context
	deps ShellDeps

	state shellState
	tabs  *controller.TabController

	loading  styles.LoadingModel
	spinning bool
	help     help.Model
	keys     styles.ShellKeyMap
	showHelp bool

	page    viewport.Model
	pageKey string
	cursors map[entity.ScreenID]listCursor
	linkBuf string

	width  int
	height int
}

// NewShellModel creates the shell. The schema is fetched by Init.
func NewShellModel(ctx context.Context, deps ShellDeps) ShellModel {
	theme := deps.Theme
	if theme == nil {
		theme = styles.NewTheme(nil)
		deps.Theme = theme
	}
	cat := deps.Catalog

	keys := styles.DefaultShellKeyMap(styles.Labels{
		Open:  cat.T(i18n.KeyOpen),
		Back:  cat.T(i18n.KeyBack),
		Tabs:  cat.T(i18n.KeyTabs),
		Links: cat.T(i18n.KeyLinks),
		Quit:  cat.T(i18n.KeyQuit),
		Help:  cat.T(i18n.KeyHelp),
	})

	return ShellModel{
		ctx:      logging.WithComponent(ctx, "shell"),
		deps:     deps,
		state:    stateLoading,
		loading:  styles.NewLoading(theme, cat.T(i18n.LoadingSchema)),
		spinning: true,
		help:     styles.NewStyledHelp(theme),
		keys:     keys,
		page:     viewport.New(0, 0),
		cursors:  make(map[entity.ScreenID]listCursor),
	}
}

// Init starts the schema fetch and the page event pump.
func (m ShellModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Spinner.Tick, m.loadSchema(), m.waitForPage())
}

func (m ShellModel) loadSchema() tea.Cmd {
	ctx := m.ctx
	load := m.deps.LoadSchema
	builder := m.deps.Builder
	return func() tea.Msg {
		// Fetch errors are logged by the use case and leave the schema empty.
		schema, _ := load.Execute(ctx)
		tree, err := builder.Build(ctx, schema)
		return schemaLoadedMsg{tree: tree, err: err}
	}
}

func (m ShellModel) waitForPage() tea.Cmd {
	events := m.deps.Events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		fn, ok := events.Next()
		if !ok {
			return nil
		}
		return pageEventMsg{fn: fn}
	}
}

func commit() tea.Msg { return commitMsg{} }

// Update handles messages.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.update(msg)}

	m.pruneCursors()
	m.syncPage()
	if m.needsSpinner() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.loading.Spinner.Tick)
	}
	// Header effects run once the frame showing the screen was rendered.
	if m.deps.Host.HasPendingCommit() {
		cmds = append(cmds, commit)
	}
	return m, tea.Batch(cmds...)
}

func (m *ShellModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return nil

	case spinner.TickMsg:
		if !m.needsSpinner() {
			m.spinning = false
			return nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return cmd

	case schemaLoadedMsg:
		m.onSchema(msg)
		return nil

	case pageEventMsg:
		if msg.fn != nil {
			msg.fn()
		}
		return m.waitForPage()

	case commitMsg:
		m.deps.Host.Commit(m.ctx)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *ShellModel) onSchema(msg schemaLoadedMsg) {
	log := logging.FromContext(m.ctx)

	if msg.err != nil {
		if !errors.Is(msg.err, entity.ErrNoTabs) {
			log.Error().Err(msg.err).Msg("failed to build navigation tree")
		}
		m.state = stateEmpty
		return
	}

	if err := m.deps.Host.Register(m.ctx, msg.tree); err != nil {
		log.Error().Err(err).Msg("failed to register route table")
		m.state = stateEmpty
		return
	}

	theme := m.deps.Theme
	m.tabs = controller.NewTabController(
		m.ctx,
		msg.tree,
		m.deps.Icons,
		m.deps.Host,
		string(theme.ActiveTint),
		string(theme.InactiveTint),
		m.deps.IconSize,
	)
	tabs := msg.tree.Tabs
	m.tabs.SetOnTabSwitch(func(index int) {
		log.Debug().Str(logging.FieldTab, tabs[index].Name).Msg("tab shown")
	})
	m.state = stateReady
}

func (m *ShellModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	}

	if m.state != stateReady {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.linkBuf = ""
		m.tabs.Next(m.ctx)
	case key.Matches(msg, m.keys.PrevTab):
		m.linkBuf = ""
		m.tabs.Prev(m.ctx)
	case key.Matches(msg, m.keys.Back):
		m.linkBuf = ""
		m.deps.Host.Back(m.ctx)
	case key.Matches(msg, m.keys.Link):
		if _, ok := m.deps.Host.Active().(*controller.WebViewController); ok && len(m.linkBuf) < linkBufMaxSize {
			m.linkBuf += msg.String()
		}
	case key.Matches(msg, m.keys.Up):
		return m.move(-1, msg)
	case key.Matches(msg, m.keys.Down):
		return m.move(1, msg)
	case key.Matches(msg, m.keys.Open):
		m.open()
	}
	return nil
}

func (m *ShellModel) move(delta int, msg tea.KeyMsg) tea.Cmd {
	switch c := m.deps.Host.Active().(type) {
	case *controller.ListController:
		if c.IsEmpty() {
			return nil
		}
		m.setCursor(c, m.cursor(c)+delta)
	case *controller.WebViewController:
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return cmd
	}
	return nil
}

func (m *ShellModel) open() {
	log := logging.FromContext(m.ctx)

	switch c := m.deps.Host.Active().(type) {
	case *controller.ListController:
		if c.IsEmpty() {
			return
		}
		if err := c.Open(m.ctx, m.cursor(c)); err != nil {
			log.Warn().Err(err).Msg("list item navigation failed")
		}
	case *controller.WebViewController:
		buf := m.linkBuf
		m.linkBuf = ""
		n, err := strconv.Atoi(buf)
		if err != nil {
			return
		}
		links := c.Page().State().Links
		if n < 1 || n > len(links) {
			log.Debug().Int("link", n).Int("links", len(links)).Msg("link number out of range")
			return
		}
		if err := c.Follow(m.ctx, links[n-1].URL); err != nil {
			log.Warn().Err(err).Msg("follow link failed")
		}
	}
}

// cursor returns the selected row of c within its current items. A row
// recorded before the screen's params were replaced no longer applies.
func (m ShellModel) cursor(c *controller.ListController) int {
	cur, ok := m.cursors[c.ID()]
	if !ok || cur.rev != m.deps.Host.Revision(c.ID()) {
		return 0
	}
	return clampRow(cur.row, len(c.Items()))
}

func (m *ShellModel) setCursor(c *controller.ListController, row int) {
	m.cursors[c.ID()] = listCursor{
		row: clampRow(row, len(c.Items())),
		rev: m.deps.Host.Revision(c.ID()),
	}
}

// pruneCursors forgets rows of screens that left every stack.
func (m *ShellModel) pruneCursors() {
	for id := range m.cursors {
		if !m.deps.Host.Mounted(id) {
			delete(m.cursors, id)
		}
	}
}

func clampRow(row, n int) int {
	if row >= n {
		row = n - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}

func (m ShellModel) activeWebView() (*controller.WebViewController, bool) {
	if m.state != stateReady {
		return nil, false
	}
	c, ok := m.deps.Host.Active().(*controller.WebViewController)
	return c, ok
}

func (m ShellModel) needsSpinner() bool {
	if m.state == stateLoading {
		return true
	}
	c, ok := m.activeWebView()
	return ok && c.SkeletonVisible()
}

// syncPage refreshes the page viewport when the shown page changed.
func (m *ShellModel) syncPage() {
	m.page.Width = m.width
	m.page.Height = m.bodyHeight()

	c, ok := m.activeWebView()
	if !ok || !c.ContentVisible() {
		m.pageKey = ""
		return
	}

	st := c.Page().State()
	pageKey := fmt.Sprintf("%s|%s|%d|%d", c.ID(), st.URL, len(st.Text), m.width)
	if pageKey == m.pageKey {
		return
	}
	m.pageKey = pageKey
	m.page.SetContent(m.renderPage(c.Page(), st))
	m.page.GotoTop()
}

func (m ShellModel) renderPage(page port.PageView, st port.PageState) string {
	theme := m.deps.Theme
	var b strings.Builder

	if st.Title != "" {
		b.WriteString(theme.Title.Render(st.Title))
		b.WriteString("\n\n")
	}

	text := st.Text
	if fitsViewport(page) && m.width > 2 {
		text = lipgloss.NewStyle().Width(m.width - 2).Render(text)
	}
	b.WriteString(text)

	if len(st.Links) > 0 {
		b.WriteString("\n\n")
		for i, link := range st.Links {
			ref := theme.LinkRef.Render(fmt.Sprintf("[%d]", i+1))
			fmt.Fprintf(&b, "%s %s %s\n", ref, link.Text, theme.Subtle.Render(link.URL))
		}
	}
	return b.String()
}

func fitsViewport(page port.PageView) bool {
	p, ok := page.(interface{ Policy() port.PagePolicy })
	if !ok {
		return true
	}
	return p.Policy().FitViewport
}

func (m ShellModel) bodyHeight() int {
	h := m.height - tabBarHeight - helpHeight
	if m.headerView() != "" {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the shell.
func (m ShellModel) View() string {
	theme := m.deps.Theme
	cat := m.deps.Catalog

	switch m.state {
	case stateLoading:
		return m.place(m.loading.View())
	case stateEmpty:
		return m.place(theme.Subtle.Render(cat.T(i18n.NoTabs)))
	}

	parts := make([]string, 0, 4)
	if header := m.headerView(); header != "" {
		parts = append(parts, header)
	}

	body := lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight())
	parts = append(parts, body.Render(m.bodyView()))

	if m.tabs != nil {
		parts = append(parts, m.tabsView())
	}
	parts = append(parts, m.footerView())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m ShellModel) place(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m ShellModel) headerView() string {
	if m.state != stateReady {
		return ""
	}
	host := m.deps.Host
	active := host.Active()
	if active == nil {
		return ""
	}

	opts, ok := host.Header(active.ID())
	if !ok {
		// Not committed yet; keep the row so the layout does not jump.
		return " "
	}
	if !opts.Shown {
		return ""
	}

	theme := m.deps.Theme
	title := opts.Title
	if host.Depth() > 1 {
		title = "‹ " + title
	}
	style := theme.Header.Background(theme.Color(opts.Tint, theme.SurfaceVariant))
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(title)
}

func (m ShellModel) bodyView() string {
	theme := m.deps.Theme
	cat := m.deps.Catalog

	switch c := m.deps.Host.Active().(type) {
	case *controller.ListController:
		return m.listView(c)

	case *controller.WebViewController:
		if c.Blank() {
			return theme.Subtle.Padding(0, 1).Render(cat.T(i18n.NoPage))
		}
		if c.SkeletonVisible() {
			status := theme.Subtle.Render(cat.T(i18n.Loading))
			if c.IndicatorActive() {
				status = m.loading.Spinner.View() + " " + status
			}
			return status + "\n\n" + styles.Skeleton(theme, m.width-2, skeletonLines)
		}
		st := c.Page().State()
		if st.Err != nil {
			msg := theme.ErrorStyle.Render(cat.Tf(i18n.PageError, map[string]any{"URL": st.URL}))
			return msg + "\n" + theme.Subtle.Render(st.Err.Error())
		}
		return m.page.View()

	case *controller.DynamicController:
		style := theme.Normal.Padding(0, 1)
		if m.width > 2 {
			style = style.Width(m.width)
		}
		return style.Render(c.Content())

	default:
		return ""
	}
}

func (m ShellModel) listView(c *controller.ListController) string {
	theme := m.deps.Theme
	if c.IsEmpty() {
		return theme.Subtle.Padding(0, 1).Render(m.deps.Catalog.T(i18n.NoItems))
	}

	items := c.Items()
	cursor := m.cursor(c)
	first, last := window(len(items), cursor, m.bodyHeight())

	rows := make([]styles.ListRow, 0, last-first)
	for i := first; i < last; i++ {
		row := styles.ListRow{
			Title:          items[i].Title,
			Navigable:      c.Navigable(i),
			IndicatorColor: c.IndicatorColor(),
			Selected:       i == cursor,
		}
		if glyph, ok := c.ItemGlyph(i, m.deps.IconSize); ok {
			row.Symbol = glyph.Symbol
			row.SymbolColor = glyph.Color
		}
		rows = append(rows, row)
	}
	return styles.RenderList(theme, rows, m.width)
}

// window returns the visible row range keeping cursor on screen.
func window(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	cursor = clampRow(cursor, n)
	first := 0
	if cursor >= height {
		first = cursor - height + 1
	}
	return first, min(first+height, n)
}

func (m ShellModel) tabsView() string {
	items := m.tabs.Items()
	entries := make([]styles.TabEntry, 0, len(items))
	for _, item := range items {
		entry := styles.TabEntry{Label: item.Label, Tint: item.Tint, Active: item.Active}
		if item.HasIcon {
			entry.Symbol = item.Glyph.Symbol
		}
		entries = append(entries, entry)
	}
	bar := styles.NewTabs(m.deps.Theme, entries...)
	bar.Width = m.width
	return bar.View()
}

func (m ShellModel) footerView() string {
	if m.linkBuf != "" {
		return m.deps.Theme.LinkRef.Render("→ [" + m.linkBuf + "]")
	}
	return m.help.View(m.keys)
}
