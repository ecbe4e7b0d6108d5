package browse

import (
	"fmt"
	"strings"

	"ptable/internal/display"
	"ptable/internal/element"
	"ptable/internal/periodictable"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// allElements 不按分类过滤的视图名称
const allElements = "all"

// Options 浏览界面选项
type Options struct {
	Style    string       // glamour 样式
	WordWrap int          // 详情面板换行宽度，0 表示跟随面板宽度
	Unit     element.Unit // 初始温度单位
}

// elementItem 列表中的一个元素
type elementItem struct {
	e    *element.Element
	unit element.Unit
}

func (i elementItem) Title() string {
	return fmt.Sprintf("%3d  %-3s %s", i.e.AtomicNumber(), i.e.Symbol(), i.e.DisplayName())
}

func (i elementItem) Description() string {
	parts := []string{element.FormatFloat(i.e.AtomicMass()) + " u"}
	if s, ok := i.e.State(); ok {
		parts = append(parts, string(s))
	}
	if v, ok := i.e.MeltingPoint(i.unit); ok {
		parts = append(parts, "mp "+element.FormatFloat(v)+" "+i.unit.Symbol())
	}
	return strings.Join(parts, " · ")
}

func (i elementItem) FilterValue() string {
	return i.e.Name() + " " + i.e.Symbol()
}

// view 一个可切换的元素集合
type view struct {
	name     string
	elements []*element.Element
}

// Model 元素浏览界面模型
type Model struct {
	list   list.Model
	detail viewport.Model

	views     []view
	viewIndex int
	unit      element.Unit
	style     string
	wrap      int

	ready    bool
	quitting bool
	width    int
	height   int
	selected int

	headerStyle lipgloss.Style
	detailStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

// NewModel 创建浏览模型，初始视图包含全部元素
func NewModel(table *periodictable.Table, opts Options) *Model {
	views := []view{{name: allElements, elements: table.Elements()}}
	for _, c := range periodictable.Categories() {
		els, _ := table.Category(c)
		views = append(views, view{name: string(c), elements: els})
	}

	unit := opts.Unit
	if unit == "" {
		unit = element.Kelvin
	}

	l := list.New(nil, list.NewDefaultDelegate(), 40, 20)
	l.SetShowHelp(false)

	m := &Model{
		list:     l,
		detail:   viewport.New(60, 20),
		views:    views,
		unit:     unit,
		style:    opts.Style,
		wrap:     opts.WordWrap,
		selected: -1,
		headerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			MarginLeft(1),
		detailStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginLeft(1),
	}
	m.setItems()
	return m
}

// Init 初始化模型
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update 处理消息更新
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.ready = true
		m.refreshDetail(true)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		// 过滤输入时按键交给列表
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q":
				m.quitting = true
				return m, tea.Quit
			case "tab":
				m.viewIndex = (m.viewIndex + 1) % len(m.views)
				m.setItems()
				m.refreshDetail(true)
				return m, nil
			case "shift+tab":
				m.viewIndex = (m.viewIndex + len(m.views) - 1) % len(m.views)
				m.setItems()
				m.refreshDetail(true)
				return m, nil
			case "u":
				m.unit = m.unit.Next()
				m.setItems()
				return m, nil
			case "pgdown", "J":
				m.detail.LineDown(5)
				return m, nil
			case "pgup", "K":
				m.detail.LineUp(5)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail(false)
	return m, cmd
}

// View 渲染界面
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n正在初始化..."
	}

	current := m.views[m.viewIndex]
	header := m.headerStyle.Render(fmt.Sprintf("Periodic table · %s (%d) · %s",
		current.name, len(current.elements), m.unit.Symbol()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.detailStyle.Render(m.detail.View()))
	help := m.helpStyle.Render("/: 过滤 | tab: 切换分类 | u: 切换温度单位 | J/K: 滚动详情 | q: 退出")
	return strings.Join([]string{header, body, help}, "\n")
}

// ViewName 当前视图名称
func (m *Model) ViewName() string {
	return m.views[m.viewIndex].name
}

// Unit 当前温度单位
func (m *Model) Unit() element.Unit {
	return m.unit
}

// Selected 当前选中的元素
func (m *Model) Selected() (*element.Element, bool) {
	item, ok := m.list.SelectedItem().(elementItem)
	if !ok {
		return nil, false
	}
	return item.e, true
}

func (m *Model) setItems() {
	current := m.views[m.viewIndex]
	items := make([]list.Item, 0, len(current.elements))
	for _, e := range current.elements {
		items = append(items, elementItem{e: e, unit: m.unit})
	}
	m.list.ResetFilter()
	m.list.SetItems(items)
	m.list.Title = current.name
}

func (m *Model) resize() {
	listWidth := max(m.width*2/5, 30)
	bodyHeight := max(m.height-4, 5)
	m.list.SetSize(listWidth, bodyHeight)
	m.detail.Width = max(m.width-listWidth-4, 20)
	m.detail.Height = bodyHeight - 2
}

// refreshDetail 选中元素变化时重新渲染详情面板
func (m *Model) refreshDetail(force bool) {
	e, ok := m.Selected()
	if !ok {
		m.selected = -1
		m.detail.SetContent("没有匹配的元素")
		return
	}
	if !force && e.AtomicNumber() == m.selected {
		return
	}
	m.selected = e.AtomicNumber()

	wrap := m.wrap
	if wrap <= 0 || wrap > m.detail.Width {
		wrap = m.detail.Width
	}
	md := display.Markdown(e)
	rendered, err := display.RenderMarkdown(md, m.style, wrap)
	if err != nil {
		rendered = md
	}
	m.detail.SetContent(rendered)
	m.detail.GotoTop()
}

// Run 启动元素浏览界面
func Run(table *periodictable.Table, opts Options) error {
	p := tea.NewProgram(NewModel(table, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
