// cli/cli.go
// Package cli provides the interactive recommendation browser for the
// deckhand application.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/deckhand/internal/appconfig"
	"github.com/mwiater/deckhand/internal/decks"
	"github.com/mwiater/deckhand/internal/recommend"
	"github.com/mwiater/deckhand/internal/util"
)

// Config represents the shared application configuration for the browser.
type Config = appconfig.Config

// viewState represents the current view or screen of the browser.
type viewState int

const (
	// viewLoading is the state while EDHREC data is being fetched.
	viewLoading viewState = iota
	// viewCategorySelector is the state where the user selects a category.
	viewCategorySelector
	// viewCards is the state showing the cards of a category.
	viewCards
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	inDeckStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// categoriesMsg carries the fetched recommendation categories.
type categoriesMsg struct {
	all map[string][]recommend.Recommendation
}

// errMsg carries a fetch failure into the update loop.
type errMsg struct {
	err error
}

// item represents a selectable item in the category list.
type item struct {
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// model is the main application model for the Bubble Tea browser.
type model struct {
	config        *Config
	engine        *recommend.Engine
	deck          *decks.Deck
	commander     string
	state         viewState
	err           error
	categoryList  list.Model
	viewport      viewport.Model
	spinner       spinner.Model
	all           map[string][]recommend.Recommendation
	selectedKey   string
	width, height int
}

// initialModel creates and initializes a new model with default values.
func initialModel(cfg *Config, engine *recommend.Engine, deck *decks.Deck, commander string) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	categoryList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	categoryList.Title = fmt.Sprintf("Categories for %s", commander)

	vp := viewport.New(100, 5)

	return &model{
		config:       cfg,
		engine:       engine,
		deck:         deck,
		commander:    commander,
		state:        viewLoading,
		spinner:      s,
		categoryList: categoryList,
		viewport:     vp,
	}
}

// loadCategories fetches every recommendation category for the commander.
func (m *model) loadCategories() tea.Msg {
	all, err := m.engine.AllCategories(m.commander, m.deck)
	if err != nil {
		return errMsg{err: err}
	}
	return categoriesMsg{all: all}
}

// Init starts the spinner and kicks off the category fetch.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCategories)
}

// Update handles incoming messages and updates the model state.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.categoryList.SetSize(msg.Width, util.Max(msg.Height-2, 5))
		m.viewport.Width = msg.Width
		m.viewport.Height = util.Max(msg.Height-4, 5)
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, tea.Quit

	case categoriesMsg:
		m.all = msg.all
		m.state = viewCategorySelector
		m.categoryList.SetItems(m.categoryItems())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != viewCategorySelector || !m.categoryList.SettingFilter() {
				return m, tea.Quit
			}
		case "esc":
			if m.state == viewCards {
				m.state = viewCategorySelector
				return m, nil
			}
		case "enter":
			if m.state == viewCategorySelector {
				if selected, ok := m.categoryList.SelectedItem().(item); ok {
					m.selectedKey = keyForTitle(selected.title)
					m.viewport.SetContent(m.renderCards(m.selectedKey))
					m.viewport.GotoTop()
					m.state = viewCards
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case viewLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case viewCategorySelector:
		m.categoryList, cmd = m.categoryList.Update(msg)
	case viewCards:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the current state of the browser.
func (m *model) View() string {
	switch m.state {
	case viewLoading:
		return fmt.Sprintf("\n %s Fetching EDHREC data for %s...\n", m.spinner.View(), m.commander)
	case viewCategorySelector:
		return m.categoryList.View()
	case viewCards:
		header := headerStyle.Render(titleForKey(m.selectedKey))
		help := helpStyle.Render("esc: back • q: quit")
		return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), help)
	}
	return ""
}

// categoryItems builds the list entries for every non-empty category, in
// the engine's listing order, followed by empty ones.
func (m *model) categoryItems() []list.Item {
	keys := recommend.CategoryKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return len(m.all[keys[i]]) > 0 && len(m.all[keys[j]]) == 0
	})

	items := make([]list.Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, item{
			title: titleForKey(key),
			desc:  fmt.Sprintf("%d cards", len(m.all[key])),
		})
	}
	return items
}

// renderCards renders one category's recommendations for the viewport.
func (m *model) renderCards(key string) string {
	recs := m.all[key]
	if len(recs) == 0 {
		return "No cards in this category."
	}
	var b strings.Builder
	for _, rec := range recs {
		line := fmt.Sprintf("  %s: %.0f%% synergy, in %d decks", rec.Name, rec.Synergy*100, rec.NumDecks)
		if rec.InDeck {
			line += " " + inDeckStyle.Render("[IN DECK]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// titleForKey turns a category key into a display title.
func titleForKey(key string) string {
	return util.TitleCase(strings.ReplaceAll(key, "_", " "))
}

// keyForTitle reverses titleForKey.
func keyForTitle(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}

// Run launches the recommendation browser for a deck's commander and
// blocks until the user quits.
func Run(cfg *Config, engine *recommend.Engine, deck *decks.Deck) error {
	commanders := deck.Commanders()
	if len(commanders) == 0 {
		return recommend.ErrNoCommander
	}

	m := initialModel(cfg, engine, deck, commanders[0].Name)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}
	return nil
}
