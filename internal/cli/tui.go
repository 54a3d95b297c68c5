package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/coordinator/internal/demo"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/constants"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
)

var (
	layerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	frontierStyle = layerStyle.
			BorderForeground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const helpText = "p push · m present sheet · c present foo · d dismiss · q quit"

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Drive the sample flows interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			app := demo.NewApp(cat, memstack.New(memstack.Options{}), nil)
			if err := app.Start(); err != nil {
				return err
			}

			_, err = tea.NewProgram(newModel(app), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// settledMsg marks the end of a simulated transition animation.
type settledMsg struct{}

// completedMsg carries a transition completion result.
type completedMsg struct {
	op string
	ok bool
}

type model struct {
	app       *demo.App
	animating int
	status    string
	err       error
	results   chan completedMsg
}

func newModel(app *demo.App) model {
	return model{
		app:     app,
		status:  "attached home",
		results: make(chan completedMsg, 16),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case settledMsg:
		m.animating--
		m.app.Presenter.Settle()
		return m, m.drain()

	case completedMsg:
		m.status = fmt.Sprintf("%s completed: %t", msg.op, msg.ok)
		return m, m.drain()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}

	op := demo.Action(key)
	if op == "" {
		return m, nil
	}

	status, err := m.app.Do(key, m.then(coordinator.DefaultTransitionOptions(), op))
	if err == nil {
		m.status = status
	}

	m.err = err
	if err != nil {
		// Rejections report through the completion channel synchronously.
		return m, m.drain()
	}

	m.animating++
	return m, tea.Batch(m.drain(), tea.Tick(constants.DefaultAnimationDuration, func(time.Time) tea.Msg {
		return settledMsg{}
	}))
}

// then routes the completion callback into the bubbletea loop.
func (m model) then(opts coordinator.TransitionOptions, op string) coordinator.TransitionOptions {
	results := m.results
	return opts.Then(func(ok bool) {
		select {
		case results <- completedMsg{op: op, ok: ok}:
		default:
		}
	})
}

func (m model) drain() tea.Cmd {
	select {
	case msg := <-m.results:
		return func() tea.Msg { return msg }
	default:
		return nil
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("presentation chain"))
	b.WriteString("\n")

	layers := m.app.Layers()
	for i, layer := range layers {
		style := layerStyle
		if i == len(layers)-1 {
			style = frontierStyle
		}

		label := fmt.Sprintf("#%d %s", layer.Stack, layer.Group)
		if i > 0 {
			label += " · " + layer.Style.GetName()
		}
		body := label + "\n" + strings.Join(layer.Titles, " › ")

		b.WriteString(lipgloss.NewStyle().MarginLeft(i * 2).Render(style.Render(body)))
		b.WriteString("\n")
	}

	status := m.status
	if m.animating > 0 {
		status += " …"
	}
	b.WriteString(status)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}
