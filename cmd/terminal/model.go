package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/stashbot/internal/app"
	"github.com/sevigo/stashbot/internal/core"
)

const helpMarkdown = `## Commands

| Command | Description |
|---|---|
| ` + "`/servers`" + ` | List Jenkins servers |
| ` + "`/repo ID`" + ` | Show the build settings of a repository |
| ` + "`/enable ID`" + `, ` + "`/disable ID`" + ` | Turn CI on or off for a repository |
| ` + "`/use ID SERVER`" + ` | Point a repository at a Jenkins server |
| ` + "`/push PATH ID [REF...]`" + ` | Replay the refs of a local clone as a push |
| ` + "`/report PATH`" + ` | Report a build as Jenkins would |
| ` + "`/help`" + ` | Show this help |
| ` + "`/exit`" + ` | Quit |
`

type model struct {
	styles   styles
	app      *app.App
	cleanup  func()
	renderer *glamour.TermRenderer

	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool

	history []string
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)
	ta := textarea.New()
	ta.Placeholder = "Enter a command, /help for a list..."
	ta.Focus()
	ta.Prompt = styles.prompt.Render("► ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	// Output falls back to raw markdown when no renderer is available.
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(100),
	)

	return &model{
		styles:    styles,
		renderer:  renderer,
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
		history:   []string{styles.banner.Render("stashbot console"), "", "Connecting..."},
	}
}

// close releases the resources held by the application.
func (m *model) close() {
	if m.cleanup != nil {
		m.cleanup()
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			m.textarea.Reset()
			if input == "" {
				return m, nil
			}
			return m, m.processCommand(input)
		}

	case appInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.appendLines("", m.styles.error.Render("Initialization failed: "+msg.err.Error()))
			return m, nil
		}
		m.app = msg.app
		m.cleanup = msg.cleanup
		m.appendLines("", m.styles.success.Render("✓ Connected"),
			m.styles.inactive.Render(fmt.Sprintf("storage: %s │ public url: %s", m.app.Config.StorageDriver, m.app.Config.Server.PublicURL)),
			"", "Type /help for commands.")
		return m, nil

	case outputMsg:
		m.isLoading = false
		m.appendLines(m.render(msg.markdown))
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.appendLines("", m.styles.error.Render("⚠ "+msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		m.textarea.SetWidth(msg.Width - 10)
		m.viewport.SetContent(strings.Join(m.history, "\n"))
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.app == nil && m.isLoading {
		return fmt.Sprintf("\n  %s connecting...\n\n", m.spinner.View())
	}

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("WORKING...")
	}

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.viewport.Render(m.viewport.View()),
			m.styles.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.textarea.View(),
					loadingIndicator,
				),
			),
		),
	)
}

func (m *model) appendLines(lines ...string) {
	m.history = append(m.history, lines...)
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) render(markdown string) string {
	if m.renderer == nil {
		return markdown
	}
	out, err := m.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func (m *model) usage(text string) tea.Cmd {
	m.appendLines(m.styles.error.Render("USAGE: " + text))
	return nil
}

func (m *model) run(cmd tea.Cmd) tea.Cmd {
	m.isLoading = true
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m *model) processCommand(input string) tea.Cmd {
	m.appendLines(m.styles.prompt.Render("► ") + input)

	parts := strings.Fields(input)
	command, args := parts[0], parts[1:]

	switch command {
	case "/help", "/h":
		m.appendLines(m.render(helpMarkdown))
		return nil
	case "/exit", "/quit":
		return tea.Quit
	}

	if m.app == nil {
		m.appendLines(m.styles.error.Render("The application is not initialized."))
		return nil
	}

	switch command {
	case "/servers":
		return m.run(listServersCmd(m.app))

	case "/repo":
		if len(args) != 1 {
			return m.usage("/repo ID")
		}
		id, err := parseRepoID(args[0])
		if err != nil {
			return m.usage("/repo ID")
		}
		return m.run(showRepoCmd(m.app, id))

	case "/enable", "/disable":
		if len(args) != 1 {
			return m.usage(command + " ID")
		}
		id, err := parseRepoID(args[0])
		if err != nil {
			return m.usage(command + " ID")
		}
		enabled := command == "/enable"
		return m.run(updateRepoCmd(m.app, id, func(rc *core.RepoConfig) { rc.CIEnabled = enabled }))

	case "/use":
		if len(args) != 2 {
			return m.usage("/use ID SERVER")
		}
		id, err := parseRepoID(args[0])
		if err != nil {
			return m.usage("/use ID SERVER")
		}
		server := args[1]
		return m.run(updateRepoCmd(m.app, id, func(rc *core.RepoConfig) { rc.ServerName = server }))

	case "/push":
		if len(args) < 2 {
			return m.usage("/push PATH ID [REF...]")
		}
		id, err := parseRepoID(args[1])
		if err != nil {
			return m.usage("/push PATH ID [REF...]")
		}
		return m.run(pushCmd(m.app, args[0], id, args[2:]))

	case "/report":
		if len(args) != 1 {
			return m.usage("/report PATH")
		}
		return m.run(reportCmd(m.app, args[0]))

	default:
		m.appendLines(m.styles.error.Render("UNKNOWN COMMAND: "+command), m.styles.inactive.Render("Type /help for assistance."))
		return nil
	}
}

func parseRepoID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid repository id %q", s)
	}
	return id, nil
}
