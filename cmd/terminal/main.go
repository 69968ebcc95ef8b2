package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	themeFlag := flag.String("theme", "", "UI theme (cyan, amber, dracula, ice)")
	listThemes := flag.Bool("list-themes", false, "List all available themes")
	flag.Parse()

	if *listThemes {
		fmt.Println("Available themes:")
		for _, theme := range ListThemes() {
			fmt.Printf("  - %s\n", theme)
		}
		return
	}

	selected := *themeFlag
	if selected == "" {
		selected = os.Getenv("STASHBOT_THEME")
	}
	if selected == "" {
		selected = string(ThemeCyan)
	}
	theme := ThemeName(selected)
	if _, ok := palettes[theme]; !ok {
		fmt.Printf("Invalid theme '%s'. Use --list-themes to see available options.\n", theme)
		os.Exit(1)
	}

	m := initialModel(theme)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.close()
	if err != nil {
		slog.Error("error running program", "error", err)
		os.Exit(1)
	}
}
