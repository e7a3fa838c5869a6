package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/damoang/angple-forum/internal/repository"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/damoang/angple-forum/internal/tui"
	pkglogger "github.com/damoang/angple-forum/pkg/logger"
)

func main() {
	path := flag.String("path", "/boards", "start page: /, /boards or /posts")
	flag.Parse()

	// keep log lines off the alt screen
	pkglogger.SetOutput(io.Discard)

	svc := service.NewListingService(repository.NewStaticRecordRepository(), nil)
	model := tui.New(context.Background(), svc, *path)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "forumtui: %v\n", err)
		os.Exit(1)
	}
}
