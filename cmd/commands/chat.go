package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
)

var exitWords = map[string]bool{"quit": true, "exit": true, "bye": true}

// NewChatCommand returns the chat subcommand — the interactive REPL.
func NewChatCommand() *cli.Command {
	return &cli.Command{
		Name:   "chat",
		Usage:  "Talk to the assistant (interactive)",
		Action: runChat,
	}
}

func runChat(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	dispatcher, err := newDispatcher(ctx, cfg, store)
	if err != nil {
		return err
	}

	convID := conversationID()
	slog.Debug("conversation started", "conversation", convID)

	fmt.Println(bannerStyle.Render("🤖 taskpal — your conversational task manager"))
	fmt.Println(hintStyle.Render("Try: \"Add a task to buy groceries\" · \"Show me my tasks\" · \"Complete task 1\" · \"Show my productivity stats\""))
	fmt.Println(hintStyle.Render("Type quit to exit."))
	fmt.Println()

	// One utterance is fully processed, including both model rounds, before
	// the next line is read.
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptStyle.Render("You:") + " ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exitWords[strings.ToLower(line)] {
			fmt.Println("👋 Goodbye! Stay productive!")
			return nil
		}

		slog.Debug("utterance received", "conversation", convID, "utterance", line)
		reply := dispatcher.Handle(ctx, line)
		fmt.Println("🤖 Agent: " + renderMarkdown(reply))
		fmt.Println()

		if ctx.Err() != nil {
			return nil
		}
	}
}

func conversationID() string {
	u := uuid.New().String()
	return "conv_" + strings.ReplaceAll(u[:8], "-", "")
}

var (
	markdownRenderer     *glamour.TermRenderer
	markdownRendererOnce sync.Once
)

// renderMarkdown renders assistant replies for the terminal. Falls back to
// the raw text when the renderer is unavailable.
func renderMarkdown(text string) string {
	markdownRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			slog.Debug("markdown renderer unavailable", "error", err)
			return
		}
		markdownRenderer = r
	})

	if markdownRenderer == nil {
		return text
	}
	out, err := markdownRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
