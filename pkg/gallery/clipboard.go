package gallery

import (
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/artside/internal/catalog"
	"github.com/marcus/artside/internal/models"
)

// clipboardMsg reports the result of a copy.
type clipboardMsg struct {
	what string
	err  error
}

// clipboardCommand picks the platform clipboard writer. On Linux xclip is
// preferred over xsel.
func clipboardCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "windows":
		return exec.Command("clip.exe"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, fmt.Errorf("no clipboard tool found (install xclip or xsel)")
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	cmd, err := clipboardCommand()
	if err != nil {
		return err
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	if _, err := stdin.Write([]byte(text)); err != nil {
		return err
	}
	if err := stdin.Close(); err != nil {
		return err
	}
	return cmd.Wait()
}

// copyArtwork copies the markdown card of a to the clipboard off the UI
// loop.
func copyArtwork(a models.Artwork) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{what: catalog.Credit(a), err: copyToClipboard(catalog.Markdown(a))}
	}
}
