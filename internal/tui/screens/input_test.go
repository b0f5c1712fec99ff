//nolint:varnamelen // Test files use idiomatic short variable names (g, etc.)
package screens_test

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-insight/internal/config"
	"github.com/joe/dir-insight/internal/tui/screens"
	"github.com/joe/dir-insight/internal/tui/shared"
)

func TestInputScreen_EnterWithDirectoryTransitions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	cfg := &config.Config{Path: dir}

	_, cmd := screens.NewInputScreen(cfg).Update(tea.KeyMsg{Type: tea.KeyEnter})
	g.Expect(cmd).ShouldNot(BeNil())

	msg, ok := cmd().(shared.TransitionToAnalysisMsg)
	g.Expect(ok).Should(BeTrue())
	g.Expect(msg.Path).Should(Equal(dir))
	g.Expect(cfg.Path).Should(Equal(dir))
}

func TestInputScreen_EnterWithRemoteURLTransitions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, cmd := screens.NewInputScreen(&config.Config{Path: "sftp://joe@host:2222/data"}).Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg, ok := cmd().(shared.TransitionToAnalysisMsg)
	g.Expect(ok).Should(BeTrue())
	g.Expect(msg.Path).Should(Equal("sftp://joe@host:2222/data"))
}

func TestInputScreen_ValidationErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")

	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", "path is required"},
		{"file", file, "not a directory"},
		{"missing", filepath.Join(dir, "nope"), "no such file or directory"},
		{"bad url", "sftp://", "invalid path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			model, cmd := screens.NewInputScreen(&config.Config{Path: tt.path}).Update(tea.KeyMsg{Type: tea.KeyEnter})

			g.Expect(cmd).Should(BeNil())
			g.Expect(model.View()).Should(ContainSubstring(tt.want))
		})
	}
}

func TestInputScreen_EscClearsField(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model, _ := screens.NewInputScreen(&config.Config{Path: "/tmp/something"}).Update(tea.KeyMsg{Type: tea.KeyEsc})

	input, ok := model.(screens.InputScreen)
	g.Expect(ok).Should(BeTrue())
	g.Expect(input.Value()).Should(BeEmpty())
}

func TestInputScreen_TypingUpdatesValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	model, _ := screens.NewInputScreen(&config.Config{}).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/srv")})

	input, ok := model.(screens.InputScreen)
	g.Expect(ok).Should(BeTrue())
	g.Expect(input.Value()).Should(Equal("/srv"))
}

func TestInputScreen_TabCompletesSingleDirectory(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	g.Expect(os.Mkdir(filepath.Join(dir, "projects"), 0o755)).Should(Succeed())
	g.Expect(os.WriteFile(filepath.Join(dir, "profile.txt"), nil, 0o600)).Should(Succeed())

	model, _ := screens.NewInputScreen(&config.Config{Path: filepath.Join(dir, "pro")}).Update(tea.KeyMsg{Type: tea.KeyTab})

	input, ok := model.(screens.InputScreen)
	g.Expect(ok).Should(BeTrue())
	g.Expect(input.Value()).Should(Equal(filepath.Join(dir, "projects") + string(filepath.Separator)))
}

func TestInputScreen_CtrlCQuits(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, cmd := screens.NewInputScreen(&config.Config{}).Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	g.Expect(cmd()).Should(Equal(tea.Quit()))
}
