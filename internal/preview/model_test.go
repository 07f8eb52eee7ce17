package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/texunc/texunc/internal/frame"
	"github.com/texunc/texunc/internal/tabular"
)

func testTable() *frame.Table {
	rows := frame.NewIndex([]string{"method", "result type"},
		[]string{"standard", "value"},
		[]string{"standard", "uncertainty"},
		[]string{"dynamic", "value"},
	)
	t := frame.NewTable(rows, frame.SingleIndex("", "samples"))
	t.Set(0, 0, 0.0000012345)
	t.Set(1, 0, 0.0000005)
	t.Set(2, 0, 7)
	return t
}

func newModel() Model {
	return New(Config{Title: "results", Table: testTable(), Options: tabular.DefaultRenderOptions()})
}

func press(m Model, key string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Model)
}

func TestNew_RendersOnce(t *testing.T) {
	m := newModel()
	if m.Err() != nil {
		t.Fatalf("Err() = %v", m.Err())
	}
	if !strings.Contains(m.Latex(), `$1.2(5)\cdot10^{-6}$`) {
		t.Errorf("Latex() = %s", m.Latex())
	}
}

func TestModel_WidenWindow(t *testing.T) {
	m := newModel()
	for i := 0; i < 2; i++ {
		m = press(m, "+")
	}

	f := m.Options().Format
	if f.MaxPower != 6 || f.MinPower != -6 {
		t.Errorf("window = [%d, %d], want [-6, 6]", f.MinPower, f.MaxPower)
	}
	if !strings.Contains(m.Latex(), "0.0000012(5)") {
		t.Errorf("value should render plainly inside the wider window:\n%s", m.Latex())
	}
}

func TestModel_RejectsInvalidWindow(t *testing.T) {
	m := newModel()
	for i := 0; i < 5; i++ {
		m = press(m, "-")
	}

	f := m.Options().Format
	if f.MaxPower != 0 || f.MinPower != 0 {
		t.Errorf("window = [%d, %d], want it to stop at [0, 0]", f.MinPower, f.MaxPower)
	}
	if m.status == "" {
		t.Error("rejected change should set a status message")
	}

	m = press(m, "+")
	if m.status != "" {
		t.Errorf("status = %q, want it cleared after a valid change", m.status)
	}
}

func TestModel_Toggles(t *testing.T) {
	m := newModel()

	m = press(m, "z")
	if m.Options().Format.ZeroDPInts {
		t.Error("z should toggle ZeroDPInts off")
	}
	if !strings.Contains(m.Latex(), "7.0") {
		t.Errorf("integers should get decimals once ZeroDPInts is off:\n%s", m.Latex())
	}

	m = press(m, "s")
	if !strings.HasPrefix(m.Latex(), `\begin{table*}`) {
		t.Errorf("s should switch to table*:\n%s", m.Latex())
	}

	m = press(m, "c")
	if m.Options().CaptionAbove {
		t.Error("c should move the caption below")
	}

	m = press(m, "D")
	if m.Options().Format.MinDP != 0 {
		t.Errorf("MinDP = %d, want 0", m.Options().Format.MinDP)
	}
	m = press(m, "D")
	if m.Options().Format.MinDP != 0 {
		t.Error("MinDP must not go negative")
	}
}

func TestModel_ViewAfterResize(t *testing.T) {
	m := newModel()
	if got := m.View(); got != "Loading preview..." {
		t.Errorf("View() before resize = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	view := m.View()
	if !strings.Contains(view, Logo) || !strings.Contains(view, "standard") {
		t.Errorf("View() missing header or table:\n%s", view)
	}

	m = press(m, "l")
	if !strings.Contains(m.View(), `\toprule`) {
		t.Errorf("l should show the LaTeX source:\n%s", m.View())
	}
}

func TestModel_Quit(t *testing.T) {
	_, cmd := newModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_ContractViolation(t *testing.T) {
	tbl := frame.NewTable(frame.SingleIndex("method", "a"), frame.SingleIndex("", "x"))
	m := New(Config{Table: tbl, Options: tabular.DefaultRenderOptions()})
	if m.Err() == nil {
		t.Fatal("missing result level should surface as an error")
	}
}

func TestRender(t *testing.T) {
	st := frame.NewStringTable(
		frame.SingleIndex("", "standard", "dynamic"),
		frame.NewIndex([]string{"q", "s"}, []string{"samples", "mean"}),
	)
	st.Cells[0][0] = "1.0(1)"
	st.Cells[1][0] = "7"

	out := Render(st)
	for _, want := range []string{"samples / mean", "standard", "dynamic", "1.0(1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
}
