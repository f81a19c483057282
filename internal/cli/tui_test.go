package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestMenuModel(t *testing.T) {
	var m tea.Model = NewMenuModel("metronav")

	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyDown))
	m, _ = m.Update(key(tea.KeyUp))
	m, cmd := m.Update(key(tea.KeyEnter))

	mm := m.(MenuModel)
	if mm.Selected == nil || *mm.Selected != actionLines {
		t.Fatalf("Selected = %v, want actionLines", mm.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if !strings.Contains(mm.View(), "▸ List lines") {
		t.Errorf("cursor not rendered:\n%s", mm.View())
	}
}

func TestMenuModelQuit(t *testing.T) {
	var m tea.Model = NewMenuModel("metronav")
	m, _ = m.Update(runes("q"))
	if sel := m.(MenuModel).Selected; sel == nil || *sel != actionQuit {
		t.Errorf("q should select quit, got %v", sel)
	}
}

func TestMenuModelCursorBounds(t *testing.T) {
	var m tea.Model = NewMenuModel("metronav")
	m, _ = m.Update(key(tea.KeyUp))
	if c := m.(MenuModel).Cursor; c != 0 {
		t.Errorf("cursor moved above first entry: %d", c)
	}
	for range len(menuLabels) + 2 {
		m, _ = m.Update(key(tea.KeyDown))
	}
	if c := m.(MenuModel).Cursor; c != len(menuLabels)-1 {
		t.Errorf("cursor = %d, want last entry", c)
	}
}

func TestStationPickerFilter(t *testing.T) {
	stations := []string{"Espanya", "Catalunya", "Passeig de Gràcia", "Liceu", "Sagrada Família"}
	var m tea.Model = NewStationPickerModel("Start station:", stations)

	m, _ = m.Update(runes("ia"))
	pm := m.(StationPickerModel)
	if want := []string{"Passeig de Gràcia", "Sagrada Família"}; !slices.Equal(pm.matches, want) {
		t.Fatalf("matches = %v, want %v", pm.matches, want)
	}

	m, _ = m.Update(key(tea.KeyDown))
	m, cmd := m.Update(key(tea.KeyEnter))
	pm = m.(StationPickerModel)
	if pm.Selected != "Sagrada Família" || cmd == nil {
		t.Errorf("Selected = %q", pm.Selected)
	}
}

func TestStationPickerBackspaceAndSpace(t *testing.T) {
	var m tea.Model = NewStationPickerModel("Station:", []string{"Passeig de Gràcia", "Gràcia"})

	m, _ = m.Update(runes("de"))
	m, _ = m.Update(key(tea.KeySpace))
	if f := m.(StationPickerModel).Filter; f != "de " {
		t.Errorf("Filter = %q", f)
	}
	if got := len(m.(StationPickerModel).matches); got != 1 {
		t.Errorf("matches = %d, want 1", got)
	}

	for range 3 {
		m, _ = m.Update(key(tea.KeyBackspace))
	}
	if got := len(m.(StationPickerModel).matches); got != 2 {
		t.Errorf("cleared filter should match all, got %d", got)
	}
}

func TestStationPickerNoMatch(t *testing.T) {
	var m tea.Model = NewStationPickerModel("Station:", []string{"A", "B"})
	m, _ = m.Update(runes("zzz"))
	m, cmd := m.Update(key(tea.KeyEnter))

	pm := m.(StationPickerModel)
	if pm.Selected != "" || cmd != nil {
		t.Error("enter with no matches should do nothing")
	}
	if !strings.Contains(pm.View(), "no matching station") {
		t.Errorf("View() = %q", pm.View())
	}
}

func TestStationPickerCancel(t *testing.T) {
	var m tea.Model = NewStationPickerModel("Station:", []string{"A"})
	m, _ = m.Update(key(tea.KeyEsc))
	if !m.(StationPickerModel).Canceled {
		t.Error("esc should cancel")
	}
}
