package lines

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/metronav/metronav/pkg/errors"
)

func TestReadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"L3.txt":        {Data: []byte("Zona Universitària\n  Espanya  \n\nCatalunya\n")},
		"L1.txt":        {Data: []byte("Hospital de Bellvitge\r\nEspanya\r\nCatalunya\r\n")},
		"README.md":     {Data: []byte("not a line")},
		"old/L9.txt":    {Data: []byte("Nowhere")},
		"notes.txt.bak": {Data: []byte("ignored")},
	}

	n, err := ReadDir(fsys, Options{})
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if got, want := n.IDs(), []string{"L1", "L3"}; !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
	l3, _ := n.Line("L3")
	if want := []string{"Zona Universitària", "Espanya", "Catalunya"}; !slices.Equal(l3.Stations, want) {
		t.Errorf("L3 = %q, want %q", l3.Stations, want)
	}
	l1, _ := n.Line("L1")
	if l1.Stations[0] != "Hospital de Bellvitge" {
		t.Errorf("CRLF not trimmed: %q", l1.Stations[0])
	}
}

func TestReadDirRejectsEmptyLine(t *testing.T) {
	fsys := fstest.MapFS{
		"L1.txt": {Data: []byte("A\nB\n")},
		"L2.txt": {Data: []byte("\n   \n")},
	}
	_, err := ReadDir(fsys, Options{})
	if !errors.Is(err, errors.ErrCodeInvalidNetwork) {
		t.Fatalf("error = %v, want INVALID_NETWORK", err)
	}
	var le *errors.LineError
	if !stderrors.As(err, &le) || le.Line != "L2" || le.Reason != "no stations" {
		t.Errorf("LineError = %+v", le)
	}
}

func TestDuplicateStations(t *testing.T) {
	fsys := fstest.MapFS{"Loop.txt": {Data: []byte("A\nB\nA\n")}}

	_, err := ReadDir(fsys, Options{})
	var le *errors.LineError
	if !stderrors.As(err, &le) || le.Station != "A" || le.Reason != "duplicate station" {
		t.Fatalf("error = %v, want duplicate station A", err)
	}

	n, err := ReadDir(fsys, Options{AllowDuplicateStations: true})
	if err != nil {
		t.Fatalf("AllowDuplicateStations: error %v", err)
	}
	if l, _ := n.Line("Loop"); l.Len() != 3 {
		t.Errorf("Loop has %d stations, want 3", l.Len())
	}
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "YAML",
			format: FormatYAML,
			input: `lines:
  - id: Red
    stations: [A, " B ", C]
  - id: Blue
    stations:
      - X
      - B
      - ""
      - Y
`,
		},
		{
			name:   "TOML",
			format: FormatTOML,
			input: `[[lines]]
id = "Red"
stations = ["A", " B ", "C"]

[[lines]]
id = "Blue"
stations = ["X", "B", "", "Y"]
`,
		},
		{
			name:   "JSON",
			format: FormatJSON,
			input:  `{"lines": [{"id": "Red", "stations": ["A", " B ", "C"]}, {"id": "Blue", "stations": ["X", "B", "", "Y"]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Decode(strings.NewReader(tt.input), tt.format, Options{})
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got := n.IDs(); !slices.Equal(got, []string{"Red", "Blue"}) {
				t.Errorf("IDs() = %v, want document order", got)
			}
			red, _ := n.Line("Red")
			if !slices.Equal(red.Stations, []string{"A", "B", "C"}) {
				t.Errorf("Red = %q", red.Stations)
			}
			blue, _ := n.Line("Blue")
			if !slices.Equal(blue.Stations, []string{"X", "B", "Y"}) {
				t.Errorf("Blue = %q", blue.Stations)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		code   errors.Code
	}{
		{"YAMLSyntax", FormatYAML, "lines: [", errors.ErrCodeInvalidFormat},
		{"YAMLUnknownKey", FormatYAML, "routes: []", errors.ErrCodeInvalidFormat},
		{"YAMLMissingID", FormatYAML, "lines:\n  - stations: [A]\n", errors.ErrCodeInvalidFormat},
		{"TOMLUnknownKey", FormatTOML, "[[lines]]\nid = \"A\"\nstations = [\"x\"]\ncolor = \"red\"\n", errors.ErrCodeInvalidFormat},
		{"JSONSyntax", FormatJSON, "{", errors.ErrCodeInvalidFormat},
		{"UnknownFormat", Format("xml"), "<lines/>", errors.ErrCodeInvalidFormat},
		{"SlashInID", FormatYAML, "lines:\n  - id: a/b\n    stations: [A]\n", errors.ErrCodeInvalidNetwork},
		{"ControlCharStation", FormatJSON, `{"lines": [{"id": "L", "stations": ["A\u0007B"]}]}`, errors.ErrCodeInvalidNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format, Options{})
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	n, err := Decode(strings.NewReader(""), FormatYAML, Options{})
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if n.Len() != 0 {
		t.Errorf("Len() = %d, want 0", n.Len())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	linesDir := filepath.Join(dir, "lines")
	if err := os.Mkdir(linesDir, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(linesDir, "Red.txt"), "A\nB\nC\n")
	writeFile(t, filepath.Join(linesDir, "Blue.txt"), "X\nB\nY\n")
	writeFile(t, filepath.Join(dir, "network.yml"), "lines:\n  - id: Red\n    stations: [A, B]\n")
	writeFile(t, filepath.Join(dir, "network.csv"), "A,B\n")

	t.Run("Directory", func(t *testing.T) {
		n, err := Load(linesDir, Options{})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if got := n.IDs(); !slices.Equal(got, []string{"Blue", "Red"}) {
			t.Errorf("IDs() = %v", got)
		}
	})

	t.Run("File", func(t *testing.T) {
		n, err := Load(filepath.Join(dir, "network.yml"), Options{})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if n.Len() != 1 {
			t.Errorf("Len() = %d, want 1", n.Len())
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope"), Options{})
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "network.csv"), Options{})
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error = %v, want INVALID_FORMAT", err)
		}
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := Load("", Options{})
		if !errors.Is(err, errors.ErrCodeInvalidPath) {
			t.Errorf("error = %v, want INVALID_PATH", err)
		}
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"net.yaml": FormatYAML,
		"net.YML":  FormatYAML,
		"net.toml": FormatTOML,
		"net.json": FormatJSON,
	}
	for p, want := range tests {
		got, err := FormatFromPath(p)
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", p, got, err, want)
		}
	}
	if _, err := FormatFromPath("net.txt"); err == nil {
		t.Error("FormatFromPath(net.txt) should fail")
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}
