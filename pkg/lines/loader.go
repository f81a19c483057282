package lines

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/metronav/metronav/pkg/errors"
	pkgio "github.com/metronav/metronav/pkg/io"
	"github.com/metronav/metronav/pkg/network"
)

// Format identifies a single-file network encoding.
type Format string

// Supported single-file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// lineExt is the extension of per-line station files in a directory source.
const lineExt = ".txt"

// Options configures loading.
type Options struct {
	// AllowDuplicateStations accepts lines that list a station more than once.
	// Such stops collapse into one graph state; see package network.
	AllowDuplicateStations bool
}

// document is the YAML and TOML shape of a network file:
//
//	lines:
//	  - id: Red
//	    stations: [A, B, C]
type document struct {
	Lines []struct {
		ID       string   `yaml:"id" toml:"id"`
		Stations []string `yaml:"stations" toml:"stations"`
	} `yaml:"lines" toml:"lines"`
}

// Load reads a network from path, which is either a directory of
// "<line>.txt" files or a single network file whose format is taken from its
// extension (.yaml, .yml, .toml, .json). The result is normalized and
// validated against opts.
func Load(p string, opts Options) (*network.Network, error) {
	if err := errors.ValidatePath(p); err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "lines source %s does not exist", p)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", p, err)
	}

	if info.IsDir() {
		return ReadDir(os.DirFS(p), opts)
	}

	format, err := FormatFromPath(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	n, err := Decode(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return n, nil
}

// FormatFromPath maps a file extension to its Format.
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported network file %q (want a directory, .yaml, .toml or .json)", p)
}

// ReadDir reads every "<line>.txt" file at the root of fsys. The line ID is
// the file name without extension; lines are ordered by ID. Each text line of
// a file is one station, trimmed of surrounding whitespace; blank lines are
// skipped. Other files and subdirectories are ignored.
func ReadDir(fsys fs.FS, opts Options) (*network.Network, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read lines dir: %w", err)
	}

	var ids []string
	files := make(map[string]string)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != lineExt {
			continue
		}
		id := strings.TrimSuffix(name, lineExt)
		ids = append(ids, id)
		files[id] = name
	}
	slices.Sort(ids)

	n := network.New()
	for _, id := range ids {
		stations, err := readStations(fsys, files[id])
		if err != nil {
			return nil, err
		}
		n.Add(network.Line{ID: id, Stations: stations})
	}

	if err := Validate(n, opts); err != nil {
		return nil, err
	}
	return n, nil
}

func readStations(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	var stations []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			stations = append(stations, s)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return stations, nil
}

// Decode reads a single-file network from r in the given format. Lines keep
// document order. Station names are trimmed and blank entries dropped before
// validation.
func Decode(r io.Reader, format Format, opts Options) (*network.Network, error) {
	var (
		n   *network.Network
		err error
	)
	switch format {
	case FormatJSON:
		n, err = pkgio.ReadNetworkJSON(r)
	case FormatYAML, FormatTOML:
		n, err = decodeDocument(r, format)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s network", format)
	}

	n = normalize(n)
	if err := Validate(n, opts); err != nil {
		return nil, err
	}
	return n, nil
}

func decodeDocument(r io.Reader, format Format) (*network.Network, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc document
	if format == FormatYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, err
		}
	} else {
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	}

	n := network.New()
	for i, l := range doc.Lines {
		if l.ID == "" {
			return nil, fmt.Errorf("line %d: missing id", i)
		}
		n.Add(network.Line{ID: l.ID, Stations: l.Stations})
	}
	return n, nil
}

// normalize trims station names and drops blank entries, the same cleanup
// directory sources get line by line.
func normalize(n *network.Network) *network.Network {
	out := network.New()
	for _, l := range n.Lines() {
		stations := make([]string, 0, len(l.Stations))
		for _, s := range l.Stations {
			if s = strings.TrimSpace(s); s != "" {
				stations = append(stations, s)
			}
		}
		out.Add(network.Line{ID: strings.TrimSpace(l.ID), Stations: stations})
	}
	return out
}
