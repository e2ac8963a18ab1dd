package braciole

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BrandonKowalski/braciole/internal"
)

// maxConfigLine bounds a single configuration line; longer lines are
// truncated, not rejected.
const maxConfigLine = 256

// defaultSave renders an Option entry as `key = token #label`.
func defaultSave(e *Entry) string {
	if e.Value == nil || int(*e.Value) >= len(e.Choices) {
		return ""
	}
	c := e.Choices[*e.Value]
	return fmt.Sprintf("%s = %s #%s\n", e.PersistentName, c.Token, c.Label)
}

// defaultLoad matches the token case-insensitively against the entry's
// choices. On no match the entry keeps its prior value.
func defaultLoad(e *Entry, value string) error {
	for i, c := range e.Choices {
		if strings.EqualFold(c.Token, value) {
			if e.Value != nil {
				*e.Value = uint32(i)
			}
			return nil
		}
	}
	return fmt.Errorf("value %q not among the choices", value)
}

// FindByPersistentName locates the Option entry with the given persistent
// key anywhere in the menu tree, matching case-insensitively. Returns nil
// when no entry carries that key.
func FindByPersistentName(m *Menu, name string) *Entry {
	for _, e := range m.Entries {
		switch e.Kind {
		case KindSubmenu:
			if e.Submenu != nil {
				if found := FindByPersistentName(e.Submenu, name); found != nil {
					return found
				}
			}
		case KindOption:
			if strings.EqualFold(e.PersistentName, name) {
				return e
			}
		}
	}
	return nil
}

// SaveSettings writes every persistent Option of the menu tree to w, one
// line per entry, in pre-order traversal. Submenu entries recurse into
// their target; Display and Custom entries are skipped.
func SaveSettings(w io.Writer, root *Menu) error {
	bw := bufio.NewWriter(w)
	if err := saveMenu(bw, root); err != nil {
		return err
	}
	return bw.Flush()
}

func saveMenu(w *bufio.Writer, m *Menu) error {
	for _, e := range m.Entries {
		switch e.Kind {
		case KindSubmenu:
			if e.Submenu != nil {
				if err := saveMenu(w, e.Submenu); err != nil {
					return err
				}
			}
		case KindOption:
			save := e.Save
			if save == nil {
				save = defaultSave
			}
			line := save(e)
			if line == "" {
				internal.GetLogger().Warn("option produced no settings line; skipped",
					"option", e.PersistentName)
				continue
			}
			if _, err := w.WriteString(line); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveSettingsFile writes the settings of the menu tree to the named
// file, replacing any previous contents.
func SaveSettingsFile(path string, root *Menu) error {
	f, err := os.Create(path)
	if err != nil {
		internal.GetLogger().Error("cannot open settings file for writing",
			"path", path, "error", err)
		return err
	}
	defer f.Close()

	if err := SaveSettings(f, root); err != nil {
		internal.GetLogger().Error("cannot write settings file",
			"path", path, "error", err)
		return err
	}
	return nil
}

// LoadSettings reads configuration lines from r and applies them to the
// menu tree. Unknown keys and unrecognized values are logged and skipped;
// nothing here is fatal. The caller is responsible for any post-load
// fix-up pass.
func LoadSettings(r io.Reader, root *Menu) {
	logger := internal.GetLogger()
	br := bufio.NewReader(r)
	for {
		line, err := readConfigLine(br)
		if line != "" || err == nil {
			loadConfigLine(root, line, logger)
		}
		if err != nil {
			return
		}
	}
}

func loadConfigLine(root *Menu, line string, logger *slog.Logger) {
	key, value, ok := parseConfigLine(line)
	if !ok {
		return
	}

	e := FindByPersistentName(root, key)
	if e == nil {
		logger.Warn("option not found; ignored", "option", key)
		return
	}

	load := e.Load
	if load == nil {
		load = defaultLoad
	}
	if err := load(e, value); err != nil {
		logger.Warn("option value not valid; ignored",
			"option", key, "value", value, "error", err)
	}
}

// readConfigLine returns the next line without its terminator, truncated
// to maxConfigLine bytes. io.EOF is returned alongside the final line.
func readConfigLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if len(line) > maxConfigLine {
		line = line[:maxConfigLine]
	}
	return line, err
}

// parseConfigLine splits one `key = value #comment` line. Leading and
// trailing whitespace is ignored, the key ends at whitespace or '=', and
// the value runs until a '#' comment marker or end of line. Lines with no
// key, no '=' or no value are skipped.
func parseConfigLine(line string) (key, value string, ok bool) {
	rest := strings.TrimLeft(line, " \t")

	end := strings.IndexAny(rest, " \t=")
	if end <= 0 {
		return "", "", false
	}
	key = rest[:end]
	rest = strings.TrimLeft(rest[end:], " \t")

	if len(rest) == 0 || rest[0] != '=' {
		return "", "", false
	}
	rest = rest[1:]

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}
	value = strings.Trim(rest, " \t")
	if value == "" {
		return "", "", false
	}
	return key, value, true
}

// LoadSettingsFile reads settings from the named file. A missing or
// unreadable file is non-fatal: the current (default) values stay in
// effect and the condition is logged.
func LoadSettingsFile(path string, root *Menu) {
	f, err := os.Open(path)
	if err != nil {
		internal.GetLogger().Warn("cannot open settings file; keeping defaults",
			"path", path, "error", err)
		return
	}
	defer f.Close()

	LoadSettings(f, root)
}
