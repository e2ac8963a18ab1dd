package braciole

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func settingsFixture() (*Settings, *Menu) {
	st := NewDefaultSettings()
	stats := &Stats{}
	rom := &ROMInfo{}
	return st, NewMainMenu(st, stats, rom)
}

func TestSaveSettingsLineFormat(t *testing.T) {
	st, root := settingsFixture()
	st.ShowFPS = 1
	st.Frameskip = 2

	var buf bytes.Buffer
	if err := SaveSettings(&buf, root); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	out := buf.String()

	for _, line := range []string{
		"boot_from = cartridge #Cartridge ROM\n",
		"fps_counter = show #Show\n",
		"frameskip = 1 #1 (~30 FPS)\n",
		"pad_a = A #A\n",
		"rapid_a = x #None\n",
		"hotkey_fast_forward = x #None\n",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("output missing %q:\n%s", line, out)
		}
	}
}

func TestParseConfigLine(t *testing.T) {
	tests := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"frameskip = auto", "frameskip", "auto", true},
		{"  frameskip = auto  ", "frameskip", "auto", true},
		{"frameskip=auto", "frameskip", "auto", true},
		{"frameskip \t=\t auto", "frameskip", "auto", true},
		{"frameskip = auto #automatic frame skipping", "frameskip", "auto", true},
		{"frameskip = auto#comment", "frameskip", "auto", true},
		{"", "", "", false},
		{"   ", "", "", false},
		{"#only a comment", "", "", false},
		{"frameskip", "", "", false},
		{"frameskip =", "", "", false},
		{"frameskip = #comment only", "", "", false},
		{"frameskip auto", "", "", false},
		{"= auto", "", "", false},
	}
	for _, tt := range tests {
		key, value, ok := parseConfigLine(tt.line)
		if key != tt.key || value != tt.value || ok != tt.ok {
			t.Errorf("parseConfigLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, key, value, ok, tt.key, tt.value, tt.ok)
		}
	}
}

func TestLoadSettingsAppliesTokens(t *testing.T) {
	st, root := settingsFixture()

	input := strings.Join([]string{
		"fps_counter = SHOW", // tokens match case-insensitively
		"image_size = fullscreen",
		"no_such_option = 1",  // unknown keys are skipped
		"frameskip = eleven",  // bad values keep the prior value
		"fast_forward_target = 5",
		"",
		"# standalone comment",
	}, "\n")

	LoadSettings(strings.NewReader(input), root)

	if st.ShowFPS != 1 {
		t.Errorf("ShowFPS = %d, want 1", st.ShowFPS)
	}
	if st.ScaleMode != 1 {
		t.Errorf("ScaleMode = %d, want 1", st.ScaleMode)
	}
	if st.Frameskip != 0 {
		t.Errorf("Frameskip = %d, want 0 (bad value ignored)", st.Frameskip)
	}
	if st.FastForwardTarget != 3 {
		t.Errorf("FastForwardTarget = %d, want 3", st.FastForwardTarget)
	}
}

func TestLoadSettingsKeysMatchCaseInsensitively(t *testing.T) {
	st, root := settingsFixture()

	LoadSettings(strings.NewReader("FPS_Counter = show\n"), root)
	if st.ShowFPS != 1 {
		t.Fatalf("ShowFPS = %d, want 1", st.ShowFPS)
	}
}

func TestLoadSettingsTruncatesLongLines(t *testing.T) {
	st, root := settingsFixture()

	// Junk past the truncation point must not reach the parser.
	line := "fps_counter = show" + strings.Repeat(" ", 300) + "junk\n"
	LoadSettings(strings.NewReader(line), root)
	if st.ShowFPS != 1 {
		t.Fatalf("ShowFPS = %d, want 1", st.ShowFPS)
	}
}

func TestLoadSettingsLastLineWithoutNewline(t *testing.T) {
	st, root := settingsFixture()

	LoadSettings(strings.NewReader("fps_counter = show"), root)
	if st.ShowFPS != 1 {
		t.Fatalf("ShowFPS = %d, want 1", st.ShowFPS)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	st, root := settingsFixture()
	st.BootFromBIOS = 1
	st.ShowFPS = 1
	st.ScaleMode = 2
	st.Frameskip = 4
	st.FastForwardTarget = 1
	st.AnalogSensitivity = 3
	st.KeypadRemapping[RemapA] = uint32(ButtonY)
	st.KeypadRemapping[RemapRapidA] = uint32(ButtonAnalogUp)
	st.HotkeyFastForward = uint32(ButtonR | ButtonX)

	var buf bytes.Buffer
	if err := SaveSettings(&buf, root); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, loadedRoot := settingsFixture()
	LoadSettings(bytes.NewReader(buf.Bytes()), loadedRoot)

	if *loaded != *st {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", *loaded, *st)
	}
}

func TestLoadSettingsFileMissingKeepsDefaults(t *testing.T) {
	st, root := settingsFixture()

	LoadSettingsFile(filepath.Join(t.TempDir(), "nope.cfg"), root)

	want := NewDefaultSettings()
	if *st != *want {
		t.Fatalf("settings changed by a missing file:\ngot  %+v\nwant %+v", *st, *want)
	}
}

func TestSaveAndLoadProfile(t *testing.T) {
	dir := t.TempDir()

	st, root := settingsFixture()
	st.ShowFPS = 1
	if err := SaveProfile(dir, "player1", root); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	loaded, loadedRoot := settingsFixture()
	loaded.LoadProfile(dir, "player1", loadedRoot)
	if loaded.ShowFPS != 1 {
		t.Fatalf("ShowFPS = %d after profile round trip, want 1", loaded.ShowFPS)
	}
}

func TestFindByPersistentName(t *testing.T) {
	_, root := settingsFixture()

	e := FindByPersistentName(root, "Hotkey_Fast_Forward")
	if e == nil {
		t.Fatal("nested option not found")
	}
	if e.PersistentName != "hotkey_fast_forward" {
		t.Fatalf("found %q, want hotkey_fast_forward", e.PersistentName)
	}

	if e := FindByPersistentName(root, "does_not_exist"); e != nil {
		t.Fatalf("found %q for an unknown key", e.PersistentName)
	}
}
