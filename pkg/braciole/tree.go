package braciole

import "path/filepath"

// Slot indices into Settings.KeypadRemapping. Every slot holds the
// Buttons mask (single button) mapped to that emulated key; 0 means
// unassigned.
const (
	RemapA = iota
	RemapB
	RemapSelect
	RemapStart
	RemapRight
	RemapLeft
	RemapUp
	RemapDown
	RemapR
	RemapL
	RemapRapidA
	RemapRapidB
	RemapMenu
	RemapSlots
)

// requiredRemaps are the slots that must never be left unassigned; the
// rapid-fire slots are optional.
var requiredRemaps = []int{
	RemapA, RemapB, RemapSelect, RemapStart,
	RemapRight, RemapLeft, RemapUp, RemapDown,
	RemapR, RemapL, RemapMenu,
}

// Settings is the single state object every persistent Option points
// into. It is owned by the embedding emulator and outlives the session.
type Settings struct {
	BootFromBIOS      uint32
	ShowFPS           uint32
	ScaleMode         uint32
	Frameskip         uint32
	FastForwardTarget uint32
	AnalogSensitivity uint32

	KeypadRemapping   [RemapSlots]uint32
	HotkeyFastForward uint32
}

// DefaultKeypadRemapping is the compiled-in control layout.
func DefaultKeypadRemapping() [RemapSlots]uint32 {
	return [RemapSlots]uint32{
		RemapA:      uint32(ButtonA),
		RemapB:      uint32(ButtonB),
		RemapSelect: uint32(ButtonSelect),
		RemapStart:  uint32(ButtonStart),
		RemapRight:  uint32(ButtonRight),
		RemapLeft:   uint32(ButtonLeft),
		RemapUp:     uint32(ButtonUp),
		RemapDown:   uint32(ButtonDown),
		RemapR:      uint32(ButtonR),
		RemapL:      uint32(ButtonL),
		RemapRapidA: 0,
		RemapRapidB: 0,
		RemapMenu:   uint32(ButtonX),
	}
}

// NewDefaultSettings returns a Settings with the compiled-in defaults.
func NewDefaultSettings() *Settings {
	return &Settings{
		FastForwardTarget: 2, // 4x
		KeypadRemapping:   DefaultKeypadRemapping(),
	}
}

// FixUp repairs impossible combinations after loading a configuration
// file. If any required key mapping was left unassigned, the entire
// mapping set reverts to the compiled-in defaults; this is deliberately
// all-or-nothing so a half-broken layout never survives.
func (st *Settings) FixUp() {
	for _, i := range requiredRemaps {
		if st.KeypadRemapping[i] == 0 {
			st.KeypadRemapping = DefaultKeypadRemapping()
			return
		}
	}
}

// Stats are live counters the debugging menus display read-only.
type Stats struct {
	SoundBufferUnderruns uint64
	FramesEmulated       uint64
	ROBytesPeak          uint64
	RWBytesPeak          uint64
	ROBytesFlushed       uint64
	RWBytesFlushed       uint64
}

// ROMInfo identifies the loaded cartridge.
type ROMInfo struct {
	GameName   string
	GameCode   string
	VendorCode string
}

// ReturnAction closes the menu and resumes the emulated machine.
func ReturnAction(s *Session) {
	s.SetCurrent(nil)
}

// ExitAction asks the emulator process to exit, then closes the menu.
func ExitAction(s *Session) {
	if m := s.Machine(); m != nil {
		m.RequestExit()
	}
	s.SetCurrent(nil)
}

// ResetAction resets the emulated machine and closes the menu.
func ResetAction(s *Session) {
	if m := s.Machine(); m != nil {
		m.Reset()
	}
	s.SetCurrent(nil)
}

func optionEntry(pos int, name, key string, cell *uint32, choices []Choice) *Entry {
	return &Entry{
		Kind:           KindOption,
		Position:       pos,
		Name:           name,
		PersistentName: key,
		Value:          cell,
		Choices:        choices,
	}
}

func displayEntry(pos int, name string, t ValueType, data any) *Entry {
	return &Entry{
		Kind:        KindDisplay,
		Position:    pos,
		Name:        name,
		DisplayType: t,
		Data:        data,
	}
}

func submenuEntry(pos int, name string, target *Menu) *Entry {
	return &Entry{
		Kind:     KindSubmenu,
		Position: pos,
		Name:     name,
		Submenu:  target,
	}
}

// mappingEntry builds a single-button remap row. Its whole behavior is
// overridden: Left/Right do nothing, Enter runs the grab protocol, and
// display/persistence use the button code table.
func mappingEntry(pos int, name, key string, cell *uint32, clearable bool) *Entry {
	enter := SetMappingAction
	if clearable {
		enter = SetOrClearMappingAction
	}
	return &Entry{
		Kind:           KindOption,
		Position:       pos,
		Name:           name,
		PersistentName: key,
		Value:          cell,
		OnEnter:        enter,
		OnLeft:         NopEntry,
		OnRight:        NopEntry,
		DisplayValue:   DisplayMappingValue,
		Load:           LoadMapping,
		Save:           SaveMapping,
	}
}

func hotkeyEntry(pos int, name, key string, cell *uint32) *Entry {
	return &Entry{
		Kind:           KindOption,
		Position:       pos,
		Name:           name,
		PersistentName: key,
		Value:          cell,
		OnEnter:        SetOrClearHotkeyAction,
		OnLeft:         NopEntry,
		OnRight:        NopEntry,
		DisplayValue:   DisplayHotkeyValue,
		Load:           LoadHotkey,
		Save:           SaveHotkey,
	}
}

// link sets the parent of each child menu and returns the parent, so
// menu trees read top-down at the call site.
func link(parent *Menu, children ...*Menu) *Menu {
	for _, c := range children {
		c.Parent = parent
	}
	return parent
}

// NewMainMenu builds the standard emulator menu tree over the given
// settings state. The tree is static for the life of the program; only
// cursor positions and the settings cells mutate afterwards.
func NewMainMenu(st *Settings, stats *Stats, rom *ROMInfo) *Menu {
	displayMenu := &Menu{
		Title: "Display settings",
		Entries: []*Entry{
			optionEntry(0, "Boot from", "boot_from", &st.BootFromBIOS, []Choice{
				{"Cartridge ROM", "cartridge"}, {"Machine BIOS", "bios"},
			}),
			optionEntry(1, "FPS counter", "fps_counter", &st.ShowFPS, []Choice{
				{"Hide", "hide"}, {"Show", "show"},
			}),
			optionEntry(2, "Image scaling", "image_size", &st.ScaleMode, []Choice{
				{"Aspect", "aspect"}, {"Full", "fullscreen"}, {"None", "original"},
			}),
			optionEntry(3, "Frame skipping", "frameskip", &st.Frameskip, []Choice{
				{"Automatic", "auto"}, {"0 (~60 FPS)", "0"}, {"1 (~30 FPS)", "1"},
				{"2 (~20 FPS)", "2"}, {"3 (~15 FPS)", "3"},
			}),
			optionEntry(4, "Fast-forward target", "fast_forward_target", &st.FastForwardTarget, []Choice{
				{"2x (~120 FPS)", "2"}, {"3x (~180 FPS)", "3"}, {"4x (~240 FPS)", "4"},
				{"5x (~300 FPS)", "5"}, {"6x (~360 FPS)", "6"},
			}),
		},
	}

	inputMenu := &Menu{
		Title: "Input settings",
		Entries: []*Entry{
			mappingEntry(0, "Emulated A", "pad_a", &st.KeypadRemapping[RemapA], false),
			mappingEntry(1, "Emulated B", "pad_b", &st.KeypadRemapping[RemapB], false),
			mappingEntry(2, "Emulated Start", "pad_start", &st.KeypadRemapping[RemapStart], false),
			mappingEntry(3, "Emulated Select", "pad_select", &st.KeypadRemapping[RemapSelect], false),
			mappingEntry(4, "Emulated L", "pad_l", &st.KeypadRemapping[RemapL], false),
			mappingEntry(5, "Emulated R", "pad_r", &st.KeypadRemapping[RemapR], false),
			mappingEntry(6, "Rapid-fire A", "rapid_a", &st.KeypadRemapping[RemapRapidA], true),
			mappingEntry(7, "Rapid-fire B", "rapid_b", &st.KeypadRemapping[RemapRapidB], true),
			optionEntry(8, "Analog sensitivity", "analog_sensitivity", &st.AnalogSensitivity, []Choice{
				{"Very low", "lowest"}, {"Low", "low"}, {"Medium", "medium"},
				{"High", "high"}, {"Highest", "highest"},
			}),
		},
	}

	hotkeyMenu := &Menu{
		Title: "Hotkeys",
		Entries: []*Entry{
			hotkeyEntry(0, "Fast-forward", "hotkey_fast_forward", &st.HotkeyFastForward),
		},
	}

	nativeCodeMenu := &Menu{
		Title: "Native code statistics",
		Entries: []*Entry{
			displayEntry(0, "Read-only bytes at peak", TypeUInt64, &stats.ROBytesPeak),
			displayEntry(1, "Writable bytes at peak", TypeUInt64, &stats.RWBytesPeak),
			displayEntry(2, "Read-only bytes flushed", TypeUInt64, &stats.ROBytesFlushed),
			displayEntry(3, "Writable bytes flushed", TypeUInt64, &stats.RWBytesFlushed),
		},
	}

	executionMenu := &Menu{
		Title: "Execution statistics",
		Entries: []*Entry{
			displayEntry(0, "Sound buffer underruns", TypeUInt64, &stats.SoundBufferUnderruns),
			displayEntry(1, "Frames emulated", TypeUInt64, &stats.FramesEmulated),
		},
	}

	romInfoMenu := &Menu{
		Title: "ROM information",
		Entries: []*Entry{
			displayEntry(0, "Game name", TypeString, &rom.GameName),
			displayEntry(1, "Game code", TypeString, &rom.GameCode),
			displayEntry(2, "Vendor code", TypeString, &rom.VendorCode),
		},
	}

	debugMenu := link(&Menu{
		Title: "Performance and debugging",
		Entries: []*Entry{
			submenuEntry(0, "Native code statistics...", nativeCodeMenu),
			submenuEntry(1, "Execution statistics...", executionMenu),
			submenuEntry(2, "ROM information...", romInfoMenu),
		},
	}, nativeCodeMenu, executionMenu, romInfoMenu)

	main := link(&Menu{
		Title: "Main Menu",
		Entries: []*Entry{
			submenuEntry(0, "Display settings...", displayMenu),
			submenuEntry(1, "Input settings...", inputMenu),
			submenuEntry(2, "Hotkeys...", hotkeyMenu),
			submenuEntry(3, "Performance and debugging...", debugMenu),
			{Kind: KindCustom, Position: 5, Name: "Reset the game", OnEnter: ResetAction},
			{Kind: KindCustom, Position: 6, Name: "Return to the game", OnEnter: ReturnAction},
			{Kind: KindCustom, Position: 7, Name: "Exit", OnEnter: ExitAction},
		},
	}, displayMenu, inputMenu, hotkeyMenu, debugMenu)

	return main
}

// ProfilePath names the configuration file for a profile.
func ProfilePath(dir, profile string) string {
	return filepath.Join(dir, profile+".cfg")
}

// LoadProfile reads the profile's configuration into the menu tree and
// runs the fix-up pass. A missing file keeps the defaults; fix-up runs
// either way.
func (st *Settings) LoadProfile(dir, profile string, root *Menu) {
	LoadSettingsFile(ProfilePath(dir, profile), root)
	st.FixUp()
}

// SaveProfile writes the menu tree's persistent options to the
// profile's configuration file.
func SaveProfile(dir, profile string, root *Menu) error {
	return SaveSettingsFile(ProfilePath(dir, profile), root)
}
