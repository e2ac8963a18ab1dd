package braciole

// EntryKind selects the behavior family of a menu entry.
type EntryKind int

const (
	// KindOption is an entry whose value is an index into an enumerated,
	// ordered set of named choices.
	KindOption EntryKind = iota
	// KindSubmenu links to a child menu; Enter descends into it.
	KindSubmenu
	// KindDisplay renders a read-only typed value.
	KindDisplay
	// KindCustom carries no default behavior; everything it does comes
	// from its hook overrides.
	KindCustom
)

// ValueType selects how a KindDisplay entry formats its data.
type ValueType int

const (
	TypeString ValueType = iota
	TypeInt32
	TypeUInt32
	TypeInt64
	TypeUInt64
)

// Choice is one selectable value of an Option entry. Label is shown to the
// user; Token is the stable machine-readable name written to the
// configuration file.
type Choice struct {
	Label string
	Token string
}

// ModifyFunc is a hook that acts on the navigation state. It may switch
// the active menu (SetCurrent) or move the cursor (SetActiveIndex).
// Switching to a nil menu ends the session.
type ModifyFunc func(s *Session)

// EntryFunc is a hook acting on a single entry (Left/Right handlers).
type EntryFunc func(s *Session, e *Entry)

// DisplayFunc draws one element (name or value) of an entry. drawn is the
// entry being rendered; active is the entry under the cursor.
type DisplayFunc func(s *Session, drawn, active *Entry)

// MenuFunc is a per-menu hook (background, title, init, end).
type MenuFunc func(s *Session, m *Menu)

// MenuDisplayFunc draws the body of a menu given the active entry.
type MenuDisplayFunc func(s *Session, m *Menu, active *Entry)

// LoadFunc applies a configuration value to an entry. A non-nil error
// means the value was not recognized; the caller logs it and the entry
// keeps its prior value.
type LoadFunc func(e *Entry, value string) error

// SaveFunc renders an entry as a single configuration line, including the
// trailing newline.
type SaveFunc func(e *Entry) string

// Entry is one selectable or displayable row of a menu.
//
// Every hook field may be nil, in which case the default behavior for the
// entry's kind applies. Value is only meaningful for KindOption, Data for
// KindDisplay, Submenu for KindSubmenu.
type Entry struct {
	Kind           EntryKind
	Name           string
	PersistentName string

	// Position is the 0-based row used by the default display functions.
	// Custom display functions may give it a new meaning.
	Position int

	// Value is the externally owned choice index of an Option entry. The
	// engine keeps it below len(Choices) but does not re-validate after
	// external mutation; display code flags out-of-range values instead.
	Value *uint32

	// Data backs a KindDisplay entry. It must hold *string, *int32,
	// *uint32, *int64 or *uint64 matching DisplayType.
	Data        any
	DisplayType ValueType

	Submenu *Menu
	Choices []Choice

	OnEnter      ModifyFunc
	OnLeft       EntryFunc
	OnRight      EntryFunc
	DisplayName  DisplayFunc
	DisplayValue DisplayFunc
	Load         LoadFunc
	Save         SaveFunc

	UserData any
}

// Menu is an ordered, fixed sequence of entries. Menus form a static tree
// built once at startup; only ActiveIndex and the entries' value cells
// mutate afterwards.
type Menu struct {
	Parent  *Menu
	Title   string
	Entries []*Entry

	DisplayBackground MenuFunc
	DisplayTitle      MenuFunc
	DisplayData       MenuDisplayFunc
	OnUp              ModifyFunc
	OnDown            ModifyFunc
	OnLeave           ModifyFunc
	Init              MenuFunc
	End               MenuFunc

	// ActiveIndex is the currently highlighted entry, always within
	// [0, len(Entries)) for a non-empty menu.
	ActiveIndex int

	UserData any
}

// ActiveEntry returns the highlighted entry, or nil for an empty menu or
// an out-of-range cursor.
func (m *Menu) ActiveEntry() *Entry {
	if m == nil || m.ActiveIndex < 0 || m.ActiveIndex >= len(m.Entries) {
		return nil
	}
	return m.Entries[m.ActiveIndex]
}

// NopEntry is an EntryFunc that does nothing. Assign it to OnLeft/OnRight
// to suppress the default Option cycling, e.g. for remap entries.
func NopEntry(*Session, *Entry) {}
