package braciole

// Default hook implementations. Each applies when the corresponding field
// on an Entry or Menu is nil; they are selected independently per hook.

func defaultUp(s *Session) {
	m := s.Current()
	if len(m.Entries) == 0 {
		return
	}
	i := m.ActiveIndex
	if i <= 0 {
		i = len(m.Entries)
	}
	m.ActiveIndex = i - 1
}

func defaultDown(s *Session) {
	m := s.Current()
	if len(m.Entries) == 0 {
		return
	}
	m.ActiveIndex++
	if m.ActiveIndex >= len(m.Entries) {
		m.ActiveIndex = 0
	}
}

func defaultLeft(s *Session, e *Entry) {
	if e.Kind != KindOption || len(e.Choices) == 0 || e.Value == nil {
		return
	}
	if *e.Value == 0 {
		*e.Value = uint32(len(e.Choices))
	}
	*e.Value--
}

func defaultRight(s *Session, e *Entry) {
	if e.Kind != KindOption || len(e.Choices) == 0 || e.Value == nil {
		return
	}
	*e.Value++
	if *e.Value >= uint32(len(e.Choices)) {
		*e.Value = 0
	}
}

func defaultEnter(s *Session) {
	e := s.ActiveEntry()
	if e != nil && e.Kind == KindSubmenu && e.Submenu != nil {
		s.SetCurrent(e.Submenu)
	}
}

func defaultLeave(s *Session) {
	s.SetCurrent(s.Current().Parent)
}

func defaultDisplayBackground(s *Session, m *Menu) {
	s.Renderer().FillBackground(s.Theme().Background)
}

func defaultDisplayTitle(s *Session, m *Menu) {
	r := s.Renderer()
	w, _ := r.Size()
	tw := r.TextWidth(m.Title)
	if tw > w-2 {
		s.Logger().Warn("menu title too wide for the viewport; not drawn",
			"title", m.Title, "width", tw)
		return
	}
	theme := s.Theme()
	r.DrawOutlinedText(m.Title, theme.TitleText, theme.TitleOutline, (w-tw)/2, 1)
}

func defaultDisplayData(s *Session, m *Menu, active *Entry) {
	for _, e := range m.Entries {
		name := e.DisplayName
		if name == nil {
			name = defaultDisplayName
		}
		name(s, e, active)

		value := e.DisplayValue
		if value == nil {
			value = defaultDisplayValue
		}
		value(s, e, active)
	}
}

// rowY maps an entry's logical position to a pixel row: two text rows are
// reserved for the title.
func rowY(s *Session, e *Entry) int {
	return s.Renderer().TextHeight(" ")*(e.Position+2) + 1
}

// rowColors picks the text/outline pair for an entry row.
func rowColors(s *Session, active, errState bool) (Color, Color) {
	theme := s.Theme()
	if errState {
		return theme.ErrorText, theme.ErrorOutline
	}
	if active {
		return theme.ActiveText, theme.ActiveOutline
	}
	return theme.Text, theme.TextOutline
}

func defaultDisplayName(s *Session, drawn, active *Entry) {
	r := s.Renderer()
	w, _ := r.Size()
	tw := r.TextWidth(drawn.Name)
	if tw > w-2 {
		s.Logger().Warn("entry name too wide for the viewport; not drawn",
			"name", drawn.Name, "width", tw)
		return
	}
	fg, outline := rowColors(s, drawn == active, false)
	r.DrawOutlinedText(drawn.Name, fg, outline, 1, rowY(s, drawn))
}

func defaultDisplayValue(s *Session, drawn, active *Entry) {
	if drawn.Kind != KindOption && drawn.Kind != KindDisplay {
		return
	}

	var value string
	errState := false
	switch drawn.Kind {
	case KindOption:
		if drawn.Value != nil && int(*drawn.Value) < len(drawn.Choices) {
			value = drawn.Choices[*drawn.Value].Label
		} else {
			value = "Out of bounds"
			errState = true
		}
	case KindDisplay:
		value, errState = formatDisplayData(drawn)
	}

	r := s.Renderer()
	w, _ := r.Size()
	tw := r.TextWidth(value)
	if tw > w-2 {
		s.Logger().Warn("entry value too wide for the viewport; not drawn",
			"name", drawn.Name, "value", value, "width", tw)
		return
	}
	fg, outline := rowColors(s, drawn == active, errState)
	r.DrawOutlinedText(value, fg, outline, w-tw-1, rowY(s, drawn))
}
