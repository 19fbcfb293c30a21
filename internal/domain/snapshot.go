package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Snapshot is the client's view of the server-owned entities plus UI-scoped
// flags. It is an immutable value: reducers produce a fresh Snapshot and
// never touch the slices of a previous one.
//
// Tasks keep their server order (the board groups by status at render time),
// Exchanges keep insertion order, Files keep server order.
type Snapshot struct {
	Session          *Session
	Tasks            []Task
	Exchanges        []ChatExchange
	Files            []FileAsset
	Theme            Theme
	SidebarCollapsed bool
}

func (s Snapshot) Authenticated() bool {
	return s.Session != nil && s.Session.Valid()
}

func (s Snapshot) TaskByID(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func (s Snapshot) ExchangeByID(id string) (ChatExchange, bool) {
	for _, e := range s.Exchanges {
		if e.ID == id {
			return e, true
		}
	}
	return ChatExchange{}, false
}

func (s Snapshot) FileByID(id string) (FileAsset, bool) {
	for _, f := range s.Files {
		if f.ID == id {
			return f, true
		}
	}
	return FileAsset{}, false
}

// TasksByStatus filters without reordering.
func (s Snapshot) TasksByStatus(status TaskStatus) []Task {
	var out []Task
	for _, t := range s.Tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
