package models

// PageEntry es la entrada de la tabla de páginas de un proceso.
type PageEntry struct {
	Present    bool `json:"present"`
	Frame      int  `json:"frame"` // sólo tiene sentido si Present
	Modified   bool `json:"modified"`
	Referenced bool `json:"referenced"`
	LoadTime   Tick `json:"load_time"`
	LastAccess Tick `json:"last_access"`
}

// FrameIndex devuelve el frame asignado sólo cuando la página está presente.
func (p PageEntry) FrameIndex() (int, bool) {
	if !p.Present {
		return 0, false
	}
	return p.Frame, true
}
