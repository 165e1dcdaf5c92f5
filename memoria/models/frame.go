package models

// FrameOwner identifica la página que ocupa un frame.
type FrameOwner struct {
	PID  uint `json:"pid"`
	Page int  `json:"page"`
}

// Frame es un marco de la memoria física. Owner == nil significa libre.
type Frame struct {
	Index      int         `json:"index"`
	Owner      *FrameOwner `json:"owner"`
	LoadTime   Tick        `json:"load_time"`
	LastAccess Tick        `json:"last_access"`
	Referenced bool        `json:"referenced"`
}

func (f Frame) IsFree() bool {
	return f.Owner == nil
}

// Clone copia el frame sin compartir el puntero al dueño.
func (f Frame) Clone() Frame {
	if f.Owner != nil {
		owner := *f.Owner
		f.Owner = &owner
	}
	return f
}
