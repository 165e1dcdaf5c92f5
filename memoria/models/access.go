package models

// Access es una referencia de un proceso a una dirección virtual.
type Access struct {
	PID     uint `json:"pid"`
	Address int  `json:"address"`
}

// Translation es el resultado de traducir un acceso.
type Translation struct {
	PID             uint        `json:"pid"`
	VirtualAddress  int         `json:"virtual_address"`
	Page            int         `json:"page"`
	Offset          int         `json:"offset"`
	Frame           int         `json:"frame"`
	PhysicalAddress int         `json:"physical_address"`
	PageFault       bool        `json:"page_fault"`
	Evicted         *FrameOwner `json:"evicted,omitempty"`
	Time            int         `json:"time"`
}

// AccessFailure es un acceso que no se pudo traducir durante una corrida.
type AccessFailure struct {
	Index  int    `json:"index"`
	Access Access `json:"access"`
	Err    error  `json:"-"`
	Reason string `json:"reason"`
}

// RunResult resume una corrida de la simulación.
type RunResult struct {
	Translations []Translation   `json:"translations"`
	Failures     []AccessFailure `json:"failures"`
}
