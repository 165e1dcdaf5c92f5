package models

type Config struct {
	IpMemory   string `json:"ip_memory"`
	PortMemory int    `json:"port_memory"`
	TracePath  string `json:"trace_path"`
	LogLevel   string `json:"log_level"`
}

var CpuConfig *Config

// MemoryConfig es lo que la CPU necesita saber de la configuración de Memoria.
type MemoryConfig struct {
	PageSize    int    `json:"page_size"`
	MemorySize  int    `json:"memory_size"`
	Replacement string `json:"replacement"`
}

var MemConfig *MemoryConfig

// TraceSummary resume la ejecución de una traza contra Memoria.
type TraceSummary struct {
	Translated int
	PageFaults int
	Rejected   int
}
