package models

// ProcessConfig describe un proceso que se crea al iniciar el módulo.
type ProcessConfig struct {
	PID  uint `json:"pid"`
	Size int  `json:"size"`
}

type Config struct {
	PortMemory  int             `json:"port_memory"`
	MemorySize  int             `json:"memory_size"`
	PageSize    int             `json:"page_size"`
	Replacement string          `json:"replacement"`
	RandomSeed  uint64          `json:"random_seed"` // 0 = semilla aleatoria
	LogLevel    string          `json:"log_level"`
	DumpPath    string          `json:"dump_path"`
	TracePath   string          `json:"trace_path"`
	Processes   []ProcessConfig `json:"processes"`
}

// SimulatorConfig son los parámetros que necesita el simulador para arrancar.
type SimulatorConfig struct {
	PageSize   int
	MemorySize int
	Algorithm  Algorithm
	RandomSeed uint64
}

func (c *Config) SimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		PageSize:   c.PageSize,
		MemorySize: c.MemorySize,
		Algorithm:  Algorithm(c.Replacement),
		RandomSeed: c.RandomSeed,
	}
}

var MemoryConfig *Config
