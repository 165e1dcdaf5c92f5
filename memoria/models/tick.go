package models

import (
	"encoding/json"
	"strconv"
)

// Tick es un instante del reloj lógico que puede no haber ocurrido todavía.
// El valor cero es Never.
type Tick struct {
	time  int
	valid bool
}

var Never = Tick{}

func At(time int) Tick {
	return Tick{time: time, valid: true}
}

// Time devuelve el instante y si es válido.
func (t Tick) Time() (int, bool) {
	return t.time, t.valid
}

func (t Tick) IsNever() bool {
	return !t.valid
}

// Before ordena los instantes; Never queda antes que cualquier instante válido.
func (t Tick) Before(other Tick) bool {
	if !t.valid {
		return other.valid
	}
	return other.valid && t.time < other.time
}

func (t Tick) String() string {
	if !t.valid {
		return "nunca"
	}
	return strconv.Itoa(t.time)
}

// MarshalJSON serializa Never como null.
func (t Tick) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.time)
}

func (t *Tick) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Never
		return nil
	}
	var time int
	if err := json.Unmarshal(data, &time); err != nil {
		return err
	}
	*t = At(time)
	return nil
}
