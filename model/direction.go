package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Direction is the travel direction of a journey pattern.
type Direction int

const (
	Inbound Direction = iota
	Outbound
)

// DirectionError reports a direction code or word that maps to no Direction.
type DirectionError struct{ Value string }

func (e *DirectionError) Error() string {
	return fmt.Sprintf("unknown direction %q", e.Value)
}

// ParseDirection maps a two-letter wire code (IB/OB) to a Direction.
func ParseDirection(code string) (Direction, error) {
	switch code {
	case "IB":
		return Inbound, nil
	case "OB":
		return Outbound, nil
	}
	return Inbound, &DirectionError{Value: code}
}

// ParseDirectionWord maps a spoken word ("inbound"/"outbound") to a Direction.
func ParseDirectionWord(word string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "inbound":
		return Inbound, nil
	case "outbound":
		return Outbound, nil
	}
	return Inbound, &DirectionError{Value: word}
}

// ParseDirectionAny accepts either a wire code or a spoken word.
func ParseDirectionAny(s string) (Direction, error) {
	if d, err := ParseDirection(strings.ToUpper(strings.TrimSpace(s))); err == nil {
		return d, nil
	}
	if d, err := ParseDirectionWord(s); err == nil {
		return d, nil
	}
	return Inbound, &DirectionError{Value: s}
}

func (d Direction) Code() string {
	if d == Outbound {
		return "OB"
	}
	return "IB"
}

func (d Direction) Word() string {
	if d == Outbound {
		return "outbound"
	}
	return "inbound"
}

func (d Direction) String() string { return d.Code() }

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Code())
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}
