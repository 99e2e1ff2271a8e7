package order

import (
	"fmt"
	"math"
)

// ID identifies a placed order. IDs are issued by the registry,
// start at 1 and are never reused.
type ID int64

// MaxID is the largest ID the wire format can carry.
const MaxID ID = math.MaxInt32

// Status is a short human-readable order state.
type Status string

// StatusPreparing is the status every order receives at placement.
const StatusPreparing Status = "Preparing"

type CoffeeType int32
type Size int32

const (
	Espresso CoffeeType = iota
	Americano
	Latte
	Cappuccino
	Mocha
)

const (
	Small Size = iota
	Medium
	Large
)

func (t CoffeeType) String() string {
	switch t {
	case Espresso:
		return "espresso"
	case Americano:
		return "americano"
	case Latte:
		return "latte"
	case Cappuccino:
		return "cappuccino"
	case Mocha:
		return "mocha"
	default:
		return fmt.Sprintf("CoffeeType(%d)", int32(t))
	}
}

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("Size(%d)", int32(s))
	}
}

// Request is what a customer asks for. It is informational only:
// placement never rejects a request because of its content.
type Request struct {
	Type     CoffeeType
	Size     Size
	Customer string
}

// Order is the pair returned by both service operations.
type Order struct {
	ID     ID
	Status Status
}
