package spot

type State string

const (
	StateFree     State = "free"
	StateOccupied State = "occupied"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	return s == StateFree || s == StateOccupied
}
