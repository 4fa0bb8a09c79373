package shapes

type Pair struct {
	Flag  uint8
	Total int32
}

type Header struct {
	Kind     uint8
	Sequence int64
	label    string
	_        [2]uint8
}

type Empty struct{}

type Celsius float64

type Box[T any] struct {
	Value T
}

type PairAlias = Pair

func NewCelsius(v float64) Celsius {
	return Celsius(v)
}
