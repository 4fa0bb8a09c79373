package invalid

type Valid struct {
	ID int32
}

type TrailingZero struct {
	A int64
	B struct{}
}
