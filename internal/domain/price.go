package domain

// Price amount in the two native currencies of the venue, whole units.
// USD is never derived from MVR: both come straight from the rate tables.
type Price struct {
	MVR int64
	USD int64
}

// Add sums two prices per currency
func (p Price) Add(other Price) Price {
	return Price{MVR: p.MVR + other.MVR, USD: p.USD + other.USD}
}

// Mul multiplies both currencies by n
func (p Price) Mul(n int64) Price {
	return Price{MVR: p.MVR * n, USD: p.USD * n}
}

// Half returns 50% rounded to the nearest whole unit, halves away from zero,
// independently per currency
func (p Price) Half() Price {
	return Price{MVR: halfRounded(p.MVR), USD: halfRounded(p.USD)}
}

// IsZero returns true when both amounts are zero
func (p Price) IsZero() bool {
	return p.MVR == 0 && p.USD == 0
}

func halfRounded(v int64) int64 {
	if v >= 0 {
		return (v + 1) / 2
	}
	return -((-v + 1) / 2)
}
