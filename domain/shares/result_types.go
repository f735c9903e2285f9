package sharesdomain

import (
	"encoding/json"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// Ratio is the result of dividing a user's share amount by the pool's total
// share supply. It is a tagged result: the not-ready variant carries no value
// and is observably distinct from a ready zero ratio. A ratio is not ready
// when the pool backing the computation is unknown.
//
// Callers must branch on the ready flag via Get before interpreting the value.
type Ratio struct {
	ratio   osmomath.Dec
	isReady bool
}

// NewRatio returns a ready ratio carrying the given value.
func NewRatio(ratio osmomath.Dec) Ratio {
	return Ratio{
		ratio:   ratio,
		isReady: true,
	}
}

// ZeroRatio returns a ready ratio of exactly zero.
// Used when the pool is known but its total share supply is zero.
func ZeroRatio() Ratio {
	return NewRatio(osmomath.ZeroDec())
}

// UnreadyRatio returns the not-ready sentinel.
func UnreadyRatio() Ratio {
	return Ratio{}
}

// Get returns the ratio value and whether it is ready.
// The value must not be interpreted when the second return is false.
func (r Ratio) Get() (osmomath.Dec, bool) {
	return r.ratio, r.isReady
}

// IsReady returns true if the ratio carries a meaningful value.
func (r Ratio) IsReady() bool {
	return r.isReady
}

// MustGet returns the ratio value, panicking if it is not ready.
func (r Ratio) MustGet() osmomath.Dec {
	if !r.isReady {
		panic("attempted to read a not-ready ratio")
	}
	return r.ratio
}

type ratioJSON struct {
	Ready bool          `json:"ready"`
	Ratio *osmomath.Dec `json:"ratio,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.isReady {
		return json.Marshal(ratioJSON{Ready: false})
	}
	return json.Marshal(ratioJSON{Ready: true, Ratio: &r.ratio})
}

// FiatValue is the capitalization of a share amount in the quote currency.
// Like Ratio, it is a tagged result whose not-ready variant carries no value.
type FiatValue struct {
	value   osmomath.Dec
	isReady bool
}

// NewFiatValue returns a ready fiat value.
func NewFiatValue(value osmomath.Dec) FiatValue {
	return FiatValue{
		value:   value,
		isReady: true,
	}
}

// ZeroFiatValue returns a ready fiat value of exactly zero.
func ZeroFiatValue() FiatValue {
	return NewFiatValue(osmomath.ZeroDec())
}

// UnreadyFiatValue returns the not-ready sentinel.
func UnreadyFiatValue() FiatValue {
	return FiatValue{}
}

// Get returns the value and whether it is ready.
func (v FiatValue) Get() (osmomath.Dec, bool) {
	return v.value, v.isReady
}

// IsReady returns true if the value is meaningful.
func (v FiatValue) IsReady() bool {
	return v.isReady
}

// MustGet returns the value, panicking if it is not ready.
func (v FiatValue) MustGet() osmomath.Dec {
	if !v.isReady {
		panic("attempted to read a not-ready fiat value")
	}
	return v.value
}

type fiatValueJSON struct {
	Ready bool          `json:"ready"`
	Value *osmomath.Dec `json:"value,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v FiatValue) MarshalJSON() ([]byte, error) {
	if !v.isReady {
		return json.Marshal(fiatValueJSON{Ready: false})
	}
	return json.Marshal(fiatValueJSON{Ready: true, Value: &v.value})
}
