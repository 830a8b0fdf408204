package vrt

// CIF7 is the fifth Context Indicator Field word. Unlike CIF0/1/2/3, CIF7
// carries no field payloads of its own: its bits decorate the fields of
// CIF0/1/2/3 with an "attribute" dimension (Current Value, Average Value,
// Min/Max, Standard Deviation), per VITA 49.2 ch. 9.13's four-slot
// attribute wrapper. Generating the attribute-qualified repeats of every
// CIF0/1/2/3 field is left to a code generator (spec.md 6, out of scope
// here); the core only guarantees the enable word itself round-trips.
type CIF7 struct {
	raw uint32
}

// Attribute bits, VITA 49.2 ch. 9.13.
const (
	CIF7BitCurrentValue      = 31
	CIF7BitAverageValue      = 30
	CIF7BitMinMax            = 29
	CIF7BitStandardDeviation = 28
)

// CurrentValue reports whether the Current Value attribute is requested.
func (c CIF7) CurrentValue() bool { return GetBool(c.raw, CIF7BitCurrentValue) }

// SetCurrentValue sets the Current Value attribute bit.
func (c *CIF7) SetCurrentValue(v bool) { c.raw = SetBool(c.raw, CIF7BitCurrentValue, 1, v) }

// AverageValue reports whether the Average Value attribute is requested.
func (c CIF7) AverageValue() bool { return GetBool(c.raw, CIF7BitAverageValue) }

// SetAverageValue sets the Average Value attribute bit.
func (c *CIF7) SetAverageValue(v bool) { c.raw = SetBool(c.raw, CIF7BitAverageValue, 1, v) }

// MinMax reports whether the Min/Max attribute is requested.
func (c CIF7) MinMax() bool { return GetBool(c.raw, CIF7BitMinMax) }

// SetMinMax sets the Min/Max attribute bit.
func (c *CIF7) SetMinMax(v bool) { c.raw = SetBool(c.raw, CIF7BitMinMax, 1, v) }

// StandardDeviation reports whether the Standard Deviation attribute is
// requested.
func (c CIF7) StandardDeviation() bool { return GetBool(c.raw, CIF7BitStandardDeviation) }

// SetStandardDeviation sets the Standard Deviation attribute bit.
func (c *CIF7) SetStandardDeviation(v bool) {
	c.raw = SetBool(c.raw, CIF7BitStandardDeviation, 1, v)
}

func (c CIF7) indicatorWord() uint32 { return c.raw }
