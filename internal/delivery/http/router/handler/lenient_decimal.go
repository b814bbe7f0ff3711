package handler

import "github.com/shopspring/decimal"

// lenientDecimal is a decimal that coerces malformed or missing numeric JSON
// to zero instead of failing the bind. The desktop shell sends whatever its
// form fields hold; an unparsable amount means "no amount", not a rejected
// request.
type lenientDecimal struct {
	decimal.Decimal
}

func (d *lenientDecimal) UnmarshalJSON(data []byte) error {
	var parsed decimal.Decimal
	if err := parsed.UnmarshalJSON(data); err != nil {
		d.Decimal = decimal.Zero

		return nil
	}
	d.Decimal = parsed

	return nil
}
