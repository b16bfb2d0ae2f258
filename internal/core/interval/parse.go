package interval

import (
	"math"
	"strconv"
	"strings"
)

type field int

const (
	fieldSeconds field = iota
	fieldDays
	fieldMonths
)

type unit struct {
	field  field
	factor int64
}

// units maps every accepted unit spelling to its accumulator. Lookups are
// case-sensitive; only lowercase spellings exist.
var units = map[string]unit{
	"s":       {fieldSeconds, 1},
	"sec":     {fieldSeconds, 1},
	"secs":    {fieldSeconds, 1},
	"second":  {fieldSeconds, 1},
	"seconds": {fieldSeconds, 1},

	"m":       {fieldSeconds, secondsPerMinute},
	"min":     {fieldSeconds, secondsPerMinute},
	"mins":    {fieldSeconds, secondsPerMinute},
	"minute":  {fieldSeconds, secondsPerMinute},
	"minutes": {fieldSeconds, secondsPerMinute},

	"h":     {fieldSeconds, secondsPerHour},
	"hr":    {fieldSeconds, secondsPerHour},
	"hrs":   {fieldSeconds, secondsPerHour},
	"hour":  {fieldSeconds, secondsPerHour},
	"hours": {fieldSeconds, secondsPerHour},

	"d":    {fieldDays, 1},
	"day":  {fieldDays, 1},
	"days": {fieldDays, 1},

	"w":     {fieldDays, daysPerWeek},
	"wk":    {fieldDays, daysPerWeek},
	"wks":   {fieldDays, daysPerWeek},
	"week":  {fieldDays, daysPerWeek},
	"weeks": {fieldDays, daysPerWeek},

	"mon":    {fieldMonths, 1},
	"mons":   {fieldMonths, 1},
	"month":  {fieldMonths, 1},
	"months": {fieldMonths, 1},

	"y":     {fieldMonths, monthsPerYear},
	"yr":    {fieldMonths, monthsPerYear},
	"yrs":   {fieldMonths, monthsPerYear},
	"year":  {fieldMonths, monthsPerYear},
	"years": {fieldMonths, monthsPerYear},
}

// defaultUnit applies to a bare magnitude that ends the input.
const defaultUnit = "s"

// Parse converts interval text such as "1 year 2 mons 3 days 04:05:06",
// "2months" or "90" into a Value. Any input outside the grammar yields a
// *ParseError.
func Parse(text string) (Value, error) {
	trimmed := strings.TrimSpace(text)
	p := parser{input: text, trimmed: trimmed, tokens: lex(trimmed)}
	if err := p.run(); err != nil {
		return Zero, err
	}
	return p.acc, nil
}

// MustParse is like Parse but panics on error. Intended for constants and
// tests.
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	input   string
	trimmed string
	tokens  []token
	acc     Value
}

func (p *parser) run() error {
	for i := 0; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		switch tok.kind {
		case tokClock:
			if err := p.clock(tok.text); err != nil {
				return err
			}
		case tokFused:
			if err := p.accumulate(tok.magnitude, tok.unit); err != nil {
				return err
			}
		case tokNumber:
			u := defaultUnit
			if i+1 < len(p.tokens) {
				i++
				u = p.tokens[i].text
			}
			if err := p.accumulate(tok.text, u); err != nil {
				return err
			}
		default:
			return p.syntaxError()
		}
	}
	return nil
}

func (p *parser) clock(text string) error {
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return newClockError(p.input)
	}

	var hms [3]int64
	for i, part := range parts {
		n, err := p.number(part)
		if err != nil {
			return err
		}
		hms[i] = n
	}

	total, ok := sumProducts(
		hms[0], secondsPerHour,
		hms[1], secondsPerMinute,
		hms[2], 1,
	)
	if !ok {
		return p.syntaxError()
	}
	return p.add(fieldSeconds, total)
}

func (p *parser) accumulate(magnitude, name string) error {
	n, err := p.number(magnitude)
	if err != nil {
		return err
	}
	u, ok := units[name]
	if !ok {
		return p.syntaxError()
	}
	amount, ok := mulInt64(n, u.factor)
	if !ok {
		return p.syntaxError()
	}
	return p.add(u.field, amount)
}

func (p *parser) add(f field, amount int64) error {
	var dst *int64
	switch f {
	case fieldMonths:
		dst = &p.acc.months
	case fieldDays:
		dst = &p.acc.days
	default:
		dst = &p.acc.seconds
	}
	sum, ok := addInt64(*dst, amount)
	if !ok {
		return p.syntaxError()
	}
	*dst = sum
	return nil
}

// number accepts unsigned ASCII digit strings only; signs, blanks and
// values beyond int64 are syntax errors.
func (p *parser) number(s string) (int64, error) {
	if s == "" || !isDigits(s) {
		return 0, p.syntaxError()
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, p.syntaxError()
	}
	return n, nil
}

func (p *parser) syntaxError() error {
	return newSyntaxError(p.input, p.trimmed)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return c, true
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

// sumProducts returns a1*b1 + a2*b2 + ... with overflow detection.
func sumProducts(pairs ...int64) (int64, bool) {
	var total int64
	for i := 0; i+1 < len(pairs); i += 2 {
		p, ok := mulInt64(pairs[i], pairs[i+1])
		if !ok {
			return 0, false
		}
		if total, ok = addInt64(total, p); !ok {
			return 0, false
		}
	}
	return total, true
}
