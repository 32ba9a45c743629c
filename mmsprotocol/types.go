package mmsprotocol

import "strconv"

// Direction is a compass direction used to address a cell wall.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionTokens = [...]byte{
	North: 'n',
	East:  'e',
	South: 's',
	West:  'w',
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	return []Direction{North, East, South, West}
}

// Token returns the single-letter wire encoding of the direction.
func (d Direction) Token() byte {
	if d < North || d > West {
		return '?'
	}
	return directionTokens[d]
}

// String returns the wire encoding as a string.
func (d Direction) String() string {
	return string(d.Token())
}

// ParseDirection decodes a wire direction token.
func ParseDirection(s string) (Direction, error) {
	if len(s) == 1 {
		for d, tok := range directionTokens {
			if tok == s[0] {
				return Direction(d), nil
			}
		}
	}
	return 0, newInvalidDirectionError(s)
}

// CellColor is a cell highlight color. Lowercase tokens are the normal
// variants, uppercase tokens the dark ones.
type CellColor int

const (
	Black CellColor = iota
	Blue
	Gray
	Cyan
	Green
	Orange
	Red
	White
	Yellow
	DarkBlue
	DarkCyan
	DarkGray
	DarkGreen
	DarkRed
	DarkYellow
)

var colorTokens = [...]byte{
	Black:      'k',
	Blue:       'b',
	Gray:       'a',
	Cyan:       'c',
	Green:      'g',
	Orange:     'o',
	Red:        'r',
	White:      'w',
	Yellow:     'y',
	DarkBlue:   'B',
	DarkCyan:   'C',
	DarkGray:   'A',
	DarkGreen:  'G',
	DarkRed:    'R',
	DarkYellow: 'Y',
}

var colorNames = [...]string{
	Black:      "black",
	Blue:       "blue",
	Gray:       "gray",
	Cyan:       "cyan",
	Green:      "green",
	Orange:     "orange",
	Red:        "red",
	White:      "white",
	Yellow:     "yellow",
	DarkBlue:   "dark-blue",
	DarkCyan:   "dark-cyan",
	DarkGray:   "dark-gray",
	DarkGreen:  "dark-green",
	DarkRed:    "dark-red",
	DarkYellow: "dark-yellow",
}

// CellColors lists every color in declaration order.
func CellColors() []CellColor {
	colors := make([]CellColor, len(colorTokens))
	for i := range colorTokens {
		colors[i] = CellColor(i)
	}
	return colors
}

// Token returns the single-letter wire encoding of the color.
func (c CellColor) Token() byte {
	if c < Black || c > DarkYellow {
		return '?'
	}
	return colorTokens[c]
}

// Name returns a human readable name such as "dark-green".
func (c CellColor) Name() string {
	if c < Black || c > DarkYellow {
		return "unknown"
	}
	return colorNames[c]
}

// String returns the wire encoding as a string.
func (c CellColor) String() string {
	return string(c.Token())
}

// ParseCellColor decodes a wire color token. Tokens are case-sensitive.
func ParseCellColor(s string) (CellColor, error) {
	if len(s) == 1 {
		for c, tok := range colorTokens {
			if tok == s[0] {
				return CellColor(c), nil
			}
		}
	}
	return 0, newInvalidColorError(s)
}

// StatQuery selects one of the simulator's run statistics.
type StatQuery int

const (
	TotalDistance StatQuery = iota
	TotalTurns
	BestRunDistance
	BestRunTurns
	CurrentRunDistance
	CurrentRunTurns
	TotalEffectiveDistance
	BestRunEffectiveDistance
	CurrentRunEffectiveDistance
	Score
)

var statQueryTokens = [...]string{
	TotalDistance:               "total-distance",
	TotalTurns:                  "total-turns",
	BestRunDistance:             "best-run-distance",
	BestRunTurns:                "best-run-turns",
	CurrentRunDistance:          "current-run-distance",
	CurrentRunTurns:             "current-run-turns",
	TotalEffectiveDistance:      "total-effective-distance",
	BestRunEffectiveDistance:    "best-run-effective-distance",
	CurrentRunEffectiveDistance: "current-run-effective-distance",
	Score:                       "score",
}

// StatQueries lists every stat query in declaration order.
func StatQueries() []StatQuery {
	queries := make([]StatQuery, len(statQueryTokens))
	for i := range statQueryTokens {
		queries[i] = StatQuery(i)
	}
	return queries
}

// Token returns the kebab-case wire token, which is also the command keyword.
func (q StatQuery) Token() string {
	if q < TotalDistance || q > Score {
		return ""
	}
	return statQueryTokens[q]
}

// String returns the wire token.
func (q StatQuery) String() string {
	return q.Token()
}

// IsFloat reports whether the query's value is a float. Effective distances
// and the score are floats, everything else counts cells or turns.
func (q StatQuery) IsFloat() bool {
	switch q {
	case TotalEffectiveDistance, BestRunEffectiveDistance, CurrentRunEffectiveDistance, Score:
		return true
	default:
		return false
	}
}

// ParseStatQuery decodes a wire stat token.
func ParseStatQuery(s string) (StatQuery, error) {
	for q, tok := range statQueryTokens {
		if tok == s {
			return StatQuery(q), nil
		}
	}
	return 0, newInvalidStatQueryError(s)
}

// Stat is the value returned for a StatQuery. Exactly one of Int and Float
// is meaningful, selected by Query.IsFloat.
type Stat struct {
	Query StatQuery
	Int   int32
	Float float32
}

// NewIntStat creates an integer stat.
func NewIntStat(q StatQuery, v int32) Stat {
	return Stat{Query: q, Int: v}
}

// NewFloatStat creates a float stat.
func NewFloatStat(q StatQuery, v float32) Stat {
	return Stat{Query: q, Float: v}
}

// IsFloat reports whether the stat carries a float value.
func (s Stat) IsFloat() bool {
	return s.Query.IsFloat()
}

// Value returns the stat as a float64 regardless of its tag.
func (s Stat) Value() float64 {
	if s.IsFloat() {
		return float64(s.Float)
	}
	return float64(s.Int)
}

// HasValue reports whether the simulator had a value for the stat.
func (s Stat) HasValue() bool {
	return s.Value() != NoStatValue
}

// Format renders the stat value as decimal text, the same way the value
// would appear on the wire.
func (s Stat) Format() string {
	if s.IsFloat() {
		return strconv.FormatFloat(float64(s.Float), 'f', -1, 32)
	}
	return strconv.FormatInt(int64(s.Int), 10)
}

// String implements fmt.Stringer.
func (s Stat) String() string {
	return s.Query.Token() + "=" + s.Format()
}
