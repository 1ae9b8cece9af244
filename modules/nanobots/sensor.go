package nanobots

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

const (
	ErrTypeParse         = "nanobots_parse_error"
	ErrTypeEmptyFrontier = "nanobots_empty_frontier"
)

var sensorPattern = regexp.MustCompile(`^pos=<(-?\d+),(-?\d+),(-?\d+)>, r=(\d+)$`)

// Sensor is a nanobot: a center point and the Manhattan radius it reaches.
type Sensor struct {
	Center Point `json:"center"`
	Radius int64 `json:"radius"`
}

func NewSensor(x, y, z, radius int64) Sensor {
	return Sensor{
		Center: NewPoint(x, y, z),
		Radius: radius,
	}
}

func (s Sensor) Reaches(p Point) bool {
	return Manhattan(s.Center, p) <= s.Radius
}

// Endpoints returns the six axis-aligned extremities of the sensor reach.
func (s Sensor) Endpoints() [6]Point {
	c, r := s.Center, s.Radius
	return [6]Point{
		{c.X, c.Y, c.Z - r},
		{c.X, c.Y, c.Z + r},
		{c.X, c.Y - r, c.Z},
		{c.X, c.Y + r, c.Z},
		{c.X - r, c.Y, c.Z},
		{c.X + r, c.Y, c.Z},
	}
}

func (s Sensor) String() string {
	return "pos=" + s.Center.String() + ", r=" + strconv.FormatInt(s.Radius, 10)
}

// ParseSensors parses one `pos=<X,Y,Z>, r=R` record per line. Any malformed
// line fails the whole input.
func ParseSensors(input string) ([]Sensor, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("no sensor in input").WithType(ErrTypeParse)
	}

	lines := strings.Split(input, "\n")
	sensors := make([]Sensor, 0, len(lines))
	for i, line := range lines {
		s, err := ParseSensor(strings.TrimRight(line, "\r"))
		if err != nil {
			return nil, errors.New("parsing sensors failed").
				WithType(ErrTypeParse).
				WithTag("line", i+1).
				Wrap(err)
		}
		sensors = append(sensors, s)
	}
	return sensors, nil
}

func ParseSensor(line string) (Sensor, error) {
	m := sensorPattern.FindStringSubmatch(line)
	if m == nil {
		return Sensor{}, errors.New("malformed sensor record").
			WithType(ErrTypeParse).
			WithTag("record", line)
	}

	var values [4]int64
	for i := range values {
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return Sensor{}, errors.New("invalid sensor field").
				WithType(ErrTypeParse).
				WithTag("record", line).
				WithTag("field", m[i+1]).
				Wrap(err)
		}
		values[i] = v
	}
	return NewSensor(values[0], values[1], values[2], values[3]), nil
}
