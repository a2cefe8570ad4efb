package page

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Keyframe is one stop of a looping two-colour gradient animation. At is the
// position in the loop, 0 to 1.
type Keyframe struct {
	At    float64
	Stops [2]string
}

// Stylesheet is a named keyframe animation bound to a body class.
type Stylesheet struct {
	Name      string
	Class     string
	Period    time.Duration
	Keyframes []Keyframe
}

// Rainbow is the celebration background loop.
var Rainbow = Stylesheet{
	Name:   "rainbow-bg",
	Class:  ClassRainbow,
	Period: 3 * time.Second,
	Keyframes: []Keyframe{
		{At: 0, Stops: [2]string{"#ff6b6b", "#4ecdc4"}},
		{At: 0.25, Stops: [2]string{"#4ecdc4", "#45b7d1"}},
		{At: 0.5, Stops: [2]string{"#45b7d1", "#96ceb4"}},
		{At: 0.75, Stops: [2]string{"#96ceb4", "#ffa726"}},
		{At: 1, Stops: [2]string{"#ffa726", "#ff6b6b"}},
	},
}

// Sample returns the gradient stops elapsed into the loop.
func (s Stylesheet) Sample(elapsed time.Duration) [2]colorful.Color {
	var out [2]colorful.Color

	if len(s.Keyframes) == 0 {
		return out
	}

	if len(s.Keyframes) == 1 || s.Period <= 0 {
		first := s.Keyframes[0]
		return [2]colorful.Color{parseHex(first.Stops[0]), parseHex(first.Stops[1])}
	}

	pos := math.Mod(float64(elapsed)/float64(s.Period), 1)
	if pos < 0 {
		pos++
	}

	from, to := s.Keyframes[0], s.Keyframes[len(s.Keyframes)-1]
	for i := 1; i < len(s.Keyframes); i++ {
		if pos <= s.Keyframes[i].At {
			from, to = s.Keyframes[i-1], s.Keyframes[i]
			break
		}
	}

	t := 0.0
	if span := to.At - from.At; span > 0 {
		t = ease((pos - from.At) / span)
	}

	for i := range out {
		switch {
		case t <= 0:
			out[i] = parseHex(from.Stops[i])
		case t >= 1:
			out[i] = parseHex(to.Stops[i])
		default:
			out[i] = parseHex(from.Stops[i]).BlendLab(parseHex(to.Stops[i]), t).Clamped()
		}
	}

	return out
}

// ease approximates the CSS "ease" curve.
func ease(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return t * t * (3 - 2*t)
}

func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
