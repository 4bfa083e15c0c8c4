package sim

import "github.com/automoto/slopecar/vehicle"

// InputSource yields the controls for the frame starting at time t.
type InputSource interface {
	Input(t float64) vehicle.RawInput
}

// Segment holds Input until the script clock reaches Until seconds.
type Segment struct {
	Until float64
	Input vehicle.RawInput
}

// Script is a fixed timeline of inputs. After the last segment it returns
// zero input.
type Script []Segment

func (s Script) Input(t float64) vehicle.RawInput {
	for _, seg := range s {
		if t < seg.Until {
			return seg.Input
		}
	}
	return vehicle.RawInput{}
}

// Duration is when the last segment ends.
func (s Script) Duration() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Until
}

// DemoScript settles, drives right, hops, turns a little in the air, then
// brakes into reverse.
func DemoScript() Script {
	return Script{
		{Until: 0.5},
		{Until: 3.0, Input: vehicle.RawInput{VerticalAxis: 1, Forward: true}},
		{Until: 3.1, Input: vehicle.RawInput{VerticalAxis: 1, Forward: true, Jump: true}},
		{Until: 3.6, Input: vehicle.RawInput{HorizontalAxis: 0.3}},
		{Until: 6.0, Input: vehicle.RawInput{VerticalAxis: 1, Forward: true}},
		{Until: 7.5, Input: vehicle.RawInput{VerticalAxis: -1, Reverse: true}},
		{Until: 8.5},
	}
}
