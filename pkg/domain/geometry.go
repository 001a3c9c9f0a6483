package domain

import "fmt"

// Vector3 is a point or displacement in simulation space.
type Vector3 struct {
	X float64 `json:"x" yaml:"x" mapstructure:"x"`
	Y float64 `json:"y" yaml:"y" mapstructure:"y"`
	Z float64 `json:"z" yaml:"z" mapstructure:"z"`
}

// Scale returns v multiplied component-wise by k.
func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

func (v Vector3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}
