package title

import "fmt"

// InvalidTemperatureError indicates a temperature outside [0.1, 1.0]
type InvalidTemperatureError struct {
	Temperature float64
}

func (e *InvalidTemperatureError) Error() string {
	return fmt.Sprintf("invalid temperature: %v (must be between 0.1 and 1.0)", e.Temperature)
}

// InvalidMaxLengthError indicates a non-positive max title length
type InvalidMaxLengthError struct {
	Length int
}

func (e *InvalidMaxLengthError) Error() string {
	return fmt.Sprintf("invalid max length: %d (must be greater than 0)", e.Length)
}

// UnsupportedModelError indicates a model name outside the supported set
type UnsupportedModelError struct {
	Name string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("model '%s' not supported", e.Name)
}
