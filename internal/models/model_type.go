package models

// ModelType identifies a supported generation model.
// The model is validated but the rule-based generator does not
// otherwise consult it.
type ModelType int

const (
	TinyLlama ModelType = iota
	Phi2
	Gemma2b
	Llama27b
)

// String returns the CLI name of the model
func (m ModelType) String() string {
	switch m {
	case TinyLlama:
		return "tiny-llama"
	case Phi2:
		return "phi-2"
	case Gemma2b:
		return "gemma-2b"
	case Llama27b:
		return "llama-2-7b"
	default:
		return ""
	}
}

// ParseModelType parses a model name, reporting whether it is supported
func ParseModelType(name string) (ModelType, bool) {
	for _, m := range []ModelType{TinyLlama, Phi2, Gemma2b, Llama27b} {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// ModelNames returns the names of all supported models
func ModelNames() []string {
	return []string{
		TinyLlama.String(),
		Phi2.String(),
		Gemma2b.String(),
		Llama27b.String(),
	}
}
