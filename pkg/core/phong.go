package core

// PhongConfig holds the Phong shading coefficients. Shininess is the
// specular exponent; the other three scale the ambient, diffuse and specular
// terms.
type PhongConfig struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

// DefaultPhongConfig returns sensible default values
func DefaultPhongConfig() PhongConfig {
	return PhongConfig{
		Ambient:   0.8,
		Diffuse:   0.5,
		Specular:  0.5,
		Shininess: 10,
	}
}
