package physics

const (
	DefaultGravity    = 9.81
	DefaultAirDensity = 1.225

	// DefaultDragCoefficient is the textbook value for a smooth sphere.
	DefaultDragCoefficient = 0.47

	// Material densities in kg/m^3 (1018 steel, 6061 aluminum).
	DensitySteel    = 7870.0
	DensityAluminum = 2700.0

	DefaultRestitution = 0.8
)
