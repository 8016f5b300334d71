package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ballista/internal/launch"
)

type RunDocument struct {
	Integrator   string             `json:"integrator"`
	Dt           float64            `json:"dt"`
	Steps        int                `json:"steps"`
	Phase        string             `json:"phase"`
	ReleaseTime  float64            `json:"release_time"`
	ReleaseAngle float64            `json:"release_angle"`
	ReleaseSpeed float64            `json:"release_speed"`
	Landed       bool               `json:"landed"`
	Distance     float64            `json:"distance"`
	TimeOfFlight float64            `json:"time_of_flight"`
	EnergyDrift  float64            `json:"energy_drift"`
	Times        []float64          `json:"times"`
	Positions    [][]float64        `json:"positions"`
	Velocities   [][]float64        `json:"velocities"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Document flattens a run result into the export shape.
func Document(integrator string, dt float64, res *launch.Result) RunDocument {
	doc := RunDocument{
		Integrator:   integrator,
		Dt:           dt,
		Steps:        res.Steps,
		Phase:        res.Phase.String(),
		ReleaseTime:  res.Release.Time,
		ReleaseAngle: res.Release.Angle,
		ReleaseSpeed: res.Release.Speed(),
		Landed:       res.Landed,
		EnergyDrift:  res.EnergyDrift,
		Times:        make([]float64, 0, len(res.Samples)),
		Positions:    make([][]float64, 0, len(res.Samples)),
		Velocities:   make([][]float64, 0, len(res.Samples)),
		Metrics:      res.Metrics,
	}
	doc.Distance, doc.TimeOfFlight = res.LandingPoint()

	for _, s := range res.Samples {
		doc.Times = append(doc.Times, s.Time)
		doc.Positions = append(doc.Positions, []float64{s.Position.X, s.Position.Y})
		doc.Velocities = append(doc.Velocities, []float64{s.Velocity.X, s.Velocity.Y})
	}
	return doc
}

func WriteJSON(w io.Writer, doc RunDocument) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func ExportJSON(path string, doc RunDocument) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, doc)
}
