package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/san-kum/ballista/internal/launch"
	"github.com/san-kum/ballista/internal/vec"
)

func sampleFlight() []launch.TrajectorySample {
	return []launch.TrajectorySample{
		{Time: 0, Position: vec.New(0.7, 1.7), Velocity: vec.New(2, 2)},
		{Time: 0.1, Position: vec.New(0.9, 1.85), Velocity: vec.New(2, 1)},
		{Time: 0.2, Position: vec.New(1.1, 1.9), Velocity: vec.New(2, 0)},
		{Time: 0.5, Position: vec.New(1.7, 0), Velocity: vec.New(2, -3)},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	samples := sampleFlight()

	if err := WriteCSV(&buf, samples); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output must parse as CSV: %v", err)
	}
	if len(records) != len(samples)+1 {
		t.Fatalf("expected %d rows, got %d", len(samples)+1, len(records))
	}
	if records[0][0] != "time" || len(records[0]) != 5 {
		t.Errorf("unexpected header: %v", records[0])
	}

	last := records[len(records)-1]
	y, err := strconv.ParseFloat(last[2], 64)
	if err != nil || y != 0 {
		t.Errorf("landing row must sit on the ground, got %q", last[2])
	}
}

func TestExportCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.csv")
	if err := ExportCSV(path, sampleFlight()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDocument(t *testing.T) {
	samples := sampleFlight()
	res := &launch.Result{
		Release: launch.ReleaseState{
			Angle:    0.785,
			Time:     0.56,
			Position: samples[0].Position,
			Velocity: samples[0].Velocity,
		},
		Samples: samples,
		Landing: samples[len(samples)-1],
		Landed:  true,
		Phase:   launch.PhaseLanded,
		Steps:   3,
		Metrics: map[string]float64{"apex": 1.9},
	}

	doc := Document("semieuler", 1e-3, res)

	if doc.Steps != 3 || doc.Phase != "landed" || !doc.Landed {
		t.Errorf("document header wrong: %+v", doc)
	}
	if len(doc.Times) != len(samples) || len(doc.Positions) != len(samples) {
		t.Error("document must carry every sample")
	}
	if doc.Distance != 1.0 {
		t.Errorf("expected distance 1.0, got %f", doc.Distance)
	}
	if doc.TimeOfFlight != 0.5 {
		t.Errorf("expected time of flight 0.5, got %f", doc.TimeOfFlight)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back RunDocument
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output must parse as JSON: %v", err)
	}
	if back.Metrics["apex"] != 1.9 {
		t.Errorf("metrics lost in round trip: %+v", back.Metrics)
	}
}

func TestTrajectorySVG(t *testing.T) {
	samples := sampleFlight()
	svg := TrajectorySVG(samples, 800, 400, "#00ff00")

	if !strings.HasPrefix(svg, `<?xml`) || !strings.Contains(svg, "<svg") {
		t.Fatal("output must be an SVG document")
	}
	if !strings.Contains(svg, "<line") {
		t.Error("expected a ground line")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected a landing marker")
	}
	if got := strings.Count(svg, " L"); got != len(samples)-1 {
		t.Errorf("expected %d path segments, got %d", len(samples)-1, got)
	}

	if TrajectorySVG(samples[:1], 800, 400, "#00ff00") != "" {
		t.Error("a single sample has no path to draw")
	}
}
