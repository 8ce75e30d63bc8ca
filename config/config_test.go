// Package config_test covers YAML parsing, schema validation, and the
// materialization of baseline and alternative networks.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/st1ckyband1t/Transportation-Optimisation/config"
	"github.com/st1ckyband1t/Transportation-Optimisation/mcflow"
	"github.com/st1ckyband1t/Transportation-Optimisation/network"
)

// straitYAML is the seeded study expressed as a config file.
const straitYAML = `
links:
  - {from: "1", to: "2", km: 3.5, bidirectional: true}
  - {from: "2", to: "3", km: 3.0, bidirectional: true}
  - {from: "3", to: "4", km: 5.0, bidirectional: true}
  - {from: "4", to: "5", km: 25.0, bidirectional: true}
  - {from: "5", to: "6", km: 4.0, bidirectional: true}
  - {from: "6", to: "7", km: 2.5, bidirectional: true}
demands:
  - {origin: "1", destination: "2", trips: 900}
  - {origin: "1", destination: "3", trips: 750}
  - {origin: "1", destination: "4", trips: 40}
  - {origin: "1", destination: "5", trips: 10}
  - {origin: "1", destination: "6", trips: 600}
  - {origin: "1", destination: "7", trips: 550}
  - {origin: "4", destination: "5", trips: 150}
  - {origin: "4", destination: "6", trips: 1400}
  - {origin: "4", destination: "7", trips: 1250}
  - {origin: "4", destination: "1", trips: 100}
  - {origin: "4", destination: "2", trips: 2000}
  - {origin: "4", destination: "3", trips: 1100}
  - {origin: "5", destination: "6", trips: 3300}
  - {origin: "5", destination: "7", trips: 2440}
  - {origin: "5", destination: "4", trips: 200}
  - {origin: "5", destination: "1", trips: 110}
  - {origin: "5", destination: "2", trips: 4000}
  - {origin: "5", destination: "3", trips: 2200}
extra_links:
  - {from: "2", to: "6", km: 0, bidirectional: true, capacity: 2000}
`

func TestParse_Strait(t *testing.T) {
	f, err := config.Parse([]byte(straitYAML))
	require.NoError(t, err)
	require.Len(t, f.Links, 6)
	require.Len(t, f.Demands, 18)
	require.Len(t, f.ExtraLinks, 1)
	require.NotNil(t, f.ExtraLinks[0].Capacity)
	require.Equal(t, 2000.0, *f.ExtraLinks[0].Capacity)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := config.Parse([]byte("links: ["))
	require.ErrorIs(t, err, config.ErrParse)
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"no links":          `demands: []`,
		"missing endpoint":  `{links: [{from: "A", km: 1}]}`,
		"negative distance": `{links: [{from: "A", to: "B", km: -1}]}`,
		"negative capacity": `{links: [{from: "A", to: "B", km: 1, capacity: -5}]}`,
		"negative trips":    `{links: [{from: "A", to: "B", km: 1}], demands: [{origin: "A", destination: "B", trips: -1}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBaseline_SemanticErrorsPassThrough(t *testing.T) {
	// Schema-valid but semantically wrong: the demand names a node that
	// no link registers. The network sentinel must surface unchanged.
	f, err := config.Parse([]byte(`{links: [{from: "A", to: "B", km: 1}], demands: [{origin: "A", destination: "X", trips: 5}]}`))
	require.NoError(t, err)

	_, err = f.Baseline()
	require.ErrorIs(t, err, network.ErrNodeNotFound)
}

func TestAlternative_RequiresExtraLinks(t *testing.T) {
	f, err := config.Parse([]byte(`{links: [{from: "A", to: "B", km: 1}]}`))
	require.NoError(t, err)

	_, err = f.Alternative()
	require.ErrorIs(t, err, config.ErrNoExtraLinks)
}

func TestLoad_RoundTripMatchesSeededStudy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strait.yaml")
	require.NoError(t, os.WriteFile(path, []byte(straitYAML), 0o644))

	f, err := config.Load(path)
	require.NoError(t, err)

	base, err := f.Baseline()
	require.NoError(t, err)
	alt, err := f.Alternative()
	require.NoError(t, err)

	baseRes, err := mcflow.MinCostFlow(base)
	require.NoError(t, err)
	require.InDelta(t, 399250.0, baseRes.ObjectiveKm, 1e-6)

	altRes, err := mcflow.MinCostFlow(alt)
	require.NoError(t, err)
	require.InDelta(t, 280770.0, altRes.ObjectiveKm, 1e-6)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
