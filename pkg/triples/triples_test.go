package triples

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	loaderio "github.com/OFFIS-RIT/cimgraph/pkg/loader/io"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const network = `{
  "@context": {"cim": "http://iec.ch/TC57/CIM100#"},
  "@graph": [
    {"@id": "sub1", "@type": "cim:Substation", "cim:Substation.Region": {"@id": "reg1"}},
    {"@id": "reg1", "@type": "cim:SubGeographicalRegion"},
    {"@id": "pt1", "@type": "cim:PowerTransformer", "cim:Equipment.EquipmentContainer": {"@id": "sub1"}},
    {"@id": "ec1", "@type": "cim:EnergyConsumer"},
    {"@id": "cn1", "@type": "cim:ConnectivityNode"},
    {"@id": "t1", "@type": "cim:Terminal",
     "cim:Terminal.ConductingEquipment": {"@id": "pt1"},
     "cim:Terminal.ConnectivityNode": {"@id": "cn1"}},
    {"@id": "t2", "@type": "cim:Terminal",
     "cim:Terminal.ConductingEquipment": {"@id": "ec1"},
     "cim:Terminal.ConnectivityNode": {"@id": "cn1"}},
    {"@id": "m1", "@type": "cim:Analog", "cim:IdentifiedObject.name": "P",
     "cim:Measurement.Terminal": {"@id": "t1"}},
    {"@id": "n1", "@type": ["cim:Name", "cim:Other"], "cim:Name.IdentifiedObject": {"@id": "pt1"}},
    {"@id": "pt2", "@type": "cim:PowerTransformer", "cim:Equipment.EquipmentContainer": {"@id": "missing"}}
  ]
}`

func mustLoad(t *testing.T, doc string) *Store {
	t.Helper()
	s, err := LoadJSONLD([]byte(doc))
	require.NoError(t, err)
	return s
}

func TestLoadJSONLD(t *testing.T) {
	s := mustLoad(t, network)

	assert.Equal(t, 10, s.Resources())
	assert.Equal(t, 8, s.Len())
	assert.True(t, s.IsTyped("t1"))
	assert.Equal(t, "cim:Name", s.EffectiveType("n1"))
	assert.Equal(t, "", s.EffectiveType("missing"))
	assert.Empty(t, s.Outgoing("pt2"))

	assert.Len(t, s.Outgoing("t1"), 2)
	assert.Len(t, s.Incoming("cn1", ""), 2)
	assert.Len(t, s.Incoming("cn1", DefaultGroupPredicate), 2)
	assert.Empty(t, s.Incoming("cn1", DefaultTargetPredicate))
}

func TestResolveCollapsesConnectors(t *testing.T) {
	s := mustLoad(t, network)
	before := s.Triples()

	edges, err := NewResolver(ResolverParams{}).Resolve(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, []Edge{
		{"cim:Analog", "cim:Measurement.Terminal", "cim:ConnectivityNode"},
		{"cim:Analog", "cim:Measurement.Terminal", "cim:EnergyConsumer"},
		{"cim:Analog", "cim:Measurement.Terminal", "cim:PowerTransformer"},
		{"cim:PowerTransformer", "cim:Equipment.EquipmentContainer", "cim:Substation"},
		{"cim:Substation", "cim:Substation.Region", "cim:SubGeographicalRegion"},
	}, edges.Sorted())

	assert.Equal(t, before, s.Triples())
}

func TestResolveWithoutGroupFanOut(t *testing.T) {
	s := mustLoad(t, network)

	edges, err := NewResolver(ResolverParams{GroupPredicate: "cim:Unused"}).Resolve(context.Background(), s)
	require.NoError(t, err)

	assert.False(t, edges.Contains(Edge{"cim:Analog", "cim:Measurement.Terminal", "cim:EnergyConsumer"}))
	assert.True(t, edges.Contains(Edge{"cim:Analog", "cim:Measurement.Terminal", "cim:PowerTransformer"}))
}

func TestResolveUntypedConnector(t *testing.T) {
	s := mustLoad(t, `{"@graph": [
		{"@id": "a", "@type": "X", "p": {"@id": "c"}},
		{"@id": "c", "q": [{"@id": "b"}, {"@id": "a"}]},
		{"@id": "b", "@type": "Y"}
	]}`)

	assert.False(t, s.IsTyped("c"))
	assert.Equal(t, "c", s.EffectiveType("c"))
	assert.Equal(t, "", s.EffectiveType("nowhere"))

	edges, err := NewResolver(ResolverParams{}).Resolve(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, []Edge{{"X", "p", "Y"}}, edges.Sorted())
}

func TestResolveDeduplicatesEdges(t *testing.T) {
	s := mustLoad(t, `{"@graph": [
		{"@id": "s1", "@type": "cim:Substation", "r": {"@id": "g"}},
		{"@id": "s2", "@type": "cim:Substation", "r": {"@id": "g"}},
		{"@id": "g", "@type": "cim:SubGeographicalRegion"}
	]}`)

	edges, err := NewResolver(ResolverParams{}).Resolve(context.Background(), s)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestResolvePartitionsAgree(t *testing.T) {
	s := mustLoad(t, network)

	single, err := NewResolver(ResolverParams{Partitions: 1}).Resolve(context.Background(), s)
	require.NoError(t, err)
	for _, n := range []int{2, 3, 16} {
		split, err := NewResolver(ResolverParams{Partitions: n}).Resolve(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, single, split, "partitions=%d", n)
	}
}

func TestResolveHonoursCancellation(t *testing.T) {
	s := mustLoad(t, network)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(ResolverParams{}).Resolve(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveEmptyGraph(t *testing.T) {
	edges, err := NewResolver(ResolverParams{}).Resolve(context.Background(), mustLoad(t, `{"@graph": []}`))
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestLoadJSONLDRepairsMalformedInput(t *testing.T) {
	s, err := LoadJSONLD([]byte(`{"@graph": [{"@id": "a", "@type": "X", "p": {"@id": "b"},}, {"@id": "b", "@type": "Y"},]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestLoadJSONLDWithoutGraph(t *testing.T) {
	_, err := LoadJSONLD([]byte(`{"@id": "a"}`))
	assert.ErrorIs(t, err, ErrNoGraph)
}

func TestLoadYAML(t *testing.T) {
	s, err := LoadYAML([]byte(`
"@graph":
  - "@id": sub1
    "@type": cim:Substation
    cim:Substation.Region:
      "@id": reg1
  - "@id": reg1
    "@type": cim:SubGeographicalRegion
`))
	require.NoError(t, err)
	assert.Equal(t, []Triple{{"sub1", "cim:Substation.Region", "reg1"}}, s.Triples())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.jsonld")
	require.NoError(t, os.WriteFile(path, []byte(network), 0o600))

	file := loader.NewGraphFile(loader.NewSourceFileParams{ID: "net", FilePath: path, Loader: loaderio.NewIOFileLoader()})
	s, err := Load(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 8, s.Len())
}

func TestEdgeString(t *testing.T) {
	assert.Equal(t, "A p B", Edge{"A", "p", "B"}.String())
}
