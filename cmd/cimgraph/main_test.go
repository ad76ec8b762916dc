package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OFFIS-RIT/cimgraph/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger.Init() })

	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cimgraph version dev\n", out)
}

func TestSchemaCommand(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Equal(t, "ForecastDataSet", schema["title"])
}

func TestNetbewustCommand(t *testing.T) {
	dir := t.TempDir()
	cps := filepath.Join(dir, "cp.csv")
	assets := filepath.Join(dir, "assets.csv")
	out := filepath.Join(dir, "out.yaml")
	logFile := filepath.Join(dir, "run.log")

	require.NoError(t, os.WriteFile(cps, []byte(strings.Join([]string{
		"1_Substation.Name,2_ConductingEquipment.Name,100_MarketEvaluationPoint.EAN,110_MarketParticipant.Name",
		"S1,T1,'871234560000000001,ChargeCo",
		"S1,T1,,ChargeCo",
	}, "\n")), 0o600))
	require.NoError(t, os.WriteFile(assets, []byte("1_Substation.Name,2_ConductingEquipment.Name\n"), 0o600))

	_, err := execute(t, "--log", logFile, "netbewust-laden", cps,
		"--assets", assets, "--region", "Alliander", "--format", "yaml", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "european_article_number_ean: \"871234560000000001\"")
	assert.Contains(t, string(data), "description: Alliander")

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Skipping charge point")
}

func TestNetbewustCommandRequiresRegion(t *testing.T) {
	t.Setenv("NBL_REGION", "")
	_, err := execute(t, "netbewust-laden", "cp.csv", "--assets", "a.csv")
	assert.ErrorContains(t, err, "region")
}

func TestEdgesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
"@graph":
  - "@id": a
    "@type": cim:Substation
    cim:Substation.Region: {"@id": r}
  - "@id": r
    "@type": cim:SubGeographicalRegion
`), 0o600))

	out, err := execute(t, "edges", path, "--partitions", "2")
	require.NoError(t, err)
	assert.Equal(t, "cim:Substation cim:Substation.Region cim:SubGeographicalRegion\n", out)
}
