package csv

import (
	"context"
	"errors"
	"testing"

	"github.com/OFFIS-RIT/cimgraph/pkg/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader map[string][]byte

func (s staticLoader) GetFileContent(_ context.Context, file loader.SourceFile) ([]byte, error) {
	return s[file.FilePath], nil
}

func collect(t *testing.T, content string, opts Options) []Row {
	t.Helper()
	var rows []Row
	require.NoError(t, EachRow([]byte(content), opts, func(r Row) error {
		rows = append(rows, r)
		return nil
	}))
	return rows
}

func TestEachRow(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    Options
		want    []map[string]string
	}{
		{
			name:    "comma separated",
			content: "1_Substation.Name,2_ConductingEquipment.Name\nS1,T1\nS2,T2\n",
			want: []map[string]string{
				{"1_Substation.Name": "S1", "2_ConductingEquipment.Name": "T1"},
				{"1_Substation.Name": "S2", "2_ConductingEquipment.Name": "T2"},
			},
		},
		{
			name:    "semicolon with byte order mark",
			content: "\xEF\xBB\xBFname;ean\nS1;'8712\n",
			opts:    Options{Delimiter: ';'},
			want:    []map[string]string{{"name": "S1", "ean": "'8712"}},
		},
		{
			name:    "short row and blank lines",
			content: "a,b,c\n1,2\n\n , , \n4,5,6\n",
			want: []map[string]string{
				{"a": "1", "b": "2"},
				{"a": "4", "b": "5", "c": "6"},
			},
		},
		{
			name:    "quoted delimiter",
			content: "a,b\n\"x,y\",z\n",
			want:    []map[string]string{{"a": "x,y", "b": "z"}},
		},
		{
			name:    "limit",
			content: "a\n1\n2\n3\n",
			opts:    Options{Limit: 2},
			want:    []map[string]string{{"a": "1"}, {"a": "2"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := collect(t, tc.content, tc.opts)
			require.Len(t, rows, len(tc.want))
			for i, row := range rows {
				assert.Equal(t, i+1, row.Number)
				assert.Equal(t, tc.want[i], row.Fields)
			}
		})
	}
}

func TestRowGetMissingColumn(t *testing.T) {
	rows := collect(t, "a,b\n1\n", Options{})
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Get("a"))
	assert.Equal(t, "", rows[0].Get("b"))
	assert.Equal(t, "", rows[0].Get("zzz"))
}

func TestEachRowStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := EachRow([]byte("a\n1\n2\n"), Options{}, func(Row) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestEachRowWithoutHeader(t *testing.T) {
	err := EachRow(nil, Options{}, func(Row) error { return nil })
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestCSVLoaderStripsByteOrderMark(t *testing.T) {
	base := staticLoader{"cp.csv": []byte("\xEF\xBB\xBFa,b\n")}
	l := NewCSVLoader(base)
	file := loader.NewCSVFile(loader.NewSourceFileParams{ID: "1", FilePath: "cp.csv", Loader: l})

	data, err := file.GetContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "", want: ','},
		{in: ";", want: ';'},
		{in: `\t`, want: '\t'},
		{in: "tab", want: '\t'},
		{in: "|", want: '|'},
		{in: ";;", wantErr: true},
		{in: `"`, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseDelimiter(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
