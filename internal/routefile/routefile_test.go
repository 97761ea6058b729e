package routefile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimmyclipboard/internal/route"
)

const header = "System Name,Distance,Distance Remaining,Fuel Left,Fuel Used,Refuel,Neutron Star\n"

func writeRouteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "route.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRead_SpanshExport(t *testing.T) {
	data := header +
		"A,0,1000,32,0,No,No\n" +
		"B,600,400,26.5,5.5,Yes,No\n" +
		"C,400,0,30,2,No,Yes\n"

	r, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, r, 3)

	assert.Equal(t, route.Waypoint{
		SystemName:        "B",
		Distance:          600,
		DistanceRemaining: 400,
		FuelLeft:          26.5,
		FuelUsed:          5.5,
		Refuel:            true,
	}, r[1])
	assert.True(t, r[2].NeutronStar)
	assert.False(t, r[2].Refuel)
}

func TestRead_ExtraColumnsIgnored(t *testing.T) {
	data := "System Name,Jumps,Distance,Distance Remaining,Fuel Left,Fuel Used,Refuel,Neutron Star\n" +
		"Sol,0,0,10,32,0,No,No\n" +
		"Colonia,1,10,0,30,2,No,Yes\n"

	r, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Equal(t, "Colonia", r[1].SystemName)
}

func TestRead_ByteOrderMark(t *testing.T) {
	data := "\xef\xbb\xbf" + header + "Sol,0,0,32,0,No,No\n"

	r, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, r, 1)
	assert.Equal(t, "Sol", r[0].SystemName)
}

func TestRead_UnknownFlagValue(t *testing.T) {
	data := header + "A,0,10,32,0,Maybe,No\n"

	_, err := Read(strings.NewReader(data))
	require.Error(t, err)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
	assert.Contains(t, err.Error(), "Maybe")
}

func TestRead_FlagsAreCaseSensitive(t *testing.T) {
	data := header + "A,0,10,32,0,No,yes\n"

	_, err := Read(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yes")
}

func TestRead_NonNumericValue(t *testing.T) {
	data := header + "A,far,10,32,0,No,No\n"

	_, err := Read(strings.NewReader(data))
	require.Error(t, err)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))

	var numErr *NumberError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "far", numErr.Value)
}

func TestRead_EmptyNumericCell(t *testing.T) {
	data := header + "A,,10,32,0,No,No\n"

	r, err := Read(strings.NewReader(data))
	require.Error(t, err)
	assert.Nil(t, r)

	var numErr *NumberError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "", numErr.Value)
	assert.Contains(t, err.Error(), `column "Distance"`)
}

func TestRead_PaddedNumericCell(t *testing.T) {
	tests := []struct {
		name string
		cell string
	}{
		{"leading and trailing space", " 5 "},
		{"trailing space", "5 "},
		{"decimal comma", `"5,5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := header + "A," + tt.cell + ",10,32,0,No,No\n"

			_, err := Read(strings.NewReader(data))
			require.Error(t, err)

			var numErr *NumberError
			assert.True(t, errors.As(err, &numErr))
		})
	}
}

func TestRead_NonFiniteNumber(t *testing.T) {
	for _, row := range []string{
		"A,NaN,10,32,0,No,No\n",
		"A,5,Inf,32,0,No,No\n",
		"A,5,10,-Inf,0,No,No\n",
	} {
		_, err := Read(strings.NewReader(header + row))
		assert.ErrorIs(t, err, route.ErrInvalidWaypoint, row)
	}
}

func TestRead_ErrorNamesLineAndColumn(t *testing.T) {
	data := header +
		"A,0,10,32,0,No,No\n" +
		"B,5,5,30,2,Maybe,No\n"

	_, err := Read(strings.NewReader(data))
	require.Error(t, err)

	assert.Contains(t, err.Error(), `line 3, column "Refuel"`)
	assert.NotContains(t, err.Error(), "line 0")

	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, "Maybe", flagErr.Value)
}

func TestNumber_UnmarshalCSV(t *testing.T) {
	var n number
	require.NoError(t, n.UnmarshalCSV("26.5"))
	assert.Equal(t, number(26.5), n)
	require.NoError(t, n.UnmarshalCSV("1e3"))
	assert.Equal(t, number(1000), n)

	for _, bad := range []string{"", " 1", "1 ", "1,5", "far"} {
		err := n.UnmarshalCSV(bad)
		var numErr *NumberError
		require.True(t, errors.As(err, &numErr), "%q", bad)
		assert.Equal(t, bad, numErr.Value)
	}
}

func TestRead_MissingColumn(t *testing.T) {
	data := "System Name,Distance,Distance Remaining,Fuel Left,Refuel,Neutron Star\n" +
		"A,0,10,32,No,No\n"

	_, err := Read(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Fuel Used"`)
}

func TestRead_HeaderOnly(t *testing.T) {
	_, err := Read(strings.NewReader(header))
	assert.ErrorIs(t, err, route.ErrEmptyRoute)
}

func TestRead_EmptyFile(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.ErrorIs(t, err, route.ErrEmptyRoute)
}

func TestRead_NegativeFuel(t *testing.T) {
	data := header + "A,0,10,-1,0,No,No\n"

	_, err := Read(strings.NewReader(data))
	assert.ErrorIs(t, err, route.ErrInvalidWaypoint)
}

func TestLoad(t *testing.T) {
	path := writeRouteFile(t, header+"Sol,0,4.4,32,0,No,No\nAlpha Centauri,4.4,0,31,1,Yes,No\n")

	r, err := Load(path)
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Equal(t, "Alpha Centauri", r[1].SystemName)
}

func TestLoad_ErrorsCarryPath(t *testing.T) {
	path := writeRouteFile(t, header+"A,0,10,32,0,Perhaps,No\n")

	_, err := Load(path)
	require.Error(t, err)

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, path, inputErr.Path)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYesNo_UnmarshalCSV(t *testing.T) {
	var b yesNo
	require.NoError(t, b.UnmarshalCSV("Yes"))
	assert.True(t, bool(b))
	require.NoError(t, b.UnmarshalCSV("No"))
	assert.False(t, bool(b))

	err := b.UnmarshalCSV("")
	var flagErr *FlagError
	require.True(t, errors.As(err, &flagErr))
	assert.Equal(t, "", flagErr.Value)
}
