package polyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gopolyline "github.com/twpayne/go-polyline"

	"core.tembea.africa/internal/geo"
)

// Reference vector from the format's documentation.
const referenceEncoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

var referencePoints = []geo.Point{
	{Latitude: 38.5, Longitude: -120.2},
	{Latitude: 40.7, Longitude: -120.95},
	{Latitude: 43.252, Longitude: -126.453},
}

func TestDecode_ReferenceVector(t *testing.T) {
	points, err := Decode(referenceEncoded)
	require.NoError(t, err)
	require.Len(t, points, 3)

	for i, want := range referencePoints {
		assert.InDelta(t, want.Latitude, points[i].Latitude, 1e-5)
		assert.InDelta(t, want.Longitude, points[i].Longitude, 1e-5)
	}
}

func TestDecode_Empty(t *testing.T) {
	points, err := Decode("")
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecode_TruncatedValue(t *testing.T) {
	// A single complete value: latitude delta with no longitude delta.
	_, err := Decode("_p~iF")
	assert.ErrorIs(t, err, ErrTruncated)

	// Input ending on a continuation chunk.
	_, err = Decode(referenceEncoded + "_")
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecode_InvalidCharacter(t *testing.T) {
	// Below the alphabet.
	_, err := Decode(" ")
	assert.ErrorIs(t, err, ErrInvalidByte)

	// Above the alphabet: bytes past '~' must not be folded into a delta.
	points, err := Decode("\x82??")
	assert.ErrorIs(t, err, ErrInvalidByte)
	assert.Nil(t, points)

	_, err = Decode(referenceEncoded + "\xff?")
	assert.ErrorIs(t, err, ErrInvalidByte)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	// Stage coordinates along the CBD-Rongai corridor.
	points := []geo.Point{
		{Latitude: -1.28640, Longitude: 36.82370},
		{Latitude: -1.29210, Longitude: 36.82860},
		{Latitude: -1.30740, Longitude: 36.82010},
		{Latitude: -1.39630, Longitude: 36.75870},
	}

	decoded, err := Decode(Encode(points))
	require.NoError(t, err)
	require.Len(t, decoded, len(points))

	for i, want := range points {
		assert.InDelta(t, want.Latitude, decoded[i].Latitude, 1e-5)
		assert.InDelta(t, want.Longitude, decoded[i].Longitude, 1e-5)
	}
}

// The codec must agree with the reference implementation in both directions.
func TestCodec_MatchesReferenceLibrary(t *testing.T) {
	coords := [][]float64{
		{-1.28640, 36.82370},
		{-1.30740, 36.82010},
		{-1.33290, 36.77050},
		{-1.39630, 36.75870},
	}

	encoded := string(gopolyline.EncodeCoords(coords))
	points, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, points, len(coords))
	for i, want := range coords {
		assert.InDelta(t, want[0], points[i].Latitude, 1e-5)
		assert.InDelta(t, want[1], points[i].Longitude, 1e-5)
	}

	ours := Encode(referencePoints)
	theirs, _, err := gopolyline.DecodeCoords([]byte(ours))
	require.NoError(t, err)
	require.Len(t, theirs, len(referencePoints))
	for i, want := range referencePoints {
		assert.InDelta(t, want.Latitude, theirs[i][0], 1e-5)
		assert.InDelta(t, want.Longitude, theirs[i][1], 1e-5)
	}
}
