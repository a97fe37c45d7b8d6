// Package polyline implements the Google encoded polyline algorithm format
// at the standard 1e5 precision. Route pathing uses it to turn a directions
// provider's step geometry into stored corridor points.
package polyline

import (
	"errors"
	"math"

	"core.tembea.africa/internal/geo"
)

const precisionFactor = 1e5

// ErrTruncated is returned when an encoded polyline ends in the middle of a
// value. Truncated input is rejected outright rather than decoded partially,
// because persisting a partial path would corrupt stored route geometry.
var ErrTruncated = errors.New("polyline: truncated input")

// ErrInvalidByte is returned when the input contains a character outside the
// encoding alphabet.
var ErrInvalidByte = errors.New("polyline: invalid character")

// Decode converts an encoded polyline into its point sequence. Each point is
// stored as a signed delta from the previous one, zigzag-encoded and split
// into 5-bit chunks with 0x20 as the continuation bit. An empty input
// decodes to an empty sequence.
func Decode(encoded string) ([]geo.Point, error) {
	var points []geo.Point
	var lat, lng int64

	for i := 0; i < len(encoded); {
		dLat, n, err := decodeValue(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n
		lat += dLat

		if i >= len(encoded) {
			// A latitude delta with no matching longitude delta.
			return nil, ErrTruncated
		}

		dLng, n, err := decodeValue(encoded[i:])
		if err != nil {
			return nil, err
		}
		i += n
		lng += dLng

		points = append(points, geo.Point{
			Latitude:  float64(lat) / precisionFactor,
			Longitude: float64(lng) / precisionFactor,
		})
	}

	return points, nil
}

func decodeValue(s string) (value int64, width int, err error) {
	var result int64
	var shift uint

	for i := 0; i < len(s); i++ {
		b := int64(s[i]) - 63
		if b < 0 || b > 0x3f {
			return 0, 0, ErrInvalidByte
		}
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			if result&1 != 0 {
				return ^(result >> 1), i + 1, nil
			}
			return result >> 1, i + 1, nil
		}
	}

	return 0, 0, ErrTruncated
}

// Encode produces the encoded form of a point sequence. It is the inverse
// of Decode up to the format's 1e-5 quantization.
func Encode(points []geo.Point) string {
	var buf []byte
	var prevLat, prevLng int64

	for _, p := range points {
		lat := int64(math.Round(p.Latitude * precisionFactor))
		lng := int64(math.Round(p.Longitude * precisionFactor))
		buf = encodeValue(buf, lat-prevLat)
		buf = encodeValue(buf, lng-prevLng)
		prevLat, prevLng = lat, lng
	}

	return string(buf)
}

func encodeValue(buf []byte, v int64) []byte {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		buf = append(buf, byte(u&0x1f|0x20)+63)
		u >>= 5
	}
	return append(buf, byte(u)+63)
}
