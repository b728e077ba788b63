package domain

import "fmt"

// DecodePolyline decodes an encoded polyline geometry into a coordinate
// sequence. Values are decoded at the standard 1e-5 precision and then
// divided by 10 once more: the route service encodes at 1e-6 while the
// standard algorithm assumes 1e-5. The correction belongs here and only
// here; callers must never re-apply it.
func DecodePolyline(encoded string) ([]Coordinate, error) {
	var coords []Coordinate
	var lat, lon int64

	for i := 0; i < len(encoded); {
		dLat, n, err := decodeChunk(encoded, i)
		if err != nil {
			return nil, err
		}
		i = n
		lat += dLat

		dLon, n, err := decodeChunk(encoded, i)
		if err != nil {
			return nil, err
		}
		i = n
		lon += dLon

		coords = append(coords, Coordinate{
			Lon: float64(lon) / 1e6,
			Lat: float64(lat) / 1e6,
		})
	}

	return coords, nil
}

// decodeChunk reads one zig-zag, base-63 varint starting at offset i and
// returns the signed delta plus the offset of the next chunk.
func decodeChunk(encoded string, i int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if i >= len(encoded) {
			return 0, i, fmt.Errorf("decode polyline: truncated input at offset %d", i)
		}

		b := int64(encoded[i]) - 63
		if b < 0 {
			return 0, i, fmt.Errorf("decode polyline: invalid character %q at offset %d", encoded[i], i)
		}
		i++

		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}
