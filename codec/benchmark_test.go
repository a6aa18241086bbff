package codec

import (
	"math"
	"testing"
)

func benchCoords(n int) []Coord[float64] {
	coords := make([]Coord[float64], n)
	for i := range coords {
		// Meandering path with small deltas, the shape polylines are
		// designed to compress.
		coords[i] = Coord[float64]{
			Lon: -122.42 + 0.0004*float64(i) + 0.0001*math.Sin(float64(i)),
			Lat: 37.78 + 0.0002*float64(i) + 0.0001*math.Cos(float64(i)),
		}
	}
	return coords
}

func BenchmarkEncode(b *testing.B) {
	coords := benchCoords(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(coords, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode_Small(b *testing.B) {
	coords := []Coord[float64]{
		{Lon: -120.2, Lat: 38.5},
		{Lon: -120.95, Lat: 40.7},
		{Lon: -126.453, Lat: 43.252},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(coords, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	encoded, err := Encode(benchCoords(1000), 5)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodePolyline[float64](encoded, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Precision6(b *testing.B) {
	encoded, err := Encode(benchCoords(1000), 6)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodePolyline[float64](encoded, 6); err != nil {
			b.Fatal(err)
		}
	}
}
