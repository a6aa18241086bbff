// Package geom bridges the polyline codec to paulmach/orb geometry types.
//
// orb expresses points in (x, y) order, which is (lon, lat). The polyline
// wire format interleaves latitude first; the codec handles that ordering,
// so callers only deal in orb's convention:
//
//	ls, err := geom.DecodeLineString("_p~iF~ps|U_ulLnnqC", polyline.PrecisionGoogle)
//	encoded, err := geom.EncodeLineString(ls, polyline.PrecisionGoogle)
package geom
