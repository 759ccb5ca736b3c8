// Package geodesy computes great-circle distance and bearings between two
// points on an ellipsoidal earth.
//
// Geographic latitudes are reduced to geocentric latitudes using the
// ellipsoid flattening; distance and bearings then follow from spherical
// trigonometry on the resulting direction cosines. This is the classic
// approach used by seismic processing packages for epicentral geometry.
package geodesy

import "math"

// WGS84Flattening is the flattening of the WGS84 reference ellipsoid.
const WGS84Flattening = (6378137.0 - 6356752.3142) / 6378137.0

// Ellipsoid is a reference ellipsoid.
type Ellipsoid struct {
	Flattening float64
}

// WGS84 is the default reference ellipsoid.
var WGS84 = Ellipsoid{Flattening: WGS84Flattening}

// Inverse returns the great-circle arc (degrees), azimuth from point 0 to
// point 1 and back-azimuth from point 1 to point 0 using e's flattening.
func (e Ellipsoid) Inverse(lon0, lat0, lon1, lat1 float64) (gcarc, az, baz float64) {
	return e.GreatCircle(lon0, lat0, lon1, lat1, e.Flattening)
}

// GreatCircle returns the great-circle arc in degrees together with the
// azimuth at point 0 and the back-azimuth at point 1, both in [0, 360).
// Coincident points yield zero for all three values.
func (Ellipsoid) GreatCircle(lon0, lat0, lon1, lat1, flattening float64) (gcarc, az, baz float64) {
	if lon0 == lon1 && lat0 == lat1 {
		return 0, 0, 0
	}

	th0 := geocentric(lat0, flattening)
	th1 := geocentric(lat1, flattening)
	dlon := deg2rad(lon1 - lon0)

	s0, c0 := math.Sincos(th0)
	s1, c1 := math.Sincos(th1)
	sdl, cdl := math.Sincos(dlon)

	// Direction cosines with point 0 on the x-z plane.
	x0, z0 := c0, s0
	x1, y1, z1 := c1*cdl, c1*sdl, s1

	dot := x0*x1 + z0*z1
	cx := -z0 * y1
	cy := z0*x1 - x0*z1
	cz := x0 * y1
	gcarc = rad2deg(math.Atan2(math.Sqrt(cx*cx+cy*cy+cz*cz), dot))

	az = normalizeDeg(rad2deg(math.Atan2(sdl*c1, c0*s1-s0*c1*cdl)))
	baz = normalizeDeg(rad2deg(math.Atan2(-sdl*c0, c1*s0-s1*c0*cdl)))
	return gcarc, az, baz
}

// geocentric converts a geographic latitude in degrees to a geocentric
// latitude in radians.
func geocentric(lat, flattening float64) float64 {
	phi := deg2rad(lat)
	e := (1 - flattening) * (1 - flattening)
	return math.Atan2(e*math.Sin(phi), math.Cos(phi))
}

func normalizeDeg(v float64) float64 {
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	if v >= 360 {
		v -= 360
	}
	return v
}

func deg2rad(v float64) float64 { return v * math.Pi / 180 }

func rad2deg(v float64) float64 { return v * 180 / math.Pi }
