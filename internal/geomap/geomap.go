package geomap

import (
	"math"

	clientdomain "salestrack/internal/domain/client"
	"salestrack/internal/domain/salesperson"
)

// Defaults for the dashboard map. The fallback center is Managua.
const (
	DefaultPadding = 50
	MaxFitZoom     = 14
	DefaultZoom    = 13

	tileSize = 256
	maxZoom  = 19
)

var DefaultCenter = Point{Latitude: 12.1364, Longitude: -86.2514}

// Point is one mappable coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Viewport is the pixel size of the map pane.
type Viewport struct {
	Width  int
	Height int
}

// View is a resolved camera position.
type View struct {
	Center Point
	Zoom   int
}

// SalespersonPoints filters down to agents with a known position. Agents
// awaiting their first fix simply do not appear on the map.
func SalespersonPoints(people []salesperson.Salesperson) []Point {
	points := make([]Point, 0, len(people))
	for i := range people {
		if !people[i].HasPosition() {
			continue
		}
		points = append(points, Point{
			Latitude:  *people[i].Latitude,
			Longitude: *people[i].Longitude,
		})
	}
	return points
}

// ClientPoints maps registered customers, whose position is always known.
func ClientPoints(clients []clientdomain.Client) []Point {
	points := make([]Point, 0, len(clients))
	for i := range clients {
		points = append(points, Point{
			Latitude:  clients[i].Latitude,
			Longitude: clients[i].Longitude,
		})
	}
	return points
}

// FitBounds computes the camera that frames every point with the given
// pixel padding, capped at maxFitZoom so a single point does not zoom in to
// street level. With no points it falls back to the default city view.
func FitBounds(points []Point, padding, maxFitZoom int, viewport Viewport) View {
	if len(points) == 0 {
		return View{Center: DefaultCenter, Zoom: DefaultZoom}
	}

	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLng, maxLng := points[0].Longitude, points[0].Longitude
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLng = math.Min(minLng, p.Longitude)
		maxLng = math.Max(maxLng, p.Longitude)
	}

	center := Point{
		Latitude:  (minLat + maxLat) / 2,
		Longitude: (minLng + maxLng) / 2,
	}

	return View{
		Center: center,
		Zoom:   boundsZoom(minLat, minLng, maxLat, maxLng, padding, maxFitZoom, viewport),
	}
}

// Contains reports whether the view's framing bounds include the point.
// The check runs on the raw bounding box of the fitted points, which is the
// contract the dashboard relies on: every mappable agent stays in frame.
func Contains(points []Point, candidate Point) bool {
	if len(points) == 0 {
		return false
	}

	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLng, maxLng := points[0].Longitude, points[0].Longitude
	for _, p := range points[1:] {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLng = math.Min(minLng, p.Longitude)
		maxLng = math.Max(maxLng, p.Longitude)
	}

	return candidate.Latitude >= minLat && candidate.Latitude <= maxLat &&
		candidate.Longitude >= minLng && candidate.Longitude <= maxLng
}

// boundsZoom picks the largest zoom at which the projected box fits inside
// the padded viewport, Web Mercator math as tile maps do it.
func boundsZoom(minLat, minLng, maxLat, maxLng float64, padding, maxFitZoom int, viewport Viewport) int {
	if maxFitZoom <= 0 || maxFitZoom > maxZoom {
		maxFitZoom = maxZoom
	}
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return maxFitZoom
	}

	nwX, nwY := project(maxLat, minLng)
	seX, seY := project(minLat, maxLng)
	spanX := seX - nwX
	spanY := seY - nwY

	availW := float64(viewport.Width - 2*padding)
	availH := float64(viewport.Height - 2*padding)
	if availW <= 0 || availH <= 0 {
		return maxFitZoom
	}

	zoom := maxFitZoom
	if spanX > 0 || spanY > 0 {
		scale := math.Inf(1)
		if spanX > 0 {
			scale = math.Min(scale, availW/(spanX*tileSize))
		}
		if spanY > 0 {
			scale = math.Min(scale, availH/(spanY*tileSize))
		}
		zoom = int(math.Floor(math.Log2(scale)))
	}

	if zoom > maxFitZoom {
		zoom = maxFitZoom
	}
	if zoom < 0 {
		zoom = 0
	}
	return zoom
}

// project maps a coordinate to Web Mercator world space in [0,1].
func project(lat, lng float64) (x, y float64) {
	latRad := lat * math.Pi / 180
	x = (lng + 180) / 360
	y = (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2
	return x, y
}
