package proxy

import (
	"strings"
)

type Coordinates struct {
	Lat float64
	Lon float64
}

// zipCentroids is a static approximation of ZIP code centers for the markets we serve.
var zipCentroids = map[string]Coordinates{
	"02108": {42.3576, -71.0637},
	"02139": {42.3647, -71.1042},
	"10001": {40.7506, -73.9972},
	"10002": {40.7157, -73.9863},
	"10003": {40.7318, -73.9891},
	"10011": {40.7402, -73.9996},
	"10016": {40.7453, -73.9781},
	"10019": {40.7651, -73.9858},
	"10036": {40.7597, -73.9912},
	"11201": {40.6940, -73.9903},
	"11211": {40.7128, -73.9533},
	"19103": {39.9522, -75.1740},
	"20001": {38.9109, -77.0163},
	"30303": {33.7525, -84.3888},
	"33101": {25.7791, -80.1978},
	"33139": {25.7844, -80.1314},
	"60601": {41.8858, -87.6181},
	"60607": {41.8721, -87.6578},
	"75201": {32.7876, -96.7994},
	"77002": {29.7560, -95.3655},
	"78701": {30.2713, -97.7426},
	"80202": {39.7527, -104.9992},
	"85004": {33.4515, -112.0685},
	"90012": {34.0614, -118.2385},
	"90028": {34.0998, -118.3267},
	"90210": {34.0901, -118.4065},
	"92101": {32.7194, -117.1628},
	"94102": {37.7793, -122.4193},
	"94103": {37.7725, -122.4147},
	"94107": {37.7621, -122.3971},
	"94110": {37.7509, -122.4153},
	"95113": {37.3337, -121.8907},
	"97205": {45.5206, -122.6856},
	"98101": {47.6114, -122.3305},
	"98109": {47.6302, -122.3447},
}

// LookupZIP returns the approximate center of a ZIP code. ZIP+4 codes are reduced to five digits.
func LookupZIP(zip string) (Coordinates, bool) {
	zip = strings.TrimSpace(zip)
	if i := strings.IndexByte(zip, '-'); i >= 0 {
		zip = zip[:i]
	}
	if len(zip) != 5 {
		return Coordinates{}, false
	}
	c, ok := zipCentroids[zip]
	return c, ok
}
