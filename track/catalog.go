package track

import (
	"errors"
	"strings"
)

// Key is the canonical lowercase name of a circuit after alias resolution.
type Key string

var ErrUnknownTrack = errors.New("track not found in catalog")

// catalog is the fixed, ordered list of known circuits and their layout
// images. Iteration order matters: Image picks the first entry whose key is
// contained in the queried name, so "nürburgring" wins over "24h nürburgring"
// for any name that mentions both.
var catalog = []struct {
	key   Key
	image string
}{
	{"paul ricard", "https://img2.51gt3.com/rac/track/202304/b16da65815684d12aea6b42f42365882.png"},
	{"spa francorchamps", "https://img2.51gt3.com/rac/track/202304/1aebcbf68ab14bce81924c06009fbe62.png"},
	{"monza", "https://img2.51gt3.com/rac/track/202304/73988af861d14f0bb3b39149aefaff65.png"},
	{"nürburgring", "https://img2.51gt3.com/rac/track/202304/2478955935b2421b9bc575c3f641123d.png"},
	{"silverstone", "https://img2.51gt3.com/rac/track/202304/fed0c74be75347a490b23f65a87c1d0e.png"},
	{"barcelona", "https://img2.51gt3.com/rac/track/202303/35ad041fd64f44628adaec94b0769607.png"},
	{"brands hatch", "https://img2.51gt3.com/rac/track/202309/f24f80e559c54c12ba9a7bd87e28810b.png"},
	{"hungaroring", "https://img2.51gt3.com/rac/track/202309/f24f80e559c54c12ba9a7bd87e28810b.png"},
	{"misano", "https://img2.51gt3.com/rac/track/202309/fe1b0789c5444c63907024a8da445a1e.png"},
	{"zandvoort", "https://img2.51gt3.com/rac/track/202304/f7d718f5f16f49038f69f21a3f3d972f.png"},
	{"zolder", "https://img2.51gt3.com/rac/track/202305/ad7f0a9354834df8a4898d1eb7f549d0.png"},
	{"snetterton", "https://www.apexracingleague.com/wp-content/uploads/2020/02/Snetterton.png"},
	{"oulton park", "https://img2.51gt3.com/rac/track/202503/e4ca6e6c4e074879a61ea4492bac3585.jpg"},
	{"donington park", "https://img2.51gt3.com/rac/track/202305/04ed487923dc4373bdab93c252584a7b.png"},
	{"kyalami", "https://img2.51gt3.com/rac/track/202305/1a6fd3813dbb421bbb0aee79cac6d4d8.png"},
	{"suzuka", "https://img2.51gt3.com/rac/track/aacbce6c41dd4e5496eea246fc5e7c6b.jpg"},
	{"laguna seca", "https://img2.51gt3.com/rac/track/202305/cbf13c969f28425299c2c450576fe052.png"},
	{"mount panorama", "https://img2.51gt3.com/rac/track/202403/a068e9fe89f1471594711b1d624190a8.jpg"},
	{"imola", "https://img2.51gt3.com/rac/track/202304/15ab044da2b542b587a5ddba4a9ce76e.png"},
	{"watkins glen", "https://img2.51gt3.com/rac/track/202305/fbc2519ce917489ea6c385147e8b196a.png"},
	{"circuit of the americas", "https://img2.51gt3.com/rac/track/202303/d093da62dab34f54b494979cce5a7a1c.png"},
	{"indianapolis", "https://img2.51gt3.com/rac/track/202502/da6a99e10588446ab8c87145f99741ac.jpg"},
	{"valencia", "https://img2.51gt3.com/rac/track/202304/e96ba2e3abbc4183b11627ecde2bf351.png"},
	{"red bull ring", "https://img2.51gt3.com/rac/track/202304/10482227212b4ac3a557ce0197cb87a0.png"},
	{"24h nürburgring", "https://img2.51gt3.com/rac/track/202509/5aec8bbe6ad540adbe11493582550458.jpg"},
}

// aliases maps common short names onto catalog keys.
var aliases = map[string]Key{
	"spa":           "spa francorchamps",
	"francorchamps": "spa francorchamps",
	"cota":          "circuit of the americas",
	"nurburgring":   "nürburgring",
	"gp":            "nürburgring",
	"nords":         "24h nürburgring",
	"nordschleife":  "24h nürburgring",
	"24h":           "24h nürburgring",
	"bathurst":      "mount panorama",
	"brands":        "brands hatch",
	"rbr":           "red bull ring",
	"indy":          "indianapolis",
	"donington":     "donington park",
	"oulton":        "oulton park",
	"laguna":        "laguna seca",
	"catalunya":     "barcelona",
	"glen":          "watkins glen",
}

// Resolve maps raw user input to a catalog key. Input is lowercased and
// trimmed, looked up in the alias table first, then taken as-is if it already
// names a catalog entry.
func Resolve(raw string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", ErrUnknownTrack
	}

	if key, ok := aliases[name]; ok {
		return key, nil
	}
	for _, entry := range catalog {
		if entry.key == Key(name) {
			return entry.key, nil
		}
	}
	return "", ErrUnknownTrack
}

// Image returns the layout image for the first catalog entry whose key is
// contained in name. The name does not have to resolve: announcements for
// circuits outside the catalog simply render without an image.
func Image(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, entry := range catalog {
		if strings.Contains(lower, string(entry.key)) {
			return entry.image, true
		}
	}
	return "", false
}

// Keys returns all catalog keys in catalog order.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for _, entry := range catalog {
		keys = append(keys, entry.key)
	}
	return keys
}
