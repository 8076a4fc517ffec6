package frames

import (
	"regexp"
	"sort"
	"strings"
)

// Natural-order sorting so frame_2.png comes before frame_10.png.

var chunkRe = regexp.MustCompile(`\d+|\D+`)

// sortNatural orders names in place, comparing digit runs numerically and
// everything else lexically.
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

func naturalLess(a, b string) bool {
	as := chunkRe.FindAllString(a, -1)
	bs := chunkRe.FindAllString(b, -1)
	for i := 0; i < len(as) && i < len(bs); i++ {
		x, y := as[i], bs[i]
		if x == y {
			continue
		}
		xd := isDigits(x)
		yd := isDigits(y)
		if xd && yd {
			xt := strings.TrimLeft(x, "0")
			yt := strings.TrimLeft(y, "0")
			if len(xt) != len(yt) {
				return len(xt) < len(yt)
			}
			if xt != yt {
				return xt < yt
			}
			continue // numerically equal, differ only in zero padding
		}
		return x < y
	}
	if len(as) != len(bs) {
		return len(as) < len(bs)
	}
	return a < b
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
