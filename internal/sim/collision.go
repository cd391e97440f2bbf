package sim

import "github.com/kamstrup/intmap"

// Hit is one bullet-asteroid collision found during a scan.
type Hit struct {
	Bullet   Handle
	Asteroid Handle
}

// Detector runs the per-tick pairwise collision scans. It only reads the
// arena; every effect is returned to the caller for the lifecycle phase.
type Detector struct {
	marked *intmap.Set[Handle]
	hits   []Hit
	ships  []Handle
}

// NewDetector creates a detector sized for roughly capacity entities.
func NewDetector(capacity int) *Detector {
	return &Detector{marked: intmap.NewSet[Handle](capacity)}
}

// StarshipHit reports whether a starship at distance d from an asteroid
// touches it. The ship's collision radius is a quarter of its scale.
func StarshipHit(d, shipScale, asteroidScale float64) bool {
	return d < shipScale/4+asteroidScale/2
}

// BulletHit reports whether a bullet at distance d from an asteroid touches it.
func BulletHit(d, bulletScale, asteroidScale float64) bool {
	return d < bulletScale/4+asteroidScale/4
}

// Starships returns the ships that overlap any asteroid. The returned slice
// is reused by the next call.
func (d *Detector) Starships(sp Spatial, ships, asteroids []Handle) []Handle {
	d.ships = d.ships[:0]
	for _, s := range ships {
		st := sp.Get(s)
		for _, a := range asteroids {
			at := sp.Get(a)
			if StarshipHit(st.Position.Dist(at.Position), st.Scale, at.Scale) {
				d.ships = append(d.ships, s)
				break
			}
		}
	}
	return d.ships
}

// Bullets pairs bullets with the asteroids they hit. A bullet matches the
// first unclaimed asteroid in iteration order; both are then excluded from
// the rest of the scan, so no asteroid is split twice in one tick. The
// returned slice is reused by the next call.
func (d *Detector) Bullets(sp Spatial, bullets, asteroids []Handle) []Hit {
	d.hits = d.hits[:0]
	d.marked.Clear()
	for _, b := range bullets {
		bt := sp.Get(b)
		for _, a := range asteroids {
			if d.marked.Has(a) {
				continue
			}
			at := sp.Get(a)
			if BulletHit(bt.Position.Dist(at.Position), bt.Scale, at.Scale) {
				d.hits = append(d.hits, Hit{Bullet: b, Asteroid: a})
				d.marked.Add(a)
				break
			}
		}
	}
	return d.hits
}
