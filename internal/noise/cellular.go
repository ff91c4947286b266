package noise

import "math"

// CellularReturnType selects which Worley distance is returned.
type CellularReturnType int

const (
	// Distance returns the distance to the nearest feature point.
	Distance CellularReturnType = iota
	// Distance2 returns the distance to the second-nearest feature point.
	Distance2
)

// Cellular is a deterministic cellular (Worley) noise sampler with
// Euclidean distance, ported from the reference engine's FastNoiseLite
// cellular mode: each unit grid cell owns one pseudo-random feature point,
// and a 2D/3D query searches the 3x3 (3x3x3) neighborhood for the
// nearest/second-nearest point.
type Cellular struct {
	seed int64
}

// NewCellular builds a cellular sampler for the given seed.
func NewCellular(seed int64) *Cellular {
	return &Cellular{seed: seed}
}

// Eval2 returns a raw distance value (not yet normalized) for 2D cellular
// noise at (x, z) using the given return type.
func (c *Cellular) Eval2(x, z float64, ret CellularReturnType) float64 {
	xi, zi := int64(math.Floor(x)), int64(math.Floor(z))

	var d1, d2 float64 = math.MaxFloat64, math.MaxFloat64
	for dz := int64(-1); dz <= 1; dz++ {
		for dx := int64(-1); dx <= 1; dx++ {
			cellX, cellZ := xi+dx, zi+dz
			fx, fz := featurePoint2(c.seed, cellX, cellZ)
			px, pz := float64(cellX)+fx, float64(cellZ)+fz
			dist := math.Hypot(px-x, pz-z)
			if dist < d1 {
				d2 = d1
				d1 = dist
			} else if dist < d2 {
				d2 = dist
			}
		}
	}

	if ret == Distance2 {
		return d2
	}
	return d1
}

// Eval3 is the 3D counterpart of Eval2, used by the underground-chamber
// field.
func (c *Cellular) Eval3(x, y, z float64, ret CellularReturnType) float64 {
	xi, yi, zi := int64(math.Floor(x)), int64(math.Floor(y)), int64(math.Floor(z))

	var d1, d2 float64 = math.MaxFloat64, math.MaxFloat64
	for dz := int64(-1); dz <= 1; dz++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dx := int64(-1); dx <= 1; dx++ {
				cellX, cellY, cellZ := xi+dx, yi+dy, zi+dz
				fx, fy, fz := featurePoint3(c.seed, cellX, cellY, cellZ)
				px, py, pz := float64(cellX)+fx, float64(cellY)+fy, float64(cellZ)+fz
				ddx, ddy, ddz := px-x, py-y, pz-z
				dist := math.Sqrt(ddx*ddx + ddy*ddy + ddz*ddz)
				if dist < d1 {
					d2 = d1
					d1 = dist
				} else if dist < d2 {
					d2 = dist
				}
			}
		}
	}

	if ret == Distance2 {
		return d2
	}
	return d1
}

// ToUnit2 maps a 2D Eval2 distance into [0, 1]. The maximum possible
// nearest-feature distance in a 3x3 neighborhood search is sqrt(2); values
// are clamped defensively since jittered points can in rare cases exceed it
// at cell boundaries.
func ToUnit2(d float64) float64 {
	v := d / math.Sqrt2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToUnit3 is the 3D counterpart of ToUnit2 (max distance sqrt(3)).
func ToUnit3(d float64) float64 {
	v := d / math.Sqrt(3)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// featurePoint2 deterministically places the feature point owned by grid
// cell (cellX, cellZ) somewhere inside that unit cell.
func featurePoint2(seed, cellX, cellZ int64) (fx, fz float64) {
	h := hash3(seed, cellX, cellZ)
	fx = float64(h&0xFFFF) / 0xFFFF
	fz = float64((h>>16)&0xFFFF) / 0xFFFF
	return
}

func featurePoint3(seed, cellX, cellY, cellZ int64) (fx, fy, fz float64) {
	h := hash4(seed, cellX, cellY, cellZ)
	fx = float64(h&0x3FF) / 0x3FF
	fy = float64((h>>10)&0x3FF) / 0x3FF
	fz = float64((h>>20)&0x3FF) / 0x3FF
	return
}

// hash3/hash4 are deterministic integer hashes, stable across runs and
// platforms (no floating point, no map iteration order involved).
func hash3(seed, x, z int64) uint64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(z)*0xC2B2AE3D27D4EB4F ^ uint64(seed)*0x165667B19E3779F9
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return h
}

func hash4(seed, x, y, z int64) uint64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x165667B19E3779F9 ^ uint64(seed)*0x27D4EB2F165667C5
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return h
}
