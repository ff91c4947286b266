// Package trees procedurally generates per-biome tree templates and
// places them atomically into a world, ported from the reference engine's
// TreeGenerator (fractal/L-system-inspired branching).
package trees

import (
	"math/rand"

	"github.com/Natfii/voxelbiome/internal/biome"
)

// TemplatesPerBiome mirrors the original's fixed set of 10 tree types per
// biome: the first 3 are small, the next 4 medium, the last 3 large.
const TemplatesPerBiome = 10

const (
	smallCount  = 3
	mediumCount = 4
	// remaining TemplatesPerBiome - smallCount - mediumCount are large.

	maxBranchDepth = 2
)

// seedFor derives a biome-specific RNG seed from the world seed, so two
// biomes in the same world never generate identical templates, but a given
// (worldSeed, biome) pair always does.
func seedFor(worldSeed int64, biomeIndex int) int64 {
	return (worldSeed + 9999) ^ int64(biomeIndex)
}

// GenerateTemplates builds the fixed 10-template set for one biome, using
// its configured log/leaves block IDs.
func GenerateTemplates(worldSeed int64, d *biome.Descriptor) []biome.TreeTemplate {
	rng := rand.New(rand.NewSource(seedFor(worldSeed, d.Index)))

	logID := d.PrimaryLogBlock
	leavesID := d.PrimaryLeavesBlock

	templates := make([]biome.TreeTemplate, 0, TemplatesPerBiome)
	for i := 0; i < TemplatesPerBiome; i++ {
		var tmpl biome.TreeTemplate
		switch {
		case i < smallCount:
			tmpl = generateSmallTree(rng, logID, leavesID)
		case i < smallCount+mediumCount:
			tmpl = generateMediumTree(rng, logID, leavesID)
		default:
			tmpl = generateLargeTree(rng, logID, leavesID)
		}
		templates = append(templates, tmpl)
	}
	return templates
}

func generateSmallTree(rng *rand.Rand, logID, leavesID int) biome.TreeTemplate {
	height := 4 + rng.Intn(3) // 4-6
	tree := biome.TreeTemplate{Name: "small", Height: height}
	addTrunk(&tree, height, logID)
	addCanopy(&tree, height, 2, leavesID)
	return tree
}

func generateMediumTree(rng *rand.Rand, logID, leavesID int) biome.TreeTemplate {
	height := 7 + rng.Intn(4) // 7-10
	tree := biome.TreeTemplate{Name: "medium", Height: height}
	addTrunk(&tree, height, logID)
	addCanopy(&tree, height, 3, leavesID)

	branchStart := [3]int{0, height * 2 / 3, 0}
	dirs := [][3]int{{1, 1, 0}, {-1, 1, 0}, {0, 1, 1}, {0, 1, -1}}
	dir := dirs[rng.Intn(len(dirs))]
	addBranch(&tree, branchStart, dir, 3, 1, logID, leavesID)

	return tree
}

func generateLargeTree(rng *rand.Rand, logID, leavesID int) biome.TreeTemplate {
	height := 11 + rng.Intn(5) // 11-15
	tree := biome.TreeTemplate{Name: "large", Height: height}
	addTrunk(&tree, height, logID)
	addCanopy(&tree, height, 4, leavesID)

	dirs := [][3]int{{1, 1, 0}, {-1, 1, 0}, {0, 1, 1}, {0, 1, -1}, {1, 1, 1}, {-1, 1, -1}}
	for i := 0; i < 3; i++ {
		branchStart := [3]int{0, height/2 + i, 0}
		dir := dirs[rng.Intn(len(dirs))]
		addBranch(&tree, branchStart, dir, 4, maxBranchDepth, logID, leavesID)
	}

	return tree
}

// addTrunk adds a straight vertical column of log blocks from the tree's
// base up to height.
func addTrunk(tree *biome.TreeTemplate, height int, logID int) {
	for y := 0; y < height; y++ {
		tree.Blocks = append(tree.Blocks, biome.TreeBlock{DX: 0, DY: y, DZ: 0, BlockID: logID})
	}
}

// addCanopy fills a roughly spherical cluster of leaves of the given radius,
// centered on the trunk's top block.
func addCanopy(tree *biome.TreeTemplate, trunkHeight, radius int, leavesID int) {
	centerY := trunkHeight - 1
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				distSq := dx*dx + dy*dy + dz*dz
				if distSq > radius*radius {
					continue
				}
				tree.Blocks = append(tree.Blocks, biome.TreeBlock{
					DX: dx, DY: centerY + dy, DZ: dz, BlockID: leavesID,
				})
			}
		}
	}
}

// addBranch recursively extends a log branch outward from start in
// direction, tipping each branch with a small leaf cluster and, while
// depth remains, spawning two child branches at a shallower angle —
// capped at maxBranchDepth so the recursion always terminates.
func addBranch(tree *biome.TreeTemplate, start, direction [3]int, length, depth, logID, leavesID int) {
	pos := start
	for i := 0; i < length; i++ {
		pos = [3]int{pos[0] + direction[0], pos[1] + direction[1], pos[2] + direction[2]}
		tree.Blocks = append(tree.Blocks, biome.TreeBlock{DX: pos[0], DY: pos[1], DZ: pos[2], BlockID: logID})
	}

	tree.Blocks = append(tree.Blocks, biome.TreeBlock{DX: pos[0], DY: pos[1] + 1, DZ: pos[2], BlockID: leavesID})
	tree.Blocks = append(tree.Blocks, biome.TreeBlock{DX: pos[0] + 1, DY: pos[1], DZ: pos[2], BlockID: leavesID})
	tree.Blocks = append(tree.Blocks, biome.TreeBlock{DX: pos[0] - 1, DY: pos[1], DZ: pos[2], BlockID: leavesID})

	if depth <= 0 {
		return
	}

	childLength := length - 1
	if childLength < 1 {
		return
	}
	addBranch(tree, pos, [3]int{direction[0], 1, direction[2]}, childLength, depth-1, logID, leavesID)
	addBranch(tree, pos, [3]int{-direction[0], 1, -direction[2]}, childLength, depth-1, logID, leavesID)
}
