package trees

import "github.com/Natfii/voxelbiome/internal/biome"

// BlockAir and BlockGrass are the only existing block IDs a tree is
// allowed to grow through; anything else blocks placement, matching
// TreeGenerator::placeTree's existing-block check.
const (
	BlockAir   = 0
	BlockGrass = 3
)

// World is the minimal block-access surface PlaceTree needs. A concrete
// chunk/world implementation satisfies this with its own coordinate and
// storage scheme.
type World interface {
	BlockAt(x, y, z int) int
	SetBlock(x, y, z int, blockID int)
}

// PlaceTree writes every block of tmpl at the given origin, or none at
// all: it first verifies every target cell is air or grass, and only then
// performs the writes, so a tree never partially overwrites existing
// structure.
func PlaceTree(w World, originX, originY, originZ int, tmpl biome.TreeTemplate) bool {
	for _, b := range tmpl.Blocks {
		existing := w.BlockAt(originX+b.DX, originY+b.DY, originZ+b.DZ)
		if existing != BlockAir && existing != BlockGrass {
			return false
		}
	}

	for _, b := range tmpl.Blocks {
		w.SetBlock(originX+b.DX, originY+b.DY, originZ+b.DZ, b.BlockID)
	}

	return true
}
