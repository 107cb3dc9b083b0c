// Package anvil is a pixel-buffer processing engine for a layered
// raster editor. It owns the in-memory RGBA image of one layer and
// everything needed to mutate it deterministically, record those
// mutations compactly, and replay them for undo/redo.
//
// Three subsystems sit behind the [Anvil] facade:
//
//   - the RGBA pixel buffer, with bounds-checked random access,
//     rectangular read/write, flood fill, origin-aware resize, and
//     affine transfers with resampling;
//   - the tile index, a coarse dirty-flag grid a renderer polls to
//     decide which sub-rectangles to re-upload;
//   - the diff system, which accumulates pre-images of mutations
//     (pixels, regions, or the whole buffer), packs them through a
//     [github.com/anvilgfx/anvil/codec.Codec], and replays the packed
//     patches by swapping contents in place.
//
// Edits flow through the facade: the buffer is mutated, the touched
// tiles are marked dirty, and the pre-image is recorded. FlushDiffs
// hands the accumulated patch to the undo stack; ApplyPatch replays it
// in either direction, rewriting the patch into its own inverse.
//
// The engine is single-threaded and synchronous. Partition by layer
// (one Anvil per layer) when parallelism is needed.
package anvil
