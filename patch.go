package anvil

// ApplyMode tells ApplyPatch which direction the caller is replaying.
// Patches carry swap payloads, so application is symmetric; the mode is
// informational (it names the caller's intent for logging).
type ApplyMode uint8

const (
	// Undo replays a patch to restore the pre-mutation state.
	Undo ApplyMode = iota

	// Redo replays a patch a second time to restore the post-mutation
	// state.
	Redo
)

// String returns a string representation of the apply mode.
func (m ApplyMode) String() string {
	switch m {
	case Undo:
		return "Undo"
	case Redo:
		return "Redo"
	default:
		return "Unknown"
	}
}

// PixelDiff is the packed pre-image of a single pixel write: the color
// that was at (X, Y) before the write, packed per [Color.Packed].
type PixelDiff struct {
	X, Y  int
	Color uint32
}

// PartialDiff is the packed pre-image of a rectangular region. Encoded
// holds the region's RGBA bytes encoded by the engine's codec; Bounds
// records where the region sits and its dimensions for decoding.
type PartialDiff struct {
	Bounds  BoundBox
	Encoded []byte
}

// WholeDiff is the packed pre-image of the entire buffer.
type WholeDiff struct {
	Width, Height int
	Encoded       []byte
}

// Patch is the transport form of a set of pending diffs, as returned
// by PreviewPatch and FlushDiffs and consumed by ApplyPatch.
//
// A Patch is mutable by design: ApplyPatch rewrites the swap payloads
// in place so the same Patch value replays in the opposite direction.
// Callers must not treat a Patch as an immutable snapshot once it has
// been applied.
type Patch struct {
	Pixels  []PixelDiff
	Partial *PartialDiff
	Whole   *WholeDiff
}

// Empty reports whether the patch carries no diffs of any kind.
func (p *Patch) Empty() bool {
	return p == nil || (len(p.Pixels) == 0 && p.Partial == nil && p.Whole == nil)
}
