// Package leveler implements adaptive loudness averaging for stereo audio.
//
// A recording is cut into fixed-length overlapping blocks. Each block is
// measured with a BS.1770 loudness meter and scaled towards a target
// loudness, with the correction optionally clamped to a maximum gain. The
// corrected blocks are stitched back together with linear crossfades over
// their overlap. A second pass over the result, shifted by half a block,
// moves the block boundaries to the midpoints of the first pass. A final
// global gain brings the whole buffer to the target loudness.
//
// The long-term loudness curve of a DJ set or album side is flattened this
// way while the dynamics inside each block are left alone.
package leveler
