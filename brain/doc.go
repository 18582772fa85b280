// Package brain detects and converts the byte order of MegaHALv8 brain files.
//
// MegaHAL writes its brain with whatever byte order the machine it runs on
// uses, and the file does not say which one that was. A brain copied between
// a big-endian and a little-endian machine therefore has to be converted
// before MegaHAL can load it.
//
// # Detection
//
// [Detect] works out the order from the file's own structure. The
// dictionary at the end of the file starts with a four-byte word count; the
// count read one way or the other usually matches the number of words
// actually present, which gives a first guess. The guess is then checked by
// decoding both node trees in that order: only the right order makes the
// second tree end exactly where the dictionary begins. If it does not, the
// other order is tried once.
//
// # Conversion
//
// [Convert] detects the order and, if it is not the target, swaps every
// multi-byte field in place. [ForceFlip] swaps unconditionally, for brains
// detection cannot classify. Both leave the dictionary words untouched and
// never change the buffer length; on error the buffer is unchanged.
//
//	order, err := brain.Convert(buf, brain.NativeOrder())
//	if errors.Is(err, brain.ErrFormatMismatch) {
//	    // Not a MegaHALv8 brain
//	}
//
// [Inspect] reports the decoded layout without modifying anything.
//
// The package does no I/O and keeps no state between calls. Callers must
// not modify buf concurrently.
package brain
