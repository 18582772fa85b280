// Package dictionary finds and reads the word dictionary at the end of a
// brain.
//
// The dictionary is a four-byte word count followed by that many pascal
// strings (one length byte, then the bytes). Its first word is always
// "<ERROR>", which is what [Locate] searches for: scanning backward from the
// end of the buffer for the byte 7 followed by "<ERROR>" finds the first
// word, and the count field sits in the four bytes before it.
//
// Only the count is byte-order dependent. [CountWords] and [Words] never
// read it; they walk the strings up to the end of the buffer.
package dictionary

import (
	"bytes"
	"encoding/binary"
	"fmt"

	binpkg "github.com/robert-malhotra/go-brnflip/internal/binary"
	"github.com/robert-malhotra/go-brnflip/internal/format"
)

// marker is the pascal encoding of the first dictionary word.
var marker = append([]byte{byte(len(format.ErrorWord))}, format.ErrorWord...)

// Locate returns the offset of the dictionary's word count field, which is
// also the end of the tree region.
//
// A match whose count field could not end a tree region (too close to the
// header, or not a whole number of nodes past it) is skipped and the scan
// continues toward the start of the buffer.
func Locate(buf []byte) (int, error) {
	for pos := len(buf) - len(marker); pos >= 0; pos-- {
		if buf[pos] != marker[0] || !bytes.Equal(buf[pos+1:pos+len(marker)], marker[1:]) {
			continue
		}
		off := pos - format.CountSize
		if off < 0 {
			break
		}
		if !format.IsTreeEnd(off) {
			continue
		}
		return off, nil
	}
	return 0, fmt.Errorf("%w: %q dictionary marker not found", format.ErrMismatch, format.ErrorWord)
}

// CountWords walks the pascal strings after the count field at off and
// returns how many there are. The last string must end exactly at the end
// of the buffer.
func CountWords(buf []byte, off int) (int, error) {
	n := 0
	err := walk(buf, off, func([]byte) { n++ })
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Words returns copies of every dictionary word, in file order.
func Words(buf []byte, off int) ([]string, error) {
	var words []string
	err := walk(buf, off, func(word []byte) {
		words = append(words, string(word))
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// DeclaredCount reads the word count field at off in the given byte order.
func DeclaredCount(buf []byte, off int, order binary.ByteOrder) (uint32, error) {
	n, err := binpkg.NewReader(buf, order).At(off).ReadUint32()
	if err != nil {
		return 0, fmt.Errorf("%w: word count at offset %d: %v", format.ErrMismatch, off, err)
	}
	return n, nil
}

func walk(buf []byte, off int, fn func(word []byte)) error {
	// The string bytes are order independent; the order passed here is
	// never used.
	r := binpkg.NewReader(buf, binary.LittleEndian).At(off)
	if err := r.Skip(format.CountSize); err != nil {
		return fmt.Errorf("%w: dictionary offset %d leaves no room for the word count", format.ErrMismatch, off)
	}

	n := 0
	for r.Remaining() > 0 {
		start := r.Pos()
		length, err := r.ReadUint8()
		if err != nil {
			return fmt.Errorf("%w: word %d at offset %d: %v", format.ErrMismatch, n, start, err)
		}
		word, err := r.ReadBytes(int(length))
		if err != nil {
			return fmt.Errorf("%w: word %d at offset %d runs %d bytes past the end of the buffer",
				format.ErrMismatch, n, start, int(length)-r.Remaining())
		}
		fn(word)
		n++
	}
	if n == 0 {
		return fmt.Errorf("%w: empty dictionary", format.ErrMismatch)
	}
	return nil
}
