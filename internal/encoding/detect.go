package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Peek window for BOM and charset sniffing.
const sniffLen = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that yields UTF-8 regardless of the
// source encoding. Bulk disbursement exports arrive as UTF-8, UTF-16 with
// BOM, or Latin-1 depending on which tool produced them.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if decoded, ok := bomReader(br, buf); ok {
		return decoded, nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	return sniffReader(br, buf), nil
}

// bomReader handles byte-order-marked input. The UTF-8 BOM is stripped;
// UTF-16 is decoded.
func bomReader(br *bufio.Reader, buf []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, true
	case bytes.HasPrefix(buf, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(buf, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

// sniffReader runs charset heuristics over the peeked bytes. Windows-1252
// is the fallback: it is a superset of ISO-8859-1 and decodes every byte,
// so worst case is a few wrong accented characters rather than an error.
func sniffReader(br *bufio.Reader, buf []byte) io.Reader {
	result, err := chardet.NewTextDetector().DetectBest(buf)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return br
		case "ISO-8859-1", "windows-1252":
			return transform.NewReader(br, charmap.Windows1252.NewDecoder())
		case "ISO-8859-15":
			return transform.NewReader(br, charmap.ISO8859_15.NewDecoder())
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder())
}
