// Package lineextract cuts a growing decompressed byte buffer into
// candidate JSON record lines, discarding the Wikidata dump's
// header/footer noise and inter-record punctuation.
package lineextract

import "bytes"

// minLineOffset is the byte offset, within one scan window, that a newline
// must exceed before a line is even considered — anything shorter is
// header/footer noise, not an item record.
const minLineOffset = 663

// minClosingBrace is the offset that the last '}' before the newline must
// exceed for the resulting line to be kept.
const minClosingBrace = 662

// Extract scans buf for complete JSON record lines. It returns the
// extracted lines (byte slices aliasing buf — callers that retain a line
// past the next call must copy it) and the residual tail of buf that did
// not yet form a complete line. Extract does not mutate buf.
func Extract(buf []byte) (lines [][]byte, residual []byte) {
	dv := buf

	for {
		pos := bytes.IndexByte(dv, '\n')
		if pos < 0 {
			break
		}

		if pos > minLineOffset {
			ep := lastIndexByte(dv[:pos], '}')
			if ep >= 0 && ep > minClosingBrace {
				lines = append(lines, dv[:ep+1])
			}
		}

		if np := bytes.IndexByte(dv[pos:], '{'); np >= 0 {
			pos += np
		} else {
			pos++
		}

		dv = dv[pos:]
	}

	return lines, dv
}

// lastIndexByte searches for the last occurrence of b within s
// (already sliced to [0:pos)).
func lastIndexByte(s []byte, b byte) int {
	return bytes.LastIndexByte(s, b)
}

// Finalize appends the synthetic trailing newline the pipeline adds at
// end-of-stream so the final record in a non-newline-terminated input can
// still be extracted, then runs Extract once more.
func Finalize(buf []byte) (lines [][]byte, residual []byte) {
	if len(buf) == 0 {
		return nil, nil
	}
	withNL := make([]byte, len(buf)+1)
	copy(withNL, buf)
	withNL[len(buf)] = '\n'
	return Extract(withNL)
}
