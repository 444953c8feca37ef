package draw

import (
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// maxChunkSize caps a single write so frames stay under a typical MTU when
// streamed over SSH.
const maxChunkSize = 1400

// ChunkWriter collects one frame of cursor moves and glyphs, then hands it to
// the underlying writer in chunks of at most maxChunkSize bytes.
type ChunkWriter struct {
	out    io.Writer
	frame  []byte
	offCol int
	offRow int
}

// NewChunkWriter returns a writer targeting w. Cursor positions passed to
// MoveCursor and WriteAt are shifted by offCol and offRow.
func NewChunkWriter(w io.Writer, offCol, offRow int) *ChunkWriter {
	return &ChunkWriter{out: w, frame: make([]byte, 0, 8192), offCol: offCol, offRow: offRow}
}

// SetOffset changes the cursor shift, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(offCol, offRow int) {
	cw.offCol, cw.offRow = offCol, offRow
}

// MoveCursor queues a cursor move to the 1-based canvas cell col, row.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.frame = append(cw.frame, "\033["...)
	cw.frame = strconv.AppendInt(cw.frame, int64(row+cw.offRow), 10)
	cw.frame = append(cw.frame, ';')
	cw.frame = strconv.AppendInt(cw.frame, int64(col+cw.offCol), 10)
	cw.frame = append(cw.frame, 'H')
}

// WriteAt queues s at the 1-based canvas cell col, row.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.frame = append(cw.frame, s...)
}

// WriteRune queues r at the current cursor position.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.frame = utf8.AppendRune(cw.frame, r)
}

// Write queues raw bytes. Escape sequences written here are not shifted.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.frame = append(cw.frame, p...)
	return len(p), nil
}

// Pending reports how many bytes are queued.
func (cw *ChunkWriter) Pending() int { return len(cw.frame) }

// Flush sends the queued frame and empties the queue, even on error.
func (cw *ChunkWriter) Flush() error {
	frame := cw.frame
	cw.frame = cw.frame[:0]
	for start := 0; start < len(frame); start += maxChunkSize {
		end := min(start+maxChunkSize, len(frame))
		if _, err := cw.out.Write(frame[start:end]); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
	return nil
}
