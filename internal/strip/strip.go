// Package strip implements the comment-stripping utility spec.md §1 names
// as an external collaborator: a byte-level pass that deletes "% ... \n"
// spans while leaving everything else, including the newline itself,
// untouched. It does not use the lexer — it is intentionally independent
// so that mode 1 ("remove comments and echo") works even on input the
// lexer would choke on.
package strip

import (
	"bufio"
	"io"
)

// Strip copies src to dst with every "%"-to-end-of-line comment removed.
func Strip(dst io.Writer, src io.Reader) error {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	defer w.Flush()

	inComment := false
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch {
		case b == '%':
			inComment = true
		case b == '\n':
			inComment = false
			if err := w.WriteByte(b); err != nil {
				return err
			}
		case !inComment:
			if err := w.WriteByte(b); err != nil {
				return err
			}
		}
	}
}
