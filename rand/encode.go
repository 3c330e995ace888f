package rand

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// encodedLineLength is the MIME line width used by the base64 and
// quoted-printable encodings.
const encodedLineLength = 76

// BytesHex returns n pseudo-random bytes as 2n lowercase hex digits.
func (r *Rand) BytesHex(n int) (string, error) {
	bs, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bs), nil
}

// BytesBase64 returns n pseudo-random bytes in standard base64, wrapped every
// 76 characters with eol. Every line, including the last, is terminated with
// eol; an empty eol disables wrapping entirely.
func (r *Rand) BytesBase64(n int, eol string) (string, error) {
	bs, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	return wrapLines(base64.StdEncoding.EncodeToString(bs), eol), nil
}

// BytesQP returns n pseudo-random bytes in binary-safe quoted-printable
// encoding, soft-wrapped at 76 columns with eol. An empty eol disables
// wrapping.
func (r *Rand) BytesQP(n int, eol string) (string, error) {
	bs, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	return qpEncode(bs, eol), nil
}

func wrapLines(s, eol string) string {
	if eol == "" || len(s) == 0 {
		return s
	}
	var b strings.Builder
	for len(s) > encodedLineLength {
		b.WriteString(s[:encodedLineLength])
		b.WriteString(eol)
		s = s[encodedLineLength:]
	}
	b.WriteString(s)
	b.WriteString(eol)
	return b.String()
}

// qpEncode is a binary-safe quoted-printable encoder. The stdlib
// mime/quotedprintable writer hardcodes CRLF soft breaks and is aimed at
// mostly-text bodies, so the line separator is applied here instead.
//
// Printable ASCII other than '=' passes through; everything else becomes
// =XX. Soft breaks ("=" + eol) keep every line, '=' included, within 76
// columns.
func qpEncode(data []byte, eol string) string {
	var b strings.Builder
	lineLen := 0
	for _, c := range data {
		literal := c >= '!' && c <= '~' && c != '='
		tokLen := 1
		if !literal {
			tokLen = 3
		}
		// Reserve one column for the soft break's '='.
		if eol != "" && lineLen+tokLen > encodedLineLength-1 {
			b.WriteByte('=')
			b.WriteString(eol)
			lineLen = 0
		}
		if literal {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "=%02X", c)
		}
		lineLen += tokLen
	}
	return b.String()
}
