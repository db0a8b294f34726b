package log

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

type fieldKind uint8

const (
	kindBool fieldKind = iota + 1
	kindString
	kindStringer
	kindError
	kindHex
	kindUint
	kindInt
	kindDuration
	kindBlob
)

// zfield holds a field value until the entry is emitted, when it gets
// formatted. width is the number of hex digits of kindHex fields.
type zfield struct {
	key   string
	kind  fieldKind
	width uint8

	num uint64
	str string
	val any
	buf []byte
}

func (f *zfield) format() string {
	switch f.kind {
	case kindBool:
		return strconv.FormatBool(f.num != 0)
	case kindString:
		return f.str
	case kindHex:
		return fmt.Sprintf("%0*X", f.width, f.num)
	case kindUint:
		return strconv.FormatUint(f.num, 10)
	case kindInt:
		return strconv.FormatInt(int64(f.num), 10)
	case kindDuration:
		return time.Duration(f.num).String()
	case kindBlob:
		return hex.EncodeToString(f.buf)
	case kindError, kindStringer:
		if f.val == nil {
			return "<nil>"
		}
		return fmt.Sprint(f.val)
	}
	return "?"
}
