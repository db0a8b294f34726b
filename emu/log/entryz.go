package log

import (
	"fmt"
	"sync"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

const maxZFields = 16

// EntryZ is a log entry built field by field without allocations. A nil
// *EntryZ is valid: all methods are no-ops, this is what disabled modules
// return.
//
//	log.ModPPU.DebugZ("write ctrl").Hex8("val", val).End()
type EntryZ struct {
	lvl   Level
	mod   Module
	msg   string
	zfbuf [maxZFields]zfield
	zfidx int
}

var zpool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func NewEntryZ() *EntryZ {
	z := zpool.Get().(*EntryZ)
	z.zfidx = 0
	return z
}

func (z *EntryZ) add(f zfield) *EntryZ {
	if z == nil || z.zfidx == len(z.zfbuf) {
		return z
	}
	z.zfbuf[z.zfidx] = f
	z.zfidx++
	return z
}

func (z *EntryZ) hex(key string, v uint64, width uint8) *EntryZ {
	return z.add(zfield{key: key, kind: kindHex, width: width, num: v})
}

func (z *EntryZ) unsigned(key string, v uint64) *EntryZ {
	return z.add(zfield{key: key, kind: kindUint, num: v})
}

func (z *EntryZ) Bool(key string, b bool) *EntryZ {
	f := zfield{key: key, kind: kindBool}
	if b {
		f.num = 1
	}
	return z.add(f)
}

func (z *EntryZ) String(key string, s string) *EntryZ {
	return z.add(zfield{key: key, kind: kindString, str: s})
}

func (z *EntryZ) Stringer(key string, s fmt.Stringer) *EntryZ {
	return z.add(zfield{key: key, kind: kindStringer, val: s})
}

func (z *EntryZ) Hex8(key string, v uint8) *EntryZ   { return z.hex(key, uint64(v), 2) }
func (z *EntryZ) Hex16(key string, v uint16) *EntryZ { return z.hex(key, uint64(v), 4) }
func (z *EntryZ) Hex32(key string, v uint32) *EntryZ { return z.hex(key, uint64(v), 8) }

func (z *EntryZ) Uint8(key string, v uint8) *EntryZ   { return z.unsigned(key, uint64(v)) }
func (z *EntryZ) Uint16(key string, v uint16) *EntryZ { return z.unsigned(key, uint64(v)) }
func (z *EntryZ) Uint32(key string, v uint32) *EntryZ { return z.unsigned(key, uint64(v)) }
func (z *EntryZ) Uint64(key string, v uint64) *EntryZ { return z.unsigned(key, v) }

func (z *EntryZ) Int(key string, v int) *EntryZ { return z.Int64(key, int64(v)) }

func (z *EntryZ) Int64(key string, v int64) *EntryZ {
	return z.add(zfield{key: key, kind: kindInt, num: uint64(v)})
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	return z.add(zfield{key: key, kind: kindError, val: err})
}

func (z *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	return z.add(zfield{key: key, kind: kindDuration, num: uint64(d)})
}

func (z *EntryZ) Blob(key string, b []byte) *EntryZ {
	return z.add(zfield{key: key, kind: kindBlob, buf: b})
}

// End emits the entry and gives it back to the pool. Panic and Fatal
// levels do not return.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	addContexts(z)

	fields := make(logrus.Fields, z.zfidx+1)
	fields["_mod"] = z.mod.String()
	for i := range z.zfbuf[:z.zfidx] {
		fields[z.zfbuf[i].key] = z.zfbuf[i].format()
	}
	entry := logrus.StandardLogger().WithFields(fields)
	lvl, msg := z.lvl, z.msg

	clear(z.zfbuf[:z.zfidx])
	zpool.Put(z)

	switch lvl {
	case DebugLevel:
		entry.Debug(msg)
	case InfoLevel:
		entry.Info(msg)
	case WarnLevel:
		entry.Warn(msg)
	case ErrorLevel:
		entry.Error(msg)
	case FatalLevel:
		entry.Fatal(msg)
	case PanicLevel:
		entry.Panic(msg)
	}
}
