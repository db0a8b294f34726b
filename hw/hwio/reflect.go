package hwio

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type regInfo struct {
	regPtr any
	offset uint16
}

var (
	typeReg8   = reflect.TypeFor[Reg8]()
	typeMem    = reflect.TypeFor[Mem]()
	typeDevice = reflect.TypeFor[Device]()
)

func parseUint(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 0, bits)
}

// tagOptions is the parsed content of a "hwio" struct tag.
type tagOptions map[string]string

func parseTag(tag string) tagOptions {
	opts := make(tagOptions)
	for opt := range strings.SplitSeq(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, val, _ := strings.Cut(opt, "=")
		opts[key] = val
	}
	return opts
}

func (o tagOptions) has(key string) bool {
	_, ok := o[key]
	return ok
}

// callback returns the name of the method to use for the callback
// identified by key, following the convention <prefix><FieldName> unless a
// name is explicitly given (for example "rcb=ReadStatus").
func (o tagOptions) callback(key, prefix, field string) (string, bool) {
	name, ok := o[key]
	if !ok {
		return "", false
	}
	if name == "" {
		name = prefix + field
	}
	return name, true
}

func method[F any](v reflect.Value, name string) (F, error) {
	var zero F
	m := v.MethodByName(name)
	if !m.IsValid() {
		return zero, fmt.Errorf("method %s not found on %s", name, v.Type())
	}
	f, ok := m.Interface().(F)
	if !ok {
		return zero, fmt.Errorf("method %s has signature %s, want %s", name, m.Type(), reflect.TypeFor[F]())
	}
	return f, nil
}

// InitRegs initializes all registers, memory areas and devices of the
// structure pointed to by data, according to their "hwio" struct tag.
// Options common to all types:
//
//	readonly     writes are rejected
//	writeonly    reads are rejected (Reg8 and Device)
//	rcb[=Name]   read callback, defaults to Read<FIELDNAME>
//	wcb[=Name]   write callback, defaults to Write<FIELDNAME>
//
// Reg8 also accepts reset=0xNN (initial value) and rwmask=0xNN (writable
// bits, all by default). Mem and Device accept size=0xNNNN, Mem accepts
// vsize=0xNNNN (mirrored size, defaults to size).
func InitRegs(data any) error {
	val := reflect.ValueOf(data)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return errors.New("hwio: InitRegs expects a pointer to struct")
	}
	sval := val.Elem()
	styp := sval.Type()

	for i := range styp.NumField() {
		field := styp.Field(i)
		tag, ok := field.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		opts := parseTag(tag)
		fptr := sval.Field(i).Addr().Interface()

		var err error
		switch field.Type {
		case typeReg8:
			err = initReg8(val, fptr.(*Reg8), field.Name, opts)
		case typeMem:
			err = initMem(fptr.(*Mem), field.Name, opts)
		case typeDevice:
			err = initDevice(val, fptr.(*Device), field.Name, opts)
		default:
			err = fmt.Errorf("unsupported type %s", field.Type)
		}
		if err != nil {
			return fmt.Errorf("hwio: field %s.%s: %w", styp.Name(), field.Name, err)
		}
	}
	return nil
}

// MustInitRegs is like InitRegs but panics on error.
func MustInitRegs(data any) {
	if err := InitRegs(data); err != nil {
		panic(err)
	}
}

func initReg8(owner reflect.Value, reg *Reg8, name string, opts tagOptions) error {
	reg.Name = name
	reg.RoMask = 0
	reg.Access = accessOf(opts)

	if s, ok := opts["reset"]; ok {
		v, err := parseUint(s, 8)
		if err != nil {
			return fmt.Errorf("invalid reset value: %w", err)
		}
		reg.Value = uint8(v)
	}
	if s, ok := opts["rwmask"]; ok {
		v, err := parseUint(s, 8)
		if err != nil {
			return fmt.Errorf("invalid rwmask: %w", err)
		}
		reg.RoMask = ^uint8(v)
	}
	if name, ok := opts.callback("rcb", "Read", name); ok {
		cb, err := method[func(uint8, bool) uint8](owner, name)
		if err != nil {
			return err
		}
		reg.ReadCb = cb
	}
	if name, ok := opts.callback("wcb", "Write", name); ok {
		cb, err := method[func(uint8, uint8)](owner, name)
		if err != nil {
			return err
		}
		reg.WriteCb = cb
	}
	return nil
}

func initMem(mem *Mem, name string, opts tagOptions) error {
	mem.Name = name

	s, ok := opts["size"]
	if !ok {
		return errors.New("missing size")
	}
	size, err := parseUint(s, 32)
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}
	mem.Data = make([]byte, size)
	mem.VSize = int(size)
	if s, ok := opts["vsize"]; ok {
		vsize, err := parseUint(s, 32)
		if err != nil {
			return fmt.Errorf("invalid vsize: %w", err)
		}
		mem.VSize = int(vsize)
	}
	if opts.has("readonly") {
		mem.Flags |= MemFlagReadOnly
	}
	return nil
}

func initDevice(owner reflect.Value, dev *Device, name string, opts tagOptions) error {
	dev.Name = name
	dev.Access = accessOf(opts)

	s, ok := opts["size"]
	if !ok {
		return errors.New("missing size")
	}
	size, err := parseUint(s, 32)
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}
	dev.Size = int(size)

	if name, ok := opts.callback("rcb", "Read", name); ok {
		cb, err := method[func(uint16, bool) uint8](owner, name)
		if err != nil {
			return err
		}
		dev.ReadCb = cb
	}
	if name, ok := opts.callback("wcb", "Write", name); ok {
		cb, err := method[func(uint16, uint8)](owner, name)
		if err != nil {
			return err
		}
		dev.WriteCb = cb
	}
	return nil
}

func accessOf(opts tagOptions) Access {
	switch {
	case opts.has("readonly"):
		return ReadOnly
	case opts.has("writeonly"):
		return WriteOnly
	}
	return ReadWrite
}

// bankGetRegs returns the registers of bank that belong to bank number
// bankNum and have an offset.
func bankGetRegs(bank any, bankNum int) ([]regInfo, error) {
	val := reflect.ValueOf(bank)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return nil, errors.New("hwio: bank must be a pointer to struct")
	}
	sval := val.Elem()
	styp := sval.Type()

	var regs []regInfo
	for i := range styp.NumField() {
		field := styp.Field(i)
		tag, ok := field.Tag.Lookup("hwio")
		if !ok {
			continue
		}
		opts := parseTag(tag)

		num := 0
		if s, ok := opts["bank"]; ok {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("hwio: field %s: invalid bank: %w", field.Name, err)
			}
			num = n
		}
		if num != bankNum {
			continue
		}

		s, ok := opts["offset"]
		if !ok {
			continue
		}
		off, err := parseUint(s, 16)
		if err != nil {
			return nil, fmt.Errorf("hwio: field %s: invalid offset: %w", field.Name, err)
		}

		switch field.Type {
		case typeReg8, typeMem, typeDevice:
		default:
			return nil, fmt.Errorf("hwio: field %s: unsupported type %s", field.Name, field.Type)
		}
		regs = append(regs, regInfo{
			regPtr: sval.Field(i).Addr().Interface(),
			offset: uint16(off),
		})
	}
	return regs, nil
}
