package hwio

type MemFlags uint8

const (
	MemFlagReadWrite MemFlags = 0
	MemFlagReadOnly  MemFlags = 1 << iota // writes are rejected (and logged)
	MemFlagNoROLog                        // with MemFlagReadOnly, drop writes silently
)

// Mem is a linear memory area that can be mapped into a Table. The physical
// buffer size must be a power of 2, it is mirrored over VSize bytes.
type Mem struct {
	Name    string              // name of the memory area (for debugging)
	Data    []byte              // actual memory buffer
	VSize   int                 // virtual size of the memory (can be bigger than physical size)
	Flags   MemFlags            // flags determining how the memory can be accessed
	WriteCb func(uint16, uint8) // optional write callback, called after the write
}

// BankIO8 creates the adaptor used when mapping m into a Table.
func (m *Mem) BankIO8() BankIO8 {
	if len(m.Data) == 0 || len(m.Data)&(len(m.Data)-1) != 0 {
		panic("memory buffer size is not pow2")
	}
	return &mem{
		name: m.Name,
		buf:  m.Data,
		mask: uint16(len(m.Data) - 1),
		wcb:  m.WriteCb,
		ro:   m.Flags,
	}
}

type mem struct {
	name string
	buf  []byte
	mask uint16
	wcb  func(uint16, uint8)
	ro   MemFlags
}

func (m *mem) Read8(addr uint16, _ bool) uint8 {
	return m.buf[addr&m.mask]
}

func (m *mem) Write8(addr uint16, val uint8) {
	if m.ro&MemFlagReadOnly != 0 {
		if m.ro&MemFlagNoROLog == 0 {
			rejected("Write8", "memory", m.name, addr)
		}
		return
	}
	m.buf[addr&m.mask] = val
	if m.wcb != nil {
		m.wcb(addr, val)
	}
}
