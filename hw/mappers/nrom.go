package mappers

import (
	"fmt"

	"dunes/hw/hwdefs"
	"dunes/hw/hwio"
	"dunes/ines"
)

var NROM = MapperDesc{
	Name: "NROM",
	Load: loadNROM,
}

type nrom struct {
	PRGRAM hwio.Mem `hwio:"offset=0x6000,size=0x2000"`
	PRGROM hwio.Mem `hwio:"offset=0x8000,size=0x8000,readonly"`

	chr       []byte
	chrRAM    bool
	mirroring hwdefs.NTMirroring
}

func loadNROM(rom *ines.Rom) (Cartridge, error) {
	switch len(rom.PRGROM) {
	case 0x4000, 0x8000:
	default:
		return nil, fmt.Errorf("PRGROM must be 16KB or 32KB, got %d bytes", len(rom.PRGROM))
	}

	nrom := &nrom{mirroring: rom.Mirroring()}
	hwio.MustInitRegs(nrom)

	// Dimension the PRGROM based on the length of the cartridge PRGROM.
	// The 16KB version is mirrored at $C000 by hwio.Mem.
	nrom.PRGROM.Data = make([]byte, len(rom.PRGROM))
	copy(nrom.PRGROM.Data, rom.PRGROM)
	nrom.PRGROM.Flags |= hwio.MemFlagNoROLog

	if rom.HasCHRRAM() {
		nrom.chr = make([]byte, ines.CHRROMBankSize)
		nrom.chrRAM = true
	} else {
		if len(rom.CHRROM) != ines.CHRROMBankSize {
			return nil, fmt.Errorf("CHRROM must be 8KB, got %d bytes", len(rom.CHRROM))
		}
		nrom.chr = make([]byte, ines.CHRROMBankSize)
		copy(nrom.chr, rom.CHRROM)
	}
	return nrom, nil
}

func (m *nrom) Name() string { return NROM.Name }

// MapCPU maps PRG RAM at $6000 and PRG ROM at $8000.
func (m *nrom) MapCPU(bus *hwio.Table) {
	bus.MapBank(0x0000, m, 0)
}

func (m *nrom) ReadPRG(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.PRGROM.Data[int(addr-0x8000)%len(m.PRGROM.Data)]
	case addr >= 0x6000:
		return m.PRGRAM.Data[addr-0x6000]
	}
	return 0
}

func (m *nrom) WritePRG(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.PRGRAM.Data[addr-0x6000] = val
	}
}

func (m *nrom) ReadCHR(addr uint16) uint8 {
	return m.chr[addr&0x1FFF]
}

func (m *nrom) WriteCHR(addr uint16, val uint8) {
	if m.chrRAM {
		m.chr[addr&0x1FFF] = val
	}
}

func (m *nrom) Mirroring() hwdefs.NTMirroring { return m.mirroring }
