// Package mappers implements the cartridge boards. Only NROM (mapper 0) is
// supported.
package mappers

import (
	"errors"
	"fmt"

	"dunes/emu/log"
	"dunes/hw"
	"dunes/ines"
)

var ErrUnsupportedMapper = errors.New("unsupported mapper")

// A Cartridge is a game cartridge, created from a rom file.
type Cartridge interface {
	hw.Cartridge

	// ReadPRG and WritePRG access the PRG memory, as seen from the CPU, from
	// $4020 to $FFFF.
	ReadPRG(addr uint16) uint8
	WritePRG(addr uint16, val uint8)

	Name() string
}

type MapperDesc struct {
	Name string
	Load func(*ines.Rom) (Cartridge, error)
}

var All = map[uint16]MapperDesc{
	0: NROM,
}

// Load creates the cartridge described by the rom header.
func Load(rom *ines.Rom) (Cartridge, error) {
	desc, ok := All[rom.Mapper()]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedMapper, rom.Mapper())
	}
	return load(desc, rom)
}

// LoadAs creates a cartridge with the given mapper, whatever the mapper
// number in the rom header is. Test roms often declare a mapper while they
// only use the NROM memory layout.
func LoadAs(rom *ines.Rom, mapper uint16) (Cartridge, error) {
	desc, ok := All[mapper]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedMapper, mapper)
	}
	if rom.Mapper() != mapper {
		log.ModMapper.WarnZ("overriding rom mapper").
			Uint16("rom", rom.Mapper()).
			Uint16("mapper", mapper).
			End()
	}
	return load(desc, rom)
}

func load(desc MapperDesc, rom *ines.Rom) (Cartridge, error) {
	cart, err := desc.Load(rom)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapper %s: %w", desc.Name, err)
	}

	log.ModMapper.InfoZ("cartridge loaded").
		String("mapper", desc.Name).
		Int("prgrom", len(rom.PRGROM)).
		Int("chrrom", len(rom.CHRROM)).
		Stringer("mirroring", rom.Mirroring()).
		End()
	return cart, nil
}
