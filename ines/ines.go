// Package ines implements a Reader for roms in the iNES file format, used for
// the distribution of NES binary programs.
package ines

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dunes/hw/hwdefs"
)

var (
	ErrInvalidMagic = errors.New("invalid magic number")
	ErrTruncated    = errors.New("truncated rom")
)

// Bank sizes.
const (
	PRGROMBankSize = 0x4000
	CHRROMBankSize = 0x2000
	PRGRAMBankSize = 0x2000
	TrainerSize    = 512
	HeaderSize     = 16
)

type Rom struct {
	header
	Trainer []byte // Trainer, 512 bytes if present, or empty.
	PRGROM  []byte // PRG ROM data (length is a multiple of 16k)
	CHRROM  []byte // CHR ROM data (length is a multiple of 8k), empty for CHR RAM
}

// Open loads a rom from file.
func Open(path string) (*Rom, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rom := new(Rom)
	if _, err := rom.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rom, nil
}

// ReadFrom reads a whole rom image from r. It implements io.ReaderFrom.
func (rom *Rom) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if err := rom.decode(buf); err != nil {
		return 0, fmt.Errorf("failed to decode header: %w", err)
	}

	rest := buf[HeaderSize:]
	cut := func(section string, n int) ([]byte, error) {
		if len(rest) < n {
			return nil, fmt.Errorf("%s section: want %d bytes, have %d: %w", section, n, len(rest), ErrTruncated)
		}
		sec := rest[:n:n]
		rest = rest[n:]
		return sec, nil
	}

	if rom.HasTrainer() {
		if rom.Trainer, err = cut("trainer", TrainerSize); err != nil {
			return 0, err
		}
	}
	if rom.PRGROM, err = cut("PRG", rom.PRGROMBanks()*PRGROMBankSize); err != nil {
		return 0, err
	}
	if rom.CHRROM, err = cut("CHR", rom.CHRROMBanks()*CHRROMBankSize); err != nil {
		return 0, err
	}
	return int64(len(buf)), nil
}

// Magic starts every iNES file.
const Magic = "NES\x1a"

func (hdr *header) decode(p []byte) error {
	switch {
	case len(p) < HeaderSize:
		return fmt.Errorf("header needs %d bytes: %w", HeaderSize, ErrTruncated)
	case string(p[:len(Magic)]) != Magic:
		return ErrInvalidMagic
	}
	hdr.raw = [HeaderSize]byte(p)
	return nil
}

// header gives access to the fields of the 16-byte iNES header.
type header struct {
	raw [HeaderSize]byte
}

// PRGROMBanks returns the number of 16KB PRG ROM banks.
func (hdr *header) PRGROMBanks() int { return int(hdr.raw[4]) }

// CHRROMBanks returns the number of 8KB CHR ROM banks. Zero means the
// cartridge has 8KB of CHR RAM instead.
func (hdr *header) CHRROMBanks() int { return int(hdr.raw[5]) }

// HasCHRRAM indicates the cartridge uses CHR RAM.
func (hdr *header) HasCHRRAM() bool { return hdr.raw[5] == 0 }

// PRGRAMBanks returns the number of 8KB PRG RAM banks. For compatibility
// with older dumps, 0 means 1 bank.
func (hdr *header) PRGRAMBanks() int { return max(int(hdr.raw[8]), 1) }

// Mirroring returns the nametable mirroring wired on the cartridge.
func (hdr *header) Mirroring() hwdefs.NTMirroring {
	if hdr.raw[6]&0x01 != 0 {
		return hwdefs.VertMirroring
	}
	return hwdefs.HorzMirroring
}

// HasTrainer indicates the presence of a trainer section in the rom.
func (hdr *header) HasTrainer() bool {
	return hdr.raw[6]&0x04 != 0
}

// HasPersistent indicates the presence of persistent memory in the rom.
func (hdr *header) HasPersistent() bool {
	return hdr.raw[6]&0x02 != 0
}

// FourScreen indicates the cartridge provides its own nametable VRAM.
func (hdr *header) FourScreen() bool {
	return hdr.raw[6]&0x08 != 0
}

// IsNES20 reports whether the header is in the NES 2.0 format.
func (hdr *header) IsNES20() bool {
	return hdr.raw[7]&0x0C == 0x08
}

// Mapper returns the mapper number, made of the high nibbles of bytes 6 and
// 7.
func (hdr *header) Mapper() uint16 {
	return uint16(hdr.raw[7]&0xF0 | hdr.raw[6]>>4)
}
