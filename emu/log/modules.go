package log

import (
	"fmt"
	"slices"
	"strings"
)

type ModuleMask uint64
type Module uint

const ModuleMaskAll = ^ModuleMask(0)

// Standard modules. Packages can define more with NewModule.
const (
	ModEmu Module = iota + 1
	ModCPU
	ModMem
	ModHwIo
	ModPPU
	ModInput
	ModSound
	ModMapper
	ModSched
)

// Info and Debug entries are only emitted for modules in this mask.
var modDebugMask ModuleMask = 0

// Module names, indexed by Module. Index 0 is never a valid module.
var modNames = []string{
	"<error>", "emu", "cpu", "mem", "hwio", "ppu", "input", "sound", "mapper", "sched",
}

// NewModule registers a new module. It must be called during package
// initialization.
func NewModule(name string) Module {
	modNames = append(modNames, name)
	return Module(len(modNames) - 1)
}

func ModuleByName(name string) (Module, bool) {
	if i := slices.Index(modNames[1:], name); i >= 0 {
		return Module(i + 1), true
	}
	return 0, false
}

// ModuleNames returns the names of all registered modules.
func ModuleNames() []string {
	return slices.Clone(modNames[1:])
}

// ParseModules parses a comma-separated list of module names into a mask.
// "all" selects every module.
func ParseModules(list string) (ModuleMask, error) {
	var mask ModuleMask
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "":
			continue
		case "all":
			return ModuleMaskAll, nil
		}
		mod, ok := ModuleByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown log module %q", name)
		}
		mask |= mod.Mask()
	}
	return mask, nil
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

func (mod Module) String() string {
	if int(mod) >= len(modNames) {
		mod = 0
	}
	return modNames[mod]
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

// printf-like family

func (mod Module) printf(lvl Level, format string, args []any) {
	if !mod.Enabled(lvl) {
		return
	}
	mod.logz(lvl, fmt.Sprintf(format, args...)).End()
}

func (mod Module) Debugf(format string, args ...any) { mod.printf(DebugLevel, format, args) }
func (mod Module) Infof(format string, args ...any)  { mod.printf(InfoLevel, format, args) }
func (mod Module) Warnf(format string, args ...any)  { mod.printf(WarnLevel, format, args) }
func (mod Module) Errorf(format string, args ...any) { mod.printf(ErrorLevel, format, args) }
func (mod Module) Fatalf(format string, args ...any) { mod.printf(FatalLevel, format, args) }
func (mod Module) Panicf(format string, args ...any) { mod.printf(PanicLevel, format, args) }

// zero-alloc family

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if !mod.Enabled(lvl) {
		return nil
	}
	z := NewEntryZ()
	z.lvl, z.mod, z.msg = lvl, mod, msg
	return z
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }
func (mod Module) PanicZ(msg string) *EntryZ { return mod.logz(PanicLevel, msg) }
