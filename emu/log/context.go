package log

// A Context adds fields to every emitted entry, for instance the current CPU
// cycle and PPU position.
type Context interface {
	AddLogContext(z *EntryZ)
}

var contexts []Context

func AddContext(c Context) {
	contexts = append(contexts, c)
}

func RemoveContext(c Context) {
	for i := range contexts {
		if contexts[i] == c {
			contexts = append(contexts[:i], contexts[i+1:]...)
			return
		}
	}
}

func addContexts(z *EntryZ) {
	for _, c := range contexts {
		c.AddLogContext(z)
	}
}
