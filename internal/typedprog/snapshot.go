package typedprog

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a flattened, serializable summary of a Program — enough for
// `ash check` to skip re-running the checker on a file whose content hash
// it has already seen succeed, and to drive golden-file fixtures, without
// having to round-trip the full pointer-linked AST through msgpack. The
// in-process Program remains the source of truth; Snapshot is a derived
// artifact for persistence only.
type Snapshot struct {
	// SourceHash is the hex-encoded sha256 of the checked file's bytes.
	// The CLI's cache is valid only while this matches the file on disk.
	SourceHash    string
	StructNames   []string
	ResourceNames []string
	Funcs         []FuncSnapshot
}

// FuncSnapshot summarizes one checked function.
type FuncSnapshot struct {
	Name       string
	ReturnType string
	ExprCount  int
}

// Snapshot flattens p into its serializable summary, tagging it with
// sourceHash so a later run can tell whether the cached result still
// applies.
func (p *Program) Snapshot(sourceHash string) Snapshot {
	s := Snapshot{
		SourceHash:    sourceHash,
		StructNames:   make([]string, 0, len(p.Structs)),
		ResourceNames: make([]string, 0, len(p.Resources)),
		Funcs:         make([]FuncSnapshot, 0, len(p.Funcs)),
	}
	for _, d := range p.Structs {
		s.StructNames = append(s.StructNames, d.Name)
	}
	for _, r := range p.Resources {
		s.ResourceNames = append(s.ResourceNames, r.Def.Name)
	}
	for _, f := range p.Funcs {
		retType := "unit"
		if p.Types != nil && f.ReturnType != 0 {
			retType = p.Types.String(f.ReturnType)
		}
		s.Funcs = append(s.Funcs, FuncSnapshot{
			Name:       f.Def.Name,
			ReturnType: retType,
			ExprCount:  len(f.ExprTypes),
		})
	}
	return s
}

// Marshal serializes the snapshot to msgpack bytes.
func (s Snapshot) Marshal() ([]byte, error) {
	return msgpack.Marshal(s)
}

// UnmarshalSnapshot decodes a msgpack-encoded Snapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	err := msgpack.Unmarshal(data, &s)
	return s, err
}
