package wavefront

// directive is the closed set of line keywords the loader acts on.
type directive int

const (
	dirUnknown directive = iota
	dirPosition
	dirNormal
	dirFace
	dirUseMaterial
	dirNewMaterial
	dirDiffuse
)

var directives = map[string]directive{
	"v":      dirPosition,
	"vn":     dirNormal,
	"f":      dirFace,
	"usemtl": dirUseMaterial,
	"newmtl": dirNewMaterial,
	"Kd":     dirDiffuse,
}

// classify maps the first token of a line to its directive.
func classify(token string) directive {
	return directives[token]
}

func (d directive) String() string {
	for k, v := range directives {
		if v == d {
			return k
		}
	}
	return "unknown"
}
