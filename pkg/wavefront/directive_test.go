package wavefront

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  directive
	}{
		{"v", dirPosition},
		{"vn", dirNormal},
		{"f", dirFace},
		{"usemtl", dirUseMaterial},
		{"newmtl", dirNewMaterial},
		{"Kd", dirDiffuse},
		{"vt", dirUnknown},
		{"kd", dirUnknown},
		{"#", dirUnknown},
	}
	for _, tt := range tests {
		if got := classify(tt.token); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
	if dirFace.String() != "f" || dirUnknown.String() != "unknown" {
		t.Errorf("String() = %q/%q, want f/unknown", dirFace.String(), dirUnknown.String())
	}
}
