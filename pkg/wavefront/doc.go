// Package wavefront reads Wavefront OBJ geometry and MTL material files into
// an indexed, vertex-colored mesh.
//
// Only the subset needed for colored, lit triangle meshes is understood:
// positions (v), normals (vn), triangle and quad faces (f), material
// selection (usemtl), material definitions (newmtl) and diffuse color (Kd).
// Every other directive is skipped. Faces with more than four vertices are
// dropped, and texture coordinate references inside faces are ignored.
package wavefront
