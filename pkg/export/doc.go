// Package export writes loaded meshes to interchange formats: binary STL,
// binary glTF and the JSON shape consumed by web viewers.
package export
