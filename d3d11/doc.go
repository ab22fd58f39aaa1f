// Package d3d11 implements render.Driver with Direct3D 11.1 and DXGI 1.2.
//
// The bindings call COM methods through their vtables with syscall.SyscallN;
// only the methods the rendering context needs are bound.
package d3d11
